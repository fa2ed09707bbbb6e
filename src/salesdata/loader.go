package salesdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Load reads the dataset at path. The decoder is picked by extension:
// .xlsx reads the first worksheet, .tsv/.tab are tab separated, anything else is CSV.
func Load(path string) (*Table, error) {
	defer TimeTrack(time.Now(), "load "+path)
	var (
		t   *Table
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		t, err = loadXLSX(path)
	case ".tsv", ".tab":
		t, err = loadDelimited(path, '\t')
	default:
		t, err = loadDelimited(path, ',')
	}
	if err != nil {
		return nil, err
	}
	Infof("loaded %d brands from %s", t.Len(), path)
	if dups := t.DuplicateBrands(); len(dups) > 0 {
		Warnf("duplicate brand names in %s: %s", path, strings.Join(dups, ", "))
	}
	return t, nil
}

func loadDelimited(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()
	t, err := Parse(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.source = path
	return t, nil
}

func loadXLSX(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrParse, err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w: workbook has no sheets", path, ErrParse)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrParse, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w: sheet %q is empty", path, ErrParse, sheets[0])
	}
	t, err := fromRows(path, rows[0], rows[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads delimited text with a header row. The whole input is rejected on the first error.
func Parse(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input, no header row", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrParse, err)
	}
	var body [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		body = append(body, row)
	}
	return fromRows("", header, body)
}

// fromRows maps header names to indexes and converts every body row.
func fromRows(source string, header []string, body [][]string) (*Table, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, c := range Columns() {
		if _, ok := idx[c]; !ok {
			return nil, &ColumnError{Column: c}
		}
	}
	records := make([]Record, 0, len(body))
	for n, row := range body {
		if isBlankRow(row) {
			continue
		}
		lineNo := n + 2 // 1-based, header is line 1
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(col string) (float64, error) {
			raw := cell(col)
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, &CellError{Row: lineNo, Column: col, Value: raw, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, &CellError{Row: lineNo, Column: col, Value: raw, Err: errNotFinite}
			}
			return v, nil
		}
		rec := Record{Brand: cell(ColBrand)}
		for k, y := range Years {
			var err error
			if rec.Sales[k], err = num(SalesColumn(y)); err != nil {
				return nil, err
			}
			if rec.Revenue[k], err = num(RevenueColumn(y)); err != nil {
				return nil, err
			}
			if rec.NetProfit[k], err = num(NetProfitColumn(y)); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return &Table{source: source, records: records}, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
