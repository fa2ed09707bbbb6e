package salesdata

import (
	"github.com/samber/lo"
)

// Table is the loaded dataset. It is never mutated after Load/Parse returns;
// accessors hand out copies so charts can't write through to shared rows.
type Table struct {
	source  string
	records []Record
}

// NewTable builds a table from records (copied). Used by loaders and tests.
func NewTable(source string, records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{source: source, records: cp}
}

// Source is the path (or label) the table was loaded from.
func (t *Table) Source() string { return t.source }

// Len returns the number of brands.
func (t *Table) Len() int { return len(t.records) }

// Record returns the i-th row in file order.
func (t *Table) Record(i int) Record { return t.records[i] }

// Records returns a copy of all rows in file order.
func (t *Table) Records() []Record {
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}

// Brands returns brand names in file order.
func (t *Table) Brands() []string {
	return lo.Map(t.records, func(r Record, _ int) string { return r.Brand })
}

// Sales returns the sales column for year (zero values for an unknown year).
func (t *Table) Sales(year int) []float64 {
	return t.column(year, func(r Record) [3]float64 { return r.Sales })
}

// Revenue returns the revenue column for year.
func (t *Table) Revenue(year int) []float64 {
	return t.column(year, func(r Record) [3]float64 { return r.Revenue })
}

// NetProfit returns the net profit column for year.
func (t *Table) NetProfit(year int) []float64 {
	return t.column(year, func(r Record) [3]float64 { return r.NetProfit })
}

func (t *Table) column(year int, pick func(Record) [3]float64) []float64 {
	k, ok := YearIndex(year)
	return lo.Map(t.records, func(r Record, _ int) float64 {
		if !ok {
			return 0
		}
		return pick(r)[k]
	})
}

// DuplicateBrands reports brand names that occur more than once.
func (t *Table) DuplicateBrands() []string {
	return lo.FindDuplicates(t.Brands())
}
