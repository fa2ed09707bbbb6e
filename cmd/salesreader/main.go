package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

func main() {
	var file, level string
	var year int
	flag.StringVar(&file, "file", "car_sales_financial_data_2022_2024.csv", "Path to the sales table (.csv, .tsv or .xlsx)")
	flag.IntVar(&year, "year", 2024, "Year to summarise (2022, 2023 or 2024)")
	flag.StringVar(&level, "log", "warn", "Log level: debug, info, warn, error")
	flag.Parse()
	if err := salesdata.SetLogLevel(level); err != nil {
		salesdata.Warnf("%v, keeping %s", err, salesdata.GetLogLevel())
	}

	tbl, err := salesdata.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printSummary(os.Stdout, tbl, year); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	textCell   = lipgloss.NewStyle().Padding(0, 1)
	numCell    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// printSummary writes the per-brand table for year followed by a totals row.
func printSummary(w io.Writer, tbl *salesdata.Table, year int) error {
	rows, total, err := salesdata.YearSummary(tbl, year)
	if err != nil {
		return err
	}
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Brand", "Sales (M)", "Revenue ($B)", "Net Profit ($B)", "Margin", "Revenue Share").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return textCell
			}
			return numCell
		})
	for _, r := range append(rows, total) {
		tb.Row(formatRow(r)...)
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d figures, %d brands (%s)", year, tbl.Len(), tbl.Source())))
	fmt.Fprintln(w, tb.Render())
	return nil
}

func formatRow(s salesdata.BrandSummary) []string {
	return []string{
		s.Brand,
		fmt.Sprintf("%.2f", s.Sales),
		fmt.Sprintf("%.2f", s.Revenue),
		fmt.Sprintf("%.2f", s.NetProfit),
		fmt.Sprintf("%.1f%%", s.Margin*100),
		fmt.Sprintf("%.1f%%", s.Share*100),
	}
}
