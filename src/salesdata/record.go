package salesdata

import "fmt"

// Years covered by every record, oldest first. Index k of the per-year arrays maps to Years[k].
var Years = [3]int{2022, 2023, 2024}

// Column headers expected in the input file.
const ColBrand = "Brand"

// SalesColumn returns the header of the sales column for a year, e.g. "2022 Sales (millions)".
func SalesColumn(year int) string { return fmt.Sprintf("%d Sales (millions)", year) }

// RevenueColumn returns the header of the revenue column for a year.
func RevenueColumn(year int) string { return fmt.Sprintf("%d Revenue (USD billion)", year) }

// NetProfitColumn returns the header of the net profit column for a year.
func NetProfitColumn(year int) string { return fmt.Sprintf("%d Net Profit (USD billion)", year) }

// Columns lists all required headers in canonical order.
func Columns() []string {
	cols := []string{ColBrand}
	for _, y := range Years {
		cols = append(cols, SalesColumn(y))
	}
	for _, y := range Years {
		cols = append(cols, RevenueColumn(y))
	}
	for _, y := range Years {
		cols = append(cols, NetProfitColumn(y))
	}
	return cols
}

// Record is one brand's figures for 2022..2024.
type Record struct {
	Brand     string
	Sales     [3]float64 // millions of units
	Revenue   [3]float64 // USD billion
	NetProfit [3]float64 // USD billion, may be negative
}

// YearIndex maps a calendar year to the index used by Record arrays.
func YearIndex(year int) (int, bool) {
	for i, y := range Years {
		if y == year {
			return i, true
		}
	}
	return 0, false
}
