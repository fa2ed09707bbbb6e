package salesdata

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BrandSummary is one brand's figures for a single year plus derived ratios.
type BrandSummary struct {
	Brand     string
	Sales     float64
	Revenue   float64
	NetProfit float64
	// Margin is NetProfit/Revenue; zero when revenue is zero.
	Margin float64
	// Share is the brand's fraction of the year's total revenue.
	Share float64
}

// YearSummary returns per-brand figures for year in table order, plus the column totals.
func YearSummary(t *Table, year int) ([]BrandSummary, BrandSummary, error) {
	if _, ok := YearIndex(year); !ok {
		return nil, BrandSummary{}, fmt.Errorf("year %d not in %v", year, Years)
	}
	sales, rev, profit := t.Sales(year), t.Revenue(year), t.NetProfit(year)
	shares, ok := Shares(rev)
	out := make([]BrandSummary, t.Len())
	for i, b := range t.Brands() {
		s := BrandSummary{Brand: b, Sales: sales[i], Revenue: rev[i], NetProfit: profit[i]}
		if rev[i] != 0 {
			s.Margin = profit[i] / rev[i]
		}
		if ok {
			s.Share = shares[i]
		}
		out[i] = s
	}
	total := BrandSummary{
		Brand:     "Total",
		Sales:     floats.Sum(sales),
		Revenue:   floats.Sum(rev),
		NetProfit: floats.Sum(profit),
	}
	if total.Revenue != 0 {
		total.Margin = total.NetProfit / total.Revenue
		total.Share = 1
	}
	return out, total, nil
}
