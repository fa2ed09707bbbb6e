package charts

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

func toyota() salesdata.Record {
	return salesdata.Record{
		Brand:     "Toyota",
		Sales:     [3]float64{500, 520, 540},
		Revenue:   [3]float64{50, 55, 60},
		NetProfit: [3]float64{5, 6, 7},
	}
}

func fleet() *salesdata.Table {
	return salesdata.NewTable("fleet.csv", []salesdata.Record{
		toyota(),
		{Brand: "Volkswagen", Sales: [3]float64{480, 490, 500}, Revenue: [3]float64{0.1, 0.2, 79.3}, NetProfit: [3]float64{4, -1.2, 5}},
		{Brand: "Ford", Sales: [3]float64{300, 310, 320}, Revenue: [3]float64{40, 42, 44}, NetProfit: [3]float64{1, 2, 3}},
		{Brand: "Tesla", Sales: [3]float64{1.3, 1.8, 1.9}, Revenue: [3]float64{81, 96, 97}, NetProfit: [3]float64{12, 15, 7}},
		{Brand: "BMW", Sales: [3]float64{2.4, 2.5, 2.5}, Revenue: [3]float64{142, 155, 150}, NetProfit: [3]float64{17, 12, 8}},
	})
}

func TestLayouts_EmptyTable(t *testing.T) {
	empty := salesdata.NewTable("", nil)
	if _, err := SalesComparisonLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("grouped bar: %v", err)
	}
	if _, err := RevenueShareLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("pie: %v", err)
	}
	if _, err := ProfitTrendLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("line: %v", err)
	}
	if _, err := RevenueStackLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("stack: %v", err)
	}
	if _, err := SalesVsProfitLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("scatter: %v", err)
	}
	if _, err := RevenueSpreadLayout(empty); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("box: %v", err)
	}
}

func TestSalesComparisonLayout_Toyota(t *testing.T) {
	l, err := SalesComparisonLayout(salesdata.NewTable("", []salesdata.Record{toyota()}))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	want := []float64{500, 520, 540}
	for k := range l.Series {
		if len(l.Series[k]) != 1 {
			t.Fatalf("year %d: want 1 bar got %d", l.Years[k], len(l.Series[k]))
		}
		b := l.Series[k][0]
		if b.Height != want[k] || b.Brand != "Toyota" || b.Year != salesdata.Years[k] {
			t.Fatalf("bar %d: %+v", k, b)
		}
		if b.X != float64(k)*BarWidth {
			t.Fatalf("bar %d x=%v", k, b.X)
		}
	}
	if len(l.Ticks) != 1 || l.Ticks[0].Label != "Toyota" || l.Ticks[0].Pos != BarWidth {
		t.Fatalf("tick under middle bar expected: %+v", l.Ticks)
	}
}

func TestSalesComparisonLayout_GroupsDoNotOverlap(t *testing.T) {
	l, err := SalesComparisonLayout(fleet())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	n := fleet().Len()
	for k := range l.Series {
		if len(l.Series[k]) != n {
			t.Fatalf("series %d has %d bars want %d", k, len(l.Series[k]), n)
		}
	}
	for i := 0; i+1 < n; i++ {
		lastOfGroup := l.Series[2][i].X + BarWidth/2
		firstOfNext := l.Series[0][i+1].X - BarWidth/2
		if !(lastOfGroup < firstOfNext) {
			t.Fatalf("group %d overlaps next: %v >= %v", i, lastOfGroup, firstOfNext)
		}
	}
	for i, tk := range l.Ticks {
		if tk.Label != fleet().Record(i).Brand {
			t.Fatalf("tick %d label %q out of table order", i, tk.Label)
		}
	}
}

func TestRevenueShareLayout(t *testing.T) {
	l, err := RevenueShareLayout(fleet())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(l.Wedges) != 5 {
		t.Fatalf("want 5 wedges got %d", len(l.Wedges))
	}
	if l.Wedges[0].StartDeg != PieStartAngle {
		t.Fatalf("first wedge must start at %v: %v", PieStartAngle, l.Wedges[0].StartDeg)
	}
	shareSum, pctSum := 0.0, 0.0
	for i, w := range l.Wedges {
		if i > 0 && w.StartDeg != l.Wedges[i-1].EndDeg {
			t.Fatalf("wedge %d not contiguous", i)
		}
		if math.Abs((w.EndDeg-w.StartDeg)-w.Share*360) > 1e-9 {
			t.Fatalf("wedge %d angle does not match share", i)
		}
		shareSum += w.Share
		pct, err := strconv.ParseFloat(strings.TrimSuffix(w.Percent, "%"), 64)
		if err != nil {
			t.Fatalf("percent label %q: %v", w.Percent, err)
		}
		pctSum += pct
	}
	if math.Abs(shareSum-1) > 1e-9 {
		t.Fatalf("shares sum to %v", shareSum)
	}
	if math.Abs(pctSum-100) > 0.05*float64(len(l.Wedges)) {
		t.Fatalf("percent labels sum to %v", pctSum)
	}
	if end := l.Wedges[len(l.Wedges)-1].EndDeg; math.Abs(end-(PieStartAngle+360)) > 1e-9 {
		t.Fatalf("last wedge should close the circle: %v", end)
	}
}

func TestRevenueShareLayout_SingleRowAndZeroTotal(t *testing.T) {
	l, err := RevenueShareLayout(salesdata.NewTable("", []salesdata.Record{toyota()}))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(l.Wedges) != 1 || l.Wedges[0].Percent != "100.0%" || l.Wedges[0].Share != 1 {
		t.Fatalf("single wedge should be 100%%: %+v", l.Wedges)
	}
	zero := toyota()
	zero.Revenue = [3]float64{1, 1, 0}
	if _, err := RevenueShareLayout(salesdata.NewTable("", []salesdata.Record{zero})); !errors.Is(err, ErrZeroTotal) {
		t.Fatalf("want ErrZeroTotal, got %v", err)
	}
}

func TestFormatPercent_RoundsHalfAwayFromZero(t *testing.T) {
	cases := map[float64]string{0.31649: "31.6%", 0.3165: "31.7%", 1: "100.0%", 0: "0.0%", 0.0004: "0.0%"}
	for in, want := range cases {
		if got := formatPercent(in); got != want {
			t.Fatalf("formatPercent(%v)=%q want %q", in, got, want)
		}
	}
}

func TestProfitTrendLayout(t *testing.T) {
	l, err := ProfitTrendLayout(fleet())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(l.Lines) != 5 {
		t.Fatalf("want 5 polylines got %d", len(l.Lines))
	}
	first := l.Lines[0]
	if first.Brand != "Toyota" || !reflect.DeepEqual(first.X, []float64{2022, 2023, 2024}) || !reflect.DeepEqual(first.Y, []float64{5, 6, 7}) {
		t.Fatalf("toyota polyline: %+v", first)
	}
	if l.YMin != -1.2 || l.YMax != 17 {
		t.Fatalf("y range %v..%v", l.YMin, l.YMax)
	}
}

func TestRevenueStackLayout_Toyota(t *testing.T) {
	l, err := RevenueStackLayout(salesdata.NewTable("", []salesdata.Record{toyota()}))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	segs := l.Columns[0].Segments
	bases := []float64{segs[0].Base, segs[1].Base, segs[2].Base}
	if !reflect.DeepEqual(bases, []float64{0, 50, 105}) {
		t.Fatalf("bases %v want [0 50 105]", bases)
	}
	if segs[2].Top() != 165 {
		t.Fatalf("stack top %v", segs[2].Top())
	}
}

func TestRevenueStackLayout_BaseIsExactSum(t *testing.T) {
	tbl := fleet()
	l, err := RevenueStackLayout(tbl)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for i, c := range l.Columns {
		r := tbl.Record(i)
		if c.Segments[0].Base != 0 || c.Segments[1].Base != r.Revenue[0] {
			t.Fatalf("%s: lower bases %+v", c.Brand, c.Segments)
		}
		if c.Segments[2].Base != r.Revenue[0]+r.Revenue[1] {
			t.Fatalf("%s: 2024 base %v != %v", c.Brand, c.Segments[2].Base, r.Revenue[0]+r.Revenue[1])
		}
	}
}

func TestSalesVsProfitLayout_Toyota(t *testing.T) {
	l, err := SalesVsProfitLayout(salesdata.NewTable("", []salesdata.Record{toyota()}))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	p := l.Points[0]
	if p.X != 540 || p.Y != 7 || math.Abs(p.LX-540.1) > 1e-9 || math.Abs(p.LY-7.1) > 1e-9 || p.Brand != "Toyota" {
		t.Fatalf("scatter point %+v", p)
	}
	l, _ = SalesVsProfitLayout(fleet())
	if len(l.Points) != 5 {
		t.Fatalf("want 5 points got %d", len(l.Points))
	}
}

func TestRevenueSpreadLayout(t *testing.T) {
	l, err := RevenueSpreadLayout(fleet())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(l.Boxes) != 3 {
		t.Fatalf("want 3 boxes")
	}
	for k, b := range l.Boxes {
		if b.Year != salesdata.Years[k] || len(b.Values) != 5 {
			t.Fatalf("box %d: %+v", k, b)
		}
		s := b.Stats
		if !(s.Min <= s.WhiskerLow && s.WhiskerLow <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.WhiskerHigh && s.WhiskerHigh <= s.Max) {
			t.Fatalf("box %d summary out of order: %+v", k, s)
		}
	}
	// 2022 revenue: 0.1 40 50 81 142 -> Q1 40, median 50, Q3 81
	s := l.Boxes[0].Stats
	if s.Q1 != 40 || s.Median != 50 || s.Q3 != 81 {
		t.Fatalf("2022 quartiles: %+v", s)
	}
}

func TestRevenueSpreadLayout_SingleRowCollapses(t *testing.T) {
	l, err := RevenueSpreadLayout(salesdata.NewTable("", []salesdata.Record{toyota()}))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for k, b := range l.Boxes {
		s := b.Stats
		v := toyota().Revenue[k]
		if s.Min != v || s.Max != v || s.Median != v || s.WhiskerLow != v || s.WhiskerHigh != v {
			t.Fatalf("box %d should collapse to %v: %+v", k, v, s)
		}
	}
}

func TestLayouts_Idempotent(t *testing.T) {
	tbl := fleet()
	a1, _ := SalesComparisonLayout(tbl)
	a2, _ := SalesComparisonLayout(tbl)
	b1, _ := RevenueShareLayout(tbl)
	b2, _ := RevenueShareLayout(tbl)
	c1, _ := RevenueStackLayout(tbl)
	c2, _ := RevenueStackLayout(tbl)
	d1, _ := RevenueSpreadLayout(tbl)
	d2, _ := RevenueSpreadLayout(tbl)
	if !reflect.DeepEqual(a1, a2) || !reflect.DeepEqual(b1, b2) || !reflect.DeepEqual(c1, c2) || !reflect.DeepEqual(d1, d2) {
		t.Fatalf("layouts differ between calls")
	}
}
