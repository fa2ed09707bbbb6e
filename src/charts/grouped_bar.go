package charts

import (
	"image"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const (
	titleSalesComparison = "Car Sales Comparison (2022-2024)"
	// BarWidth is the width of one bar in a year group, in brand-index units.
	BarWidth = 0.25
)

// Bar is one rectangle of the grouped bar chart. X is the bar's centre.
type Bar struct {
	Brand  string
	Year   int
	X      float64
	Height float64
}

// Tick is a labelled position on a category axis.
type Tick struct {
	Pos   float64
	Label string
}

// GroupedBarLayout holds one bar series per year and one tick per brand group.
type GroupedBarLayout struct {
	Years  [3]int
	Series [3][]Bar
	Ticks  []Tick
}

// SalesComparisonLayout places the three yearly sales bars of brand i at
// i, i+BarWidth and i+2*BarWidth, with the brand tick under the middle bar.
func SalesComparisonLayout(t *salesdata.Table) (GroupedBarLayout, error) {
	if t == nil || t.Len() == 0 {
		return GroupedBarLayout{}, ErrEmptyTable
	}
	l := GroupedBarLayout{Years: salesdata.Years}
	brands := t.Brands()
	for k, y := range salesdata.Years {
		sales := t.Sales(y)
		bars := make([]Bar, len(brands))
		for i, b := range brands {
			bars[i] = Bar{Brand: b, Year: y, X: float64(i) + float64(k)*BarWidth, Height: sales[i]}
		}
		l.Series[k] = bars
	}
	l.Ticks = make([]Tick, len(brands))
	for i, b := range brands {
		l.Ticks[i] = Tick{Pos: float64(i) + BarWidth, Label: b}
	}
	return l, nil
}

func renderSalesComparison(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := SalesComparisonLayout(t)
	if err != nil {
		return nil, err
	}
	p := newPlot(titleSalesComparison, "Brand", "Sales (millions)")
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGrey
	grid.Horizontal.Color = gridGrey
	p.Add(grid)
	edge := draw.LineStyle{Color: edgeGrey, Width: vg.Points(0.8)}
	for k, bars := range l.Series {
		rp := &rectPlotter{Edge: edge}
		for _, b := range bars {
			rp.Rects = append(rp.Rects, dataRect{X0: b.X - BarWidth/2, X1: b.X + BarWidth/2, Y1: b.Height, Fill: YearColor(k)})
		}
		p.Add(rp)
		p.Legend.Add(strconv.Itoa(l.Years[k]), swatch{Fill: YearColor(k), Edge: edge})
	}
	ticks := make([]plot.Tick, len(l.Ticks))
	for i, tk := range l.Ticks {
		ticks[i] = plot.Tick{Value: tk.Pos, Label: tk.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	rotateTickLabels(p, 45)
	p.Y.Min = 0
	p.Legend.Top = true
	return plotImage(p, w, h), nil
}
