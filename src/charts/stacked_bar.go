package charts

import (
	"image"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const (
	titleRevenueStack = "Revenue Comparison (2022-2024)"
	// StackWidth is the width of a stacked column in brand-index units.
	StackWidth = 0.8
)

// Segment is one year's slice of a stacked column; it spans Base..Base+Value.
type Segment struct {
	Year  int
	Base  float64
	Value float64
}

// Top is the upper edge of the segment.
func (s Segment) Top() float64 { return s.Base + s.Value }

// StackedColumn is one brand's three revenue segments, oldest at the bottom.
type StackedColumn struct {
	Brand    string
	Segments [3]Segment
}

// StackLayout is the stacked revenue chart.
type StackLayout struct {
	Columns []StackedColumn
}

// RevenueStackLayout stacks 2022, 2023 and 2024 revenue per brand. Each base is
// the running sum of the brand's earlier years, added in year order without rounding,
// so the 2024 base is exactly r2022 + r2023.
func RevenueStackLayout(t *salesdata.Table) (StackLayout, error) {
	if t == nil || t.Len() == 0 {
		return StackLayout{}, ErrEmptyTable
	}
	var l StackLayout
	for _, r := range t.Records() {
		col := StackedColumn{Brand: r.Brand}
		base := 0.0
		for k, y := range salesdata.Years {
			col.Segments[k] = Segment{Year: y, Base: base, Value: r.Revenue[k]}
			base += r.Revenue[k]
		}
		l.Columns = append(l.Columns, col)
	}
	return l, nil
}

func renderRevenueStack(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := RevenueStackLayout(t)
	if err != nil {
		return nil, err
	}
	p := newPlot(titleRevenueStack, "Brand", "Revenue (USD billion)")
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGrey
	grid.Horizontal.Color = gridGrey
	p.Add(grid)
	for k, y := range salesdata.Years {
		rp := &rectPlotter{}
		for i, c := range l.Columns {
			s := c.Segments[k]
			x := float64(i)
			rp.Rects = append(rp.Rects, dataRect{X0: x - StackWidth/2, X1: x + StackWidth/2, Y0: s.Base, Y1: s.Top(), Fill: YearColor(k)})
		}
		p.Add(rp)
		p.Legend.Add(strconv.Itoa(y), swatch{Fill: YearColor(k)})
	}
	ticks := make([]plot.Tick, len(l.Columns))
	for i, c := range l.Columns {
		ticks[i] = plot.Tick{Value: float64(i), Label: c.Brand}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = -0.5, float64(len(l.Columns))-0.5
	rotateTickLabels(p, 45)
	p.Y.Min = 0
	p.Legend.Top = true
	return plotImage(p, w, h), nil
}
