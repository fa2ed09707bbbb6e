package charts

import (
	"image"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const (
	titleSalesVsProfit = "Sales vs. Profit in 2024"
	// LabelOffset shifts each brand label away from its marker on both axes.
	LabelOffset  = 0.1
	scatterYear  = 2024
	markerRadius = 5 // points; a 100 pt² marker
)

// ScatterPoint is one brand's marker and where its name is written.
type ScatterPoint struct {
	Brand  string
	X, Y   float64
	LX, LY float64
}

// ScatterLayout is the 2024 sales vs profit scatter.
type ScatterLayout struct {
	Year   int
	Points []ScatterPoint
}

// SalesVsProfitLayout puts each brand at (2024 sales, 2024 profit) with its label at +LabelOffset.
func SalesVsProfitLayout(t *salesdata.Table) (ScatterLayout, error) {
	if t == nil || t.Len() == 0 {
		return ScatterLayout{}, ErrEmptyTable
	}
	sales, profit := t.Sales(scatterYear), t.NetProfit(scatterYear)
	l := ScatterLayout{Year: scatterYear}
	for i, b := range t.Brands() {
		l.Points = append(l.Points, ScatterPoint{
			Brand: b,
			X:     sales[i],
			Y:     profit[i],
			LX:    sales[i] + LabelOffset,
			LY:    profit[i] + LabelOffset,
		})
	}
	return l, nil
}

func renderSalesVsProfit(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := SalesVsProfitLayout(t)
	if err != nil {
		return nil, err
	}
	p := newPlot(titleSalesVsProfit, "Sales (millions)", "Net Profit (USD billion)")
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGrey
	grid.Horizontal.Color = gridGrey
	p.Add(grid)

	pts := make(plotter.XYs, len(l.Points))
	lbl := plotter.XYLabels{XYs: make(plotter.XYs, len(l.Points)), Labels: make([]string, len(l.Points))}
	for i, sp := range l.Points {
		pts[i] = plotter.XY{X: sp.X, Y: sp.Y}
		lbl.XYs[i] = plotter.XY{X: sp.LX, Y: sp.LY}
		lbl.Labels[i] = sp.Brand
	}
	fill, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	fill.GlyphStyle.Shape = draw.CircleGlyph{}
	fill.GlyphStyle.Radius = vg.Points(markerRadius)
	fill.GlyphStyle.Color = scatterFill
	ring, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	ring.GlyphStyle.Shape = draw.RingGlyph{}
	ring.GlyphStyle.Radius = vg.Points(markerRadius)
	ring.GlyphStyle.Color = color.Black
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	p.Add(fill, ring, labels)
	return plotImage(p, w, h), nil
}
