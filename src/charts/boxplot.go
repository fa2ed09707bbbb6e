package charts

import (
	"image"
	"image/color"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const titleRevenueSpread = "Revenue Variability Across Years"

// Box is one year's revenue distribution across brands.
type Box struct {
	Year   int
	Label  string
	Values []float64
	Stats  salesdata.BoxStats
}

// BoxLayout always holds three boxes, 2022..2024, whatever the number of brands.
type BoxLayout struct {
	Boxes [3]Box
}

// RevenueSpreadLayout summarises each year's revenue column with salesdata.Summarize.
func RevenueSpreadLayout(t *salesdata.Table) (BoxLayout, error) {
	if t == nil || t.Len() == 0 {
		return BoxLayout{}, ErrEmptyTable
	}
	var l BoxLayout
	for k, y := range salesdata.Years {
		vals := t.Revenue(y)
		l.Boxes[k] = Box{Year: y, Label: strconv.Itoa(y), Values: vals, Stats: salesdata.Summarize(vals)}
	}
	return l, nil
}

func renderRevenueSpread(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := RevenueSpreadLayout(t)
	if err != nil {
		return nil, err
	}
	p := newPlot(titleRevenueSpread, "", "Revenue (USD billion)")
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightNormal
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGrey
	grid.Horizontal.Color = gridGrey
	p.Add(grid)
	names := make([]string, len(l.Boxes))
	for k, b := range l.Boxes {
		bp, err := plotter.NewBoxPlot(vg.Points(60), float64(k), plotter.Values(b.Values))
		if err != nil {
			return nil, err
		}
		// Use our own quartiles and whisker rule instead of gonum's.
		s := b.Stats
		bp.Median = s.Median
		bp.Quartile1 = s.Q1
		bp.Quartile3 = s.Q3
		bp.AdjLow = s.WhiskerLow
		bp.AdjHigh = s.WhiskerHigh
		bp.Min = s.Min
		bp.Max = s.Max
		bp.Outside = s.Outliers
		bp.FillColor = YearColor(1)
		bp.BoxStyle.Color = color.Black
		bp.MedianStyle.Color = color.Black
		bp.WhiskerStyle.Color = color.Black
		p.Add(bp)
		names[k] = b.Label
	}
	p.NominalX(names...)
	return plotImage(p, w, h), nil
}
