package charts

import (
	"image"
	"image/color"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const (
	titleRevenueShare = "Revenue Distribution by Brand in 2024"
	// PieStartAngle is where the first wedge begins, in degrees counter-clockwise from 3 o'clock.
	PieStartAngle = 140.0
	pieYear       = 2024
)

// Wedge is one pie slice. Angles are degrees, counter-clockwise, EndDeg > StartDeg.
type Wedge struct {
	Brand    string
	Value    float64
	Share    float64 // fraction of the total, 0..1
	StartDeg float64
	EndDeg   float64
	Percent  string // e.g. "31.6%"
}

// PieLayout is the 2024 revenue pie.
type PieLayout struct {
	Year   int
	Wedges []Wedge
}

// RevenueShareLayout sizes one wedge per brand by its share of 2024 revenue,
// laid out counter-clockwise from PieStartAngle in table order.
func RevenueShareLayout(t *salesdata.Table) (PieLayout, error) {
	if t == nil || t.Len() == 0 {
		return PieLayout{}, ErrEmptyTable
	}
	rev := t.Revenue(pieYear)
	shares, ok := salesdata.Shares(rev)
	if !ok {
		return PieLayout{}, ErrZeroTotal
	}
	l := PieLayout{Year: pieYear, Wedges: make([]Wedge, len(rev))}
	cum := 0.0
	for i, b := range t.Brands() {
		w := Wedge{
			Brand:    b,
			Value:    rev[i],
			Share:    shares[i],
			StartDeg: PieStartAngle + cum*360,
		}
		cum += shares[i]
		w.EndDeg = PieStartAngle + cum*360
		w.Percent = formatPercent(shares[i])
		l.Wedges[i] = w
	}
	return l, nil
}

// formatPercent renders a 0..1 share as a percentage with one decimal, rounding half away from zero.
func formatPercent(share float64) string {
	return decimal.NewFromFloat(share).Shift(2).StringFixed(1) + "%"
}

// piePlotter draws wedges centred in the data area; it ignores the axes.
type piePlotter struct {
	Wedges []Wedge
	Colors []color.Color
	Edge   draw.LineStyle
}

func (pp *piePlotter) Plot(c draw.Canvas, p *plot.Plot) {
	ctr := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	size := c.Max.Sub(c.Min)
	r := 0.38 * math.Min(float64(size.X), float64(size.Y))
	at := func(deg, radius float64) vg.Point {
		rad := deg * math.Pi / 180
		return vg.Point{X: ctr.X + vg.Length(radius*math.Cos(rad)), Y: ctr.Y + vg.Length(radius*math.Sin(rad))}
	}
	for i, w := range pp.Wedges {
		span := w.EndDeg - w.StartDeg
		if span <= 0 {
			continue
		}
		steps := int(math.Ceil(span)) + 1
		pts := make([]vg.Point, 0, steps+2)
		pts = append(pts, ctr)
		for j := 0; j <= steps; j++ {
			pts = append(pts, at(w.StartDeg+span*float64(j)/float64(steps), r))
		}
		c.FillPolygon(pp.Colors[i%len(pp.Colors)], pts)
		c.StrokeLines(pp.Edge, append(pts, ctr))
	}
	sty := p.X.Tick.Label
	sty.Rotation = 0
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	sty.Font.Size = vg.Points(10)
	for _, w := range pp.Wedges {
		mid := (w.StartDeg + w.EndDeg) / 2
		c.FillText(sty, at(mid, r*1.15), w.Brand)
		c.FillText(sty, at(mid, r*0.6), w.Percent)
	}
}

func renderRevenueShare(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := RevenueShareLayout(t)
	if err != nil {
		return nil, err
	}
	p := newPlot(titleRevenueShare, "", "")
	p.HideAxes()
	cols := make([]color.Color, len(l.Wedges))
	for i := range cols {
		cols[i] = pastelAt(i)
	}
	p.Add(&piePlotter{Wedges: l.Wedges, Colors: cols, Edge: draw.LineStyle{Color: color.White, Width: vg.Points(1)}})
	return plotImage(p, w, h), nil
}
