package charts

import (
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// newPlot returns a gonum plot with the dashboard's title and axis label styling.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightBold
	return p
}

// rotateTickLabels tilts X tick labels by deg degrees, anchored at their right end.
func rotateTickLabels(p *plot.Plot, deg float64) {
	p.X.Tick.Label.Rotation = deg * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// dataRect is an axis-aligned rectangle in data coordinates.
type dataRect struct {
	X0, X1 float64
	Y0, Y1 float64
	Fill   color.Color
}

// rectPlotter draws filled rectangles positioned in data space, which lets
// grouped bars sit at exact fractional offsets instead of canvas offsets.
type rectPlotter struct {
	Rects []dataRect
	Edge  draw.LineStyle
}

func (r *rectPlotter) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, rc := range r.Rects {
		pts := []vg.Point{
			{X: trX(rc.X0), Y: trY(rc.Y0)},
			{X: trX(rc.X0), Y: trY(rc.Y1)},
			{X: trX(rc.X1), Y: trY(rc.Y1)},
			{X: trX(rc.X1), Y: trY(rc.Y0)},
		}
		c.FillPolygon(rc.Fill, c.ClipPolygonXY(pts))
		if r.Edge.Width > 0 {
			outline := append(append([]vg.Point(nil), pts...), pts[0])
			c.StrokeLines(r.Edge, c.ClipLinesXY(outline)...)
		}
	}
}

// DataRange implements plot.DataRanger. The Y range always includes zero.
func (r *rectPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, rc := range r.Rects {
		xmin = math.Min(xmin, math.Min(rc.X0, rc.X1))
		xmax = math.Max(xmax, math.Max(rc.X0, rc.X1))
		ymin = math.Min(ymin, math.Min(rc.Y0, rc.Y1))
		ymax = math.Max(ymax, math.Max(rc.Y0, rc.Y1))
	}
	return xmin, xmax, ymin, ymax
}

// swatch is a legend thumbnail: a filled square with an optional outline.
type swatch struct {
	Fill color.Color
	Edge draw.LineStyle
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Fill, pts)
	if s.Edge.Width > 0 {
		c.StrokeLines(s.Edge, append(pts, pts[0]))
	}
}
