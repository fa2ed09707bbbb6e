package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pastel is the soft palette used for per-year colors, pie wedges and box fill.
var pastel = []color.RGBA{
	{R: 0xa1, G: 0xc9, B: 0xf4, A: 0xff},
	{R: 0xff, G: 0xb4, B: 0x82, A: 0xff},
	{R: 0x8d, G: 0xe5, B: 0xa1, A: 0xff},
	{R: 0xff, G: 0x9f, B: 0x9b, A: 0xff},
	{R: 0xd0, G: 0xbb, B: 0xff, A: 0xff},
	{R: 0xde, G: 0xbb, B: 0x9b, A: 0xff},
	{R: 0xfa, G: 0xb0, B: 0xe4, A: 0xff},
	{R: 0xcf, G: 0xcf, B: 0xcf, A: 0xff},
	{R: 0xff, G: 0xfe, B: 0xa3, A: 0xff},
	{R: 0xb9, G: 0xf2, B: 0xf0, A: 0xff},
}

// qualitative colors for one-line-per-brand charts.
var qualitative = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

var (
	edgeGrey    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	scatterFill = color.NRGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xb3} // purple, alpha 0.7
	gridGrey    = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

// YearColor is the fixed color of year index k (0=2022) in every per-year chart.
func YearColor(k int) color.RGBA { return pastel[k%len(pastel)] }

func pastelAt(i int) color.RGBA      { return pastel[i%len(pastel)] }
func qualitativeAt(i int) color.RGBA { return qualitative[i%len(qualitative)] }

// toDrawing converts to go-chart's color type.
func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
