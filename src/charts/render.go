package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/charts/axis"
)

// plotImage rasterises a gonum plot at w x h pixels on a white background.
func plotImage(p *plot.Plot, w, h int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Inch/axis.DPI, vg.Length(h)*vg.Inch/axis.DPI),
		vgimg.UseDPI(axis.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(vgdraw.New(c))
	return c.Image()
}

// goChart is satisfied by chart.Chart, chart.BarChart and friends.
type goChart interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// chartImage renders a go-chart chart to PNG and decodes it back into an image.
func chartImage(name string, ch goChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func cloneRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// drawCaption writes a small caption near the bottom-left corner of img.
func drawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	rgba := cloneRGBA(img)
	b := rgba.Bounds()
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	pad := 4
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
