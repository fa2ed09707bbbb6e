// Package charts turns a salesdata.Table into the six dashboard charts.
//
// Every chart has a pure Layout function computing its geometry (bar heights,
// stack bases, wedge angles, label positions, box statistics) and a render
// function drawing that layout into an image. Layouts are what the tests pin down;
// renderers only translate them into go-chart or gonum plot primitives.
package charts

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/charts/axis"
	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

var (
	// ErrEmptyTable is returned when a chart is asked to draw zero brands.
	ErrEmptyTable = errors.New("charts: table has no rows")
	// ErrZeroTotal is returned by the pie chart when total revenue is zero.
	ErrZeroTotal = errors.New("charts: revenue total is zero")
)

// Chart is one entry of the dashboard.
type Chart struct {
	Name     string
	Title    string
	WidthIn  float64
	HeightIn float64
	draw     func(t *salesdata.Table, w, h int) (image.Image, error)
}

// Size is the chart size in pixels.
func (c Chart) Size() (int, int) { return axis.PixelSize(c.WidthIn, c.HeightIn) }

// Render draws the chart for t and stamps the source file name in the corner.
func (c Chart) Render(t *salesdata.Table) (image.Image, error) {
	defer salesdata.TimeTrack(time.Now(), "render "+c.Name)
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	w, h := c.Size()
	img, err := c.draw(t, w, h)
	if err != nil {
		return nil, err
	}
	if src := t.Source(); src != "" {
		img = drawCaption(img, "source: "+filepath.Base(src))
	}
	return img, nil
}

// All returns the six charts in display order.
func All() []Chart {
	return []Chart{
		{Name: "sales_comparison", Title: titleSalesComparison, WidthIn: 10, HeightIn: 6, draw: renderSalesComparison},
		{Name: "revenue_share", Title: titleRevenueShare, WidthIn: 8, HeightIn: 8, draw: renderRevenueShare},
		{Name: "profit_trend", Title: titleProfitTrend, WidthIn: 10, HeightIn: 6, draw: renderProfitTrend},
		{Name: "revenue_stack", Title: titleRevenueStack, WidthIn: 12, HeightIn: 6, draw: renderRevenueStack},
		{Name: "sales_vs_profit", Title: titleSalesVsProfit, WidthIn: 10, HeightIn: 6, draw: renderSalesVsProfit},
		{Name: "revenue_spread", Title: titleRevenueSpread, WidthIn: 10, HeightIn: 6, draw: renderRevenueSpread},
	}
}

// ByName looks a chart up by its Name.
func ByName(name string) (Chart, bool) {
	for _, c := range All() {
		if c.Name == name {
			return c, true
		}
	}
	return Chart{}, false
}

// Rendered pairs a chart with its image.
type Rendered struct {
	Chart Chart
	Image image.Image
}

// RenderAll renders every chart in display order and stops at the first failure,
// so callers either get the full report or nothing.
func RenderAll(t *salesdata.Table) ([]Rendered, error) {
	charts := All()
	out := make([]Rendered, 0, len(charts))
	for _, c := range charts {
		img, err := c.Render(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		out = append(out, Rendered{Chart: c, Image: img})
	}
	return out, nil
}
