package charts

import (
	"image"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/charts/axis"
	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const titleProfitTrend = "Net Profit Trends (2022-2024)"

// Polyline is one brand's profit path across the three years.
type Polyline struct {
	Brand string
	X     []float64 // years
	Y     []float64 // net profit
}

// LineLayout holds one polyline per brand plus the shared Y range.
type LineLayout struct {
	Lines      []Polyline
	YMin, YMax float64
}

// ProfitTrendLayout builds one polyline per brand with vertices at (year, net profit).
func ProfitTrendLayout(t *salesdata.Table) (LineLayout, error) {
	if t == nil || t.Len() == 0 {
		return LineLayout{}, ErrEmptyTable
	}
	l := LineLayout{YMin: math.Inf(1), YMax: math.Inf(-1)}
	for _, r := range t.Records() {
		pl := Polyline{Brand: r.Brand, X: make([]float64, 3), Y: make([]float64, 3)}
		for k, y := range salesdata.Years {
			pl.X[k] = float64(y)
			pl.Y[k] = r.NetProfit[k]
			l.YMin = math.Min(l.YMin, r.NetProfit[k])
			l.YMax = math.Max(l.YMax, r.NetProfit[k])
		}
		l.Lines = append(l.Lines, pl)
	}
	return l, nil
}

func renderProfitTrend(t *salesdata.Table, w, h int) (image.Image, error) {
	l, err := ProfitTrendLayout(t)
	if err != nil {
		return nil, err
	}
	series := make([]chart.Series, 0, len(l.Lines))
	for i, pl := range l.Lines {
		col := toDrawing(qualitativeAt(i))
		series = append(series, chart.ContinuousSeries{
			Name:    pl.Brand,
			XValues: pl.X,
			YValues: pl.Y,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}
	xTicks := make([]chart.Tick, len(salesdata.Years))
	for k, y := range salesdata.Years {
		xTicks[k] = chart.Tick{Value: float64(y), Label: strconv.Itoa(y)}
	}
	yMin, yMax := axis.NiceBounds(l.YMin, l.YMax)
	var yTicks []chart.Tick
	for _, v := range axis.NumericTicks(yMin, yMax, 6) {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: axis.FormatTick(v)})
	}
	if len(yTicks) > 0 {
		yMin = math.Min(yMin, yTicks[0].Value)
		yMax = math.Max(yMax, yTicks[len(yTicks)-1].Value)
	}
	first, last := float64(salesdata.Years[0]), float64(salesdata.Years[len(salesdata.Years)-1])
	ch := chart.Chart{
		Title:      titleProfitTrend,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Year",
			Ticks: xTicks,
			Range: &chart.ContinuousRange{Min: first - 0.1, Max: last + 0.1},
		},
		YAxis: chart.YAxis{
			Name:           "Net Profit (USD billion)",
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          yTicks,
			GridMajorStyle: chart.Style{StrokeColor: toDrawing(gridGrey), StrokeWidth: 1},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return chartImage("profit trend", ch)
}
