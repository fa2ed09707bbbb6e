// Package axis holds sizing and tick helpers shared by the chart renderers.
package axis

import (
	"math"
	"strconv"
)

// DPI used to turn figure sizes in inches into pixels.
const DPI = 96

// PixelSize converts a figure size in inches to pixels.
func PixelSize(wIn, hIn float64) (int, int) {
	return int(math.Round(wIn * DPI)), int(math.Round(hIn * DPI))
}

// FitWithin scales (w,h) down, keeping the aspect ratio, so it fits inside (maxW,maxH).
// Sizes that already fit, or a non-positive bound, are returned unchanged.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}
	s := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return int(float64(w) * s), int(float64(h) * s)
}

// NiceBounds expands [min,max] by 5% on both sides and rounds outward to the
// order of magnitude of the span. A zero baseline stays at zero when min >= 0.
func NiceBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	if min >= 0 && a < 0 {
		a = 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceSteps are the mantissas a tick step may take.
var niceSteps = [...]float64{1, 2, 2.5, 5, 10}

// niceStep returns the smallest step of the form m*10^k, m in niceSteps, that is >= raw.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range niceSteps {
		if m*mag >= raw*(1-1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

// NumericTicks returns evenly spaced ticks on a nice step that cover [min,max]
// with roughly n marks.
func NumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep((max - min) / float64(n-1))
	first := math.Floor(min/step + 1e-9)
	last := math.Ceil(max/step - 1e-9)
	out := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		out = append(out, k*step)
	}
	return out
}

// FormatTick renders a compact label: integers for large values, more decimals as values shrink.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
