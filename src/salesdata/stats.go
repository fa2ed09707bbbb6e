package salesdata

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// BoxStats is the five-number summary of one sample plus whisker ends and outliers.
// Whiskers reach the most extreme values within 1.5*IQR of the box; everything beyond is an outlier.
type BoxStats struct {
	N           int
	Min, Max    float64
	Q1, Median  float64
	Q3          float64
	WhiskerLow  float64
	WhiskerHigh float64
	// Outliers holds indexes into the summarized slice, ascending by index.
	Outliers []int
}

// IQR is the interquartile range.
func (b BoxStats) IQR() float64 { return b.Q3 - b.Q1 }

// Quantile returns the p-quantile of sorted values using linear interpolation
// between closest ranks (position (n-1)*p). sorted must be ascending and non-empty.
func Quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := math.Floor(pos)
	hi := math.Ceil(pos)
	if lo == hi {
		return sorted[int(lo)]
	}
	frac := pos - lo
	return sorted[int(lo)] + (sorted[int(hi)]-sorted[int(lo)])*frac
}

// Summarize computes BoxStats for values. An empty sample yields the zero value.
func Summarize(values []float64) BoxStats {
	if len(values) == 0 {
		return BoxStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	b := BoxStats{
		N:      len(values),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Q1:     Quantile(0.25, sorted),
		Median: Quantile(0.5, sorted),
		Q3:     Quantile(0.75, sorted),
	}
	loFence := b.Q1 - 1.5*b.IQR()
	hiFence := b.Q3 + 1.5*b.IQR()
	b.WhiskerLow, b.WhiskerHigh = b.Q1, b.Q3
	for _, v := range sorted {
		if v >= loFence {
			b.WhiskerLow = math.Min(v, b.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hiFence {
			b.WhiskerHigh = math.Max(sorted[i], b.Q3)
			break
		}
	}
	for i, v := range values {
		if v < loFence || v > hiFence {
			b.Outliers = append(b.Outliers, i)
		}
	}
	return b
}

// Shares returns each value's fraction of the total. ok is false when the total is zero.
func Shares(values []float64) (shares []float64, ok bool) {
	total := floats.Sum(values)
	if total == 0 {
		return nil, false
	}
	shares = make([]float64, len(values))
	for i, v := range values {
		shares[i] = v / total
	}
	return shares, true
}
