// Package stats provides descriptive statistics over real sequences.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// ErrEmptyInput is returned when a statistic is requested for an empty
// sequence.
var ErrEmptyInput = errors.New("stats: empty input")

// Mean returns the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x)), nil
}

// StandardDeviation returns the sample standard deviation of x (n-1
// denominator), computed with Welford's online algorithm for numerical
// stability. A single-sample sequence has deviation 0.
func StandardDeviation(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) == 1 {
		return 0, nil
	}

	var mean, m2 float64
	for i, v := range x {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}

	return math.Sqrt(m2 / float64(len(x)-1)), nil
}

// Histogram bins x into the given number of unit-width bins anchored at
// the sequence minimum: a value v lands in bin int(v - min).
//
// Indices outside [0, bins) are clamped into range rather than rejected.
// This is deliberate: values at or beyond the top edge accumulate in the
// last bin instead of failing the whole scan.
func Histogram(x []float64, bins int) ([]int, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if bins <= 0 {
		return nil, fmt.Errorf("stats: bins must be > 0: %d", bins)
	}

	min := x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
	}

	hist := make([]int, bins)
	top := float64(bins - 1)
	for _, v := range x {
		idx := int(core.Clamp(v-min, 0, top))
		hist[idx]++
	}

	return hist, nil
}
