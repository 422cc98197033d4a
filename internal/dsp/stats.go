package dsp

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Finite returns the values of x that are neither NaN nor infinite.
// Undefined frames (for example unvoiced pitch frames) are reported as NaN
// by the analyses in this package and are dropped here before any statistic
// is taken.
func Finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Mean is the arithmetic mean of the finite values of x, or NaN if there
// are none.
func Mean(x []float64) float64 {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.Mean(f, nil)
}

// PopVariance is the population variance (divisor N) of the finite values
// of x, or NaN if there are none.
func PopVariance(x []float64) float64 {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.PopVariance(f, nil)
}
