package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// TroughThreshold is the largest normalised difference accepted as a
	// pitch period before falling back to the global minimum.
	TroughThreshold = 0.1

	// silentFrameEnergy is the frame energy below which no period can be
	// estimated; such frames are reported as NaN.
	silentFrameEnergy = 1e-12

	tiny = 1e-38
)

// YIN estimates the fundamental frequency of each centred frame of x with
// the YIN algorithm, searching periods that correspond to [fmin, fmax] Hz.
//
// Frames without energy have no defined period and are reported as NaN, as
// are frames whose difference function would reach into the centring pad:
// those mix signal with zeros and do not measure the clip's pitch. Frames
// whose normalised difference never drops below TroughThreshold use the
// period of its global minimum.
func YIN(x []float64, sampleRate int, fmin, fmax float64) []float64 {
	if sampleRate <= 0 || fmin <= 0 || fmax <= fmin {
		return nil
	}

	winLen := FrameLength / 2
	minPeriod := int(math.Floor(float64(sampleRate) / fmax))
	maxPeriod := int(math.Ceil(float64(sampleRate) / fmin))
	if limit := FrameLength - winLen - 1; maxPeriod > limit {
		maxPeriod = limit
	}
	if minPeriod < 1 {
		minPeriod = 1
	}
	if minPeriod >= maxPeriod {
		return nil
	}

	frames := CenteredFrames(x, FrameLength, HopLength, PadConstant)
	out := make([]float64, len(frames))
	est := newYINEstimator(winLen, minPeriod, maxPeriod)
	span := winLen + maxPeriod
	for i, frame := range frames {
		start := i*HopLength - FrameLength/2
		if start < 0 || start+span > len(x) {
			out[i] = math.NaN()
			continue
		}
		period, ok := est.period(frame)
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(sampleRate) / period
	}
	return out
}

// yinEstimator holds scratch buffers reused across frames.
type yinEstimator struct {
	winLen    int
	minPeriod int
	maxPeriod int

	diff   []float64 // d(tau), tau in [0, maxPeriod]
	cmnd   []float64 // normalised difference, tau in [minPeriod, maxPeriod]
	energy []float64 // prefix sums of squared samples
}

func newYINEstimator(winLen, minPeriod, maxPeriod int) *yinEstimator {
	return &yinEstimator{
		winLen:    winLen,
		minPeriod: minPeriod,
		maxPeriod: maxPeriod,
		diff:      make([]float64, maxPeriod+1),
		cmnd:      make([]float64, maxPeriod-minPeriod+1),
		energy:    make([]float64, FrameLength+1),
	}
}

// period returns the estimated period in (fractional) samples.
func (e *yinEstimator) period(frame []float64) (float64, bool) {
	w := e.winLen

	for i, v := range frame {
		e.energy[i+1] = e.energy[i] + v*v
	}
	if e.energy[len(frame)] < silentFrameEnergy {
		return 0, false
	}

	// d(tau) = E[0,w) + E[tau,tau+w) - 2 * sum x[j]x[j+tau]
	e0 := e.energy[w]
	for tau := 0; tau <= e.maxPeriod; tau++ {
		et := e.energy[tau+w] - e.energy[tau]
		acf := floats.Dot(frame[:w], frame[tau:tau+w])
		d := e0 + et - 2*acf
		if d < 0 {
			d = 0
		}
		e.diff[tau] = d
	}

	var running float64
	for tau := 1; tau <= e.maxPeriod; tau++ {
		running += e.diff[tau]
		if tau < e.minPeriod {
			continue
		}
		e.cmnd[tau-e.minPeriod] = e.diff[tau] / (running/float64(tau) + tiny)
	}

	k := e.pick()
	return float64(e.minPeriod+k) + parabolicShift(e.cmnd, k), true
}

// pick returns the index of the first local minimum below TroughThreshold,
// or of the global minimum when there is none.
func (e *yinEstimator) pick() int {
	c := e.cmnd
	n := len(c)
	for i := 0; i < n; i++ {
		if c[i] >= TroughThreshold {
			continue
		}
		if isTrough(c, i) {
			return i
		}
	}
	return floats.MinIdx(c)
}

func isTrough(c []float64, i int) bool {
	n := len(c)
	switch {
	case n == 1:
		return true
	case i == 0:
		return c[0] < c[1]
	case i == n-1:
		return c[i] < c[i-1]
	default:
		return c[i] < c[i-1] && c[i] <= c[i+1]
	}
}

// parabolicShift refines index i of c by fitting a parabola through its
// neighbours. Edge bins and fits whose vertex lies outside (-1, 1) yield 0.
func parabolicShift(c []float64, i int) float64 {
	if i <= 0 || i >= len(c)-1 {
		return 0
	}
	a := c[i+1] + c[i-1] - 2*c[i]
	b := (c[i+1] - c[i-1]) / 2
	if math.Abs(b) >= math.Abs(a) {
		return 0
	}
	return -b / a
}
