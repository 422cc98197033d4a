package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// zeroThreshold is the magnitude below which a sample counts as zero when
// looking for sign changes.
const zeroThreshold = 1e-10

// RMS returns the root-mean-square amplitude of each zero-padded centred
// frame of x.
func RMS(x []float64) []float64 {
	frames := CenteredFrames(x, FrameLength, HopLength, PadConstant)
	out := make([]float64, len(frames))
	for i, frame := range frames {
		out[i] = math.Sqrt(floats.Dot(frame, frame) / float64(len(frame)))
	}
	return out
}

// ZeroCrossingRate returns, for each edge-padded centred frame of x, the
// fraction of adjacent sample pairs whose signs differ. Samples within
// zeroThreshold of zero are treated as zero, and zero counts as positive.
func ZeroCrossingRate(x []float64) []float64 {
	frames := CenteredFrames(x, FrameLength, HopLength, PadEdge)
	out := make([]float64, len(frames))
	for i, frame := range frames {
		crossings := 0
		prev := negative(frame[0])
		for _, v := range frame[1:] {
			cur := negative(v)
			if cur != prev {
				crossings++
			}
			prev = cur
		}
		out[i] = float64(crossings) / float64(len(frame))
	}
	return out
}

func negative(v float64) bool {
	if math.Abs(v) <= zeroThreshold {
		return false
	}
	return v < 0
}
