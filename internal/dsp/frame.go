// Package dsp implements the frame-level signal statistics used to profile a
// speech clip: spectral flatness, RMS energy, zero-crossing rate and a YIN
// fundamental-frequency track.
//
// All analyses share one framing convention: frames of FrameLength samples
// spaced HopLength apart, with the signal padded by half a frame on both sides
// so that frame t is centred on sample t*HopLength.
package dsp

const (
	// FrameLength is the analysis window in samples (~93 ms at 22050 Hz).
	FrameLength = 2048
	// HopLength is the distance between successive frames.
	HopLength = 512
)

// PadMode selects how Center extends the signal beyond its ends.
type PadMode int

const (
	// PadConstant pads with zeros.
	PadConstant PadMode = iota
	// PadEdge repeats the first and last sample.
	PadEdge
)

// Center returns a copy of x padded by frameLen/2 samples on both sides.
func Center(x []float64, frameLen int, mode PadMode) []float64 {
	pad := frameLen / 2
	out := make([]float64, len(x)+2*pad)
	copy(out[pad:], x)
	if mode == PadEdge && len(x) > 0 {
		first, last := x[0], x[len(x)-1]
		for i := 0; i < pad; i++ {
			out[i] = first
			out[len(out)-1-i] = last
		}
	}
	return out
}

// Frames slices x into windows of frameLen samples spaced hop apart.
// The returned frames alias x. Trailing samples that do not fill a whole
// frame are dropped; nil is returned when x is shorter than one frame.
func Frames(x []float64, frameLen, hop int) [][]float64 {
	if frameLen <= 0 || hop <= 0 || len(x) < frameLen {
		return nil
	}
	n := 1 + (len(x)-frameLen)/hop
	frames := make([][]float64, n)
	for i := range frames {
		start := i * hop
		frames[i] = x[start : start+frameLen : start+frameLen]
	}
	return frames
}

// CenteredFrames pads x with Center and frames the result.
func CenteredFrames(x []float64, frameLen, hop int, mode PadMode) [][]float64 {
	return Frames(Center(x, frameLen, mode), frameLen, hop)
}
