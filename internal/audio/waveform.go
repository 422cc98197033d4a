// Package audio turns encoded audio payloads into mono floating-point
// waveforms at the analysis sample rate.
package audio

import "time"

// TargetSampleRate is the rate every decoded clip is resampled to.
const TargetSampleRate = 22050

// Waveform is a mono signal with samples in [-1, 1].
type Waveform struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the length of the clip.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(w.Samples)) / float64(w.SampleRate) * float64(time.Second))
}
