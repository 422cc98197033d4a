package detector

import (
	"voicedetect/internal/audio"
	"voicedetect/internal/dsp"
)

// Pitch search range in Hz.
const (
	PitchMinHz = 50
	PitchMaxHz = 300
)

// Features are the clip-level statistics the scorer looks at.
// A feature the clip does not define (for example pitch variance on a clip
// with no voiced frame) is NaN.
type Features struct {
	PitchVariance float64 `json:"pitchVariance"`
	FlatnessMean  float64 `json:"spectralFlatnessMean"`
	RMSVariance   float64 `json:"rmsVariance"`
	ZCRVariance   float64 `json:"zcrVariance"`
}

// Extract computes Features for a waveform.
func Extract(w audio.Waveform) Features {
	return Features{
		PitchVariance: dsp.PopVariance(dsp.YIN(w.Samples, w.SampleRate, PitchMinHz, PitchMaxHz)),
		FlatnessMean:  dsp.Mean(dsp.SpectralFlatness(w.Samples)),
		RMSVariance:   dsp.PopVariance(dsp.RMS(w.Samples)),
		ZCRVariance:   dsp.PopVariance(dsp.ZeroCrossingRate(w.Samples)),
	}
}
