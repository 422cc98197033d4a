package audio

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

const stereoFrameBytes = 4

// StereoToMono converts interleaved 16-bit little-endian stereo PCM to mono
// samples in [-1, 1] by averaging the two channels. A trailing partial
// frame is ignored.
func StereoToMono(pcm []byte) []float64 {
	n := len(pcm) / stereoFrameBytes
	out := make([]float64, n)
	for i := range n {
		j := i * stereoFrameBytes
		l := int16(pcm[j]) | int16(pcm[j+1])<<8
		r := int16(pcm[j+2]) | int16(pcm[j+3])<<8
		out[i] = (float64(l) + float64(r)) / 2 / 32768.0
	}
	return out
}

// Resample converts mono samples from srcRate to dstRate. Samples are
// returned unchanged when the rates already match.
func Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate conversion %d -> %d", srcRate, dstRate)
	}
	if srcRate == dstRate {
		return samples, nil
	}

	out, err := resampling.ResampleMono(samples, float64(srcRate), float64(dstRate), resampling.QualityHigh)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	return out, nil
}
