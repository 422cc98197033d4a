package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes MPEG-1/2 Layer III streams.
type MP3Decoder struct {
	targetRate int
}

// NewMP3Decoder creates a decoder that resamples to targetRate.
func NewMP3Decoder(targetRate int) *MP3Decoder {
	return &MP3Decoder{targetRate: targetRate}
}

// Name returns the decoder name.
func (d *MP3Decoder) Name() string {
	return FormatMP3
}

// Decode decodes an MP3 byte stream, downmixes it to mono and resamples it.
func (d *MP3Decoder) Decode(ctx context.Context, data []byte) (*Waveform, error) {
	if len(data) == 0 {
		return nil, errors.New("empty audio payload")
	}

	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// go-mp3 always emits interleaved 16-bit little-endian stereo.
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	if len(pcm) < stereoFrameBytes {
		return nil, errors.New("mp3: no audio frames decoded")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples, err := Resample(StereoToMono(pcm), dec.SampleRate(), d.targetRate)
	if err != nil {
		return nil, err
	}
	return &Waveform{Samples: samples, SampleRate: d.targetRate}, nil
}
