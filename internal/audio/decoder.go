package audio

import (
	"context"
	"fmt"
	"strings"
)

// FormatMP3 is the only container accepted by the detection API.
const FormatMP3 = "mp3"

// Decoder decodes one encoded clip into a Waveform.
type Decoder interface {
	// Decode decodes data and returns a mono waveform at the decoder's
	// target sample rate.
	Decode(ctx context.Context, data []byte) (*Waveform, error)

	// Name returns the format handled by the decoder (e.g., "mp3").
	Name() string
}

// IsSupportedFormat reports whether format (case-insensitive) has a decoder.
func IsSupportedFormat(format string) bool {
	return strings.ToLower(format) == FormatMP3
}

// NewDecoder returns the decoder for format, matched case-insensitively.
func NewDecoder(format string) (Decoder, error) {
	switch strings.ToLower(format) {
	case FormatMP3:
		return NewMP3Decoder(TargetSampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", format)
	}
}
