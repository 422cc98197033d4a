package audio

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DecodeBase64 decodes a standard base64 payload. Whitespace anywhere in the
// input and a leading data URI header ("data:audio/mpeg;base64,") are
// ignored.
func DecodeBase64(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ";base64,"); i >= 0 {
			s = s[i+len(";base64,"):]
		}
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, errors.New("empty base64 payload")
	}
	return base64.StdEncoding.DecodeString(s)
}
