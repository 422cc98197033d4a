package audio

import (
	"context"
	"encoding/base64"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewDecoder(t *testing.T) {
	for _, format := range []string{"mp3", "MP3", "Mp3"} {
		dec, err := NewDecoder(format)
		if err != nil {
			t.Fatalf("NewDecoder(%q) error: %v", format, err)
		}
		if dec.Name() != "mp3" {
			t.Errorf("Name() = %q, want mp3", dec.Name())
		}
	}

	_, err := NewDecoder("wav")
	if err == nil {
		t.Fatal("expected error for wav")
	}
	if !strings.Contains(err.Error(), "wav") {
		t.Errorf("error %q should name the format", err)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := map[string]bool{
		"mp3":  true,
		"MP3":  true,
		"wav":  false,
		"":     false,
		"mp3 ": false,
	}
	for in, want := range tests {
		if got := IsSupportedFormat(in); got != want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDecodeBase64(t *testing.T) {
	raw := []byte("ID3\x03\x00fake-mp3-bytes")
	enc := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", enc, false},
		{"wrapped lines", enc[:8] + "\n" + enc[8:] + "\r\n", false},
		{"data uri", "data:audio/mpeg;base64," + enc, false},
		{"empty", "", true},
		{"whitespace only", " \n", true},
		{"not base64", "not base64!!", true},
		{"bad padding", enc[:len(enc)-1], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d bytes", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != string(raw) {
				t.Errorf("decoded %q, want %q", got, raw)
			}
		})
	}
}

func TestMP3DecoderRejectsGarbage(t *testing.T) {
	dec := NewMP3Decoder(TargetSampleRate)
	ctx := context.Background()

	if _, err := dec.Decode(ctx, nil); err == nil {
		t.Error("expected error for empty payload")
	}
	if _, err := dec.Decode(ctx, []byte("definitely not an mp3 stream")); err == nil {
		t.Error("expected error for non-mp3 payload")
	}
}

func TestMP3DecoderFixtures(t *testing.T) {
	tests := []struct {
		file    string
		srcRate int
	}{
		{"silence_44100.mp3", 44100},
		{"silence_48000.mp3", 48000},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatal(err)
			}

			w, err := NewMP3Decoder(TargetSampleRate).Decode(context.Background(), data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if w.SampleRate != TargetSampleRate {
				t.Errorf("SampleRate = %d, want %d", w.SampleRate, TargetSampleRate)
			}

			// 40 MPEG-1 Layer III frames of 1152 samples each.
			seconds := 40 * 1152 / float64(tt.srcRate)
			want := seconds * TargetSampleRate
			if got := float64(len(w.Samples)); math.Abs(got-want) > 0.1*want {
				t.Errorf("decoded %v samples, want about %v", got, want)
			}
			for i, v := range w.Samples {
				if math.Abs(v) > 1e-3 {
					t.Fatalf("sample %d = %v, want silence", i, v)
				}
			}
		})
	}
}

func TestStereoToMono(t *testing.T) {
	pcm := []byte{
		0x00, 0x40, 0x00, 0x40, // L=16384 R=16384
		0x00, 0x80, 0xff, 0x7f, // L=-32768 R=32767
		0x00, 0xc0, 0x00, 0x00, // L=-16384 R=0
		0x01, // partial frame
	}
	got := StereoToMono(pcm)
	want := []float64{0.5, -0.5 / 32768, -0.25}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResample(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	out, err := Resample(in, TargetSampleRate, TargetSampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(in) {
		t.Errorf("passthrough changed length: %d", len(out))
	}

	if _, err := Resample(in, 0, TargetSampleRate); err == nil {
		t.Error("expected error for zero source rate")
	}
}

func TestResampleToTargetRate(t *testing.T) {
	for _, src := range []int{44100, 48000, 16000} {
		in := make([]float64, src)
		for i := range in {
			in[i] = 0.5 * math.Sin(2*math.Pi*220*float64(i)/float64(src))
		}

		out, err := Resample(in, src, TargetSampleRate)
		if err != nil {
			t.Fatalf("%d Hz: %v", src, err)
		}
		// One second in, one second out, filter tail included.
		if got := len(out); math.Abs(float64(got-TargetSampleRate)) > 0.02*TargetSampleRate {
			t.Errorf("%d Hz: got %d samples, want about %d", src, got, TargetSampleRate)
		}

		var peak float64
		for _, v := range out[len(out)/4 : 3*len(out)/4] {
			peak = math.Max(peak, math.Abs(v))
		}
		if peak < 0.45 || peak > 0.55 {
			t.Errorf("%d Hz: peak = %v, want about 0.5", src, peak)
		}
	}
}

func TestWaveformDuration(t *testing.T) {
	w := Waveform{Samples: make([]float64, TargetSampleRate*2), SampleRate: TargetSampleRate}
	if got := w.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}
	if got := (Waveform{}).Duration(); got != 0 {
		t.Errorf("zero waveform Duration() = %v", got)
	}
}
