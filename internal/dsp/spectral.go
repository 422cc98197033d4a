package dsp

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// flatnessFloor keeps log() finite on silent bins.
const flatnessFloor = 1e-10

// Hann returns a periodic Hann window of length n, the form used for
// spectral analysis.
func Hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// PowerSpectrogram computes |STFT|^2 of x using Hann-windowed, zero-padded
// centred frames. The result is indexed [frame][bin] with nFFT/2+1 bins.
func PowerSpectrogram(x []float64, nFFT, hop int) [][]float64 {
	frames := CenteredFrames(x, nFFT, hop, PadConstant)
	if len(frames) == 0 {
		return nil
	}

	win := Hann(nFFT)
	fft := fourier.NewFFT(nFFT)
	buf := make([]float64, nFFT)
	coeff := make([]complex128, nFFT/2+1)

	spec := make([][]float64, len(frames))
	for i, frame := range frames {
		floats.MulTo(buf, frame, win)
		coeff = fft.Coefficients(coeff, buf)
		power := make([]float64, len(coeff))
		for k, c := range coeff {
			re, im := real(c), imag(c)
			power[k] = re*re + im*im
		}
		spec[i] = power
	}
	return spec
}

// SpectralFlatness returns the per-frame ratio of the geometric mean to the
// arithmetic mean of the power spectrum. Values near 1 indicate noise-like
// frames, values near 0 tonal ones.
func SpectralFlatness(x []float64) []float64 {
	spec := PowerSpectrogram(x, FrameLength, HopLength)
	out := make([]float64, len(spec))
	for i, power := range spec {
		var logSum, sum float64
		for _, p := range power {
			p = math.Max(p, flatnessFloor)
			logSum += math.Log(p)
			sum += p
		}
		n := float64(len(power))
		out[i] = math.Exp(logSum/n) / (sum / n)
	}
	return out
}
