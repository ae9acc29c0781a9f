// Package analysis measures the spectral quality of synthesized PCM.
package analysis

import (
	"errors"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	fullScale = 32768.0

	// Bins on each side of a harmonic counted as part of it. Covers the
	// Hann main lobe.
	DefaultHarmonicWidth = 3

	// Bins near DC ignored by AliasReport.
	dcBins = 3

	minDB = -300.0
)

// ErrTooShort indicates too few samples to analyze.
var ErrTooShort = errors.New("analysis: need at least 8 samples")

// PowerSpectrum returns the power of each bin from DC to Nyquist of the
// Hann-windowed samples, normalized to full scale.
func PowerSpectrum(samples []int16) ([]float64, error) {
	n := len(samples)
	if n < 8 {
		return nil, ErrTooShort
	}

	x := make([]float64, n)
	for i, s := range samples {
		x[i] = float64(s) * hann(i, n)
	}
	f64.Scale(x, x, 1/fullScale)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, x)

	power := make([]float64, len(coeffs))
	for k, c := range coeffs {
		re, im := real(c), imag(c)
		power[k] = re*re + im*im
	}
	return power, nil
}

func hann(i, n int) float64 {
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
}

// AliasReport splits spectral energy into harmonics of a fundamental and
// everything else.
type AliasReport struct {
	// Harmonic is the energy within the harmonic width of multiples of the
	// fundamental bin.
	Harmonic float64

	// Other is the remaining energy above DC.
	Other float64
}

// RatioDB returns Other relative to Harmonic in dB.
func (r AliasReport) RatioDB() float64 {
	if r.Harmonic <= 0 {
		return 0
	}
	if r.Other <= 0 {
		return minDB
	}
	return 10 * math.Log10(r.Other/r.Harmonic)
}

// Aliasing analyzes samples of a periodic signal whose fundamental falls
// on bin fundamental of a len(samples) point transform.
func Aliasing(samples []int16, fundamental, width int) (AliasReport, error) {
	power, err := PowerSpectrum(samples)
	if err != nil {
		return AliasReport{}, err
	}
	if fundamental <= width || fundamental >= len(power) {
		return AliasReport{}, errors.New("analysis: fundamental bin out of range")
	}

	var harmonic []float64
	var other []float64
	for k := dcBins; k < len(power); k++ {
		nearest := (k + fundamental/2) / fundamental * fundamental
		if nearest > 0 && abs(k-nearest) <= width {
			harmonic = append(harmonic, power[k])
		} else {
			other = append(other, power[k])
		}
	}

	return AliasReport{
		Harmonic: f64.Sum(harmonic),
		Other:    f64.Sum(other),
	}, nil
}

// RMS returns the root mean square of samples relative to full scale.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s) / fullScale
	}
	return math.Sqrt(f64.DotProduct(x, x) / float64(len(x)))
}

// PeakBin returns the bin with the most power above DC.
func PeakBin(power []float64) int {
	best := 0
	for k := dcBins; k < len(power); k++ {
		if best == 0 || power[k] > power[best] {
			best = k
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
