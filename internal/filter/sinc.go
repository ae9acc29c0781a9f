// Package filter designs the band-limited impulse that the step kernel
// table is sampled from, and evaluates FIR frequency responses.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-blip/internal/mathutil"
)

const (
	sincZeroThreshold = 1e-10

	maxHalfSpan = 64.0
)

// SincParams describes a Kaiser-windowed sinc impulse.
type SincParams struct {
	// Cutoff is the passband edge as a fraction of Nyquist, in (0, 1].
	Cutoff float64

	// HalfSpan is the window half width in samples. The impulse is zero
	// beyond ±HalfSpan.
	HalfSpan float64

	// Attenuation is the design stopband attenuation in dB. It selects β.
	Attenuation float64
}

// Validate checks if the parameters describe a usable impulse.
func (p *SincParams) Validate() error {
	if p.Cutoff <= 0 || p.Cutoff > 1 {
		return fmt.Errorf("invalid cutoff: %v (must be in (0, 1])", p.Cutoff)
	}

	if p.HalfSpan < 1 || p.HalfSpan > maxHalfSpan {
		return fmt.Errorf("invalid half span: %v samples (must be in [1, %v])", p.HalfSpan, maxHalfSpan)
	}

	if p.Attenuation < 0 {
		return fmt.Errorf("invalid attenuation: %v dB (must be positive)", p.Attenuation)
	}

	return nil
}

// Impulse is a Kaiser-windowed sinc that can be evaluated at any offset.
type Impulse struct {
	cutoff   float64
	halfSpan float64
	beta     float64
}

// NewImpulse validates params and precomputes the window β.
func NewImpulse(params SincParams) (*Impulse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Impulse{
		cutoff:   params.Cutoff,
		halfSpan: params.HalfSpan,
		beta:     mathutil.KaiserBeta(params.Attenuation),
	}, nil
}

// Beta returns the Kaiser β in use.
func (im *Impulse) Beta() float64 {
	return im.beta
}

// At evaluates the impulse x samples from its centre:
//
//	h(x) = fc · sin(π fc x) / (π fc x) · w(x)
//
// where fc is the cutoff and w the Kaiser window. Sampled at unit spacing
// its values sum to roughly 1.
func (im *Impulse) At(x float64) float64 {
	w := mathutil.Kaiser(x, im.halfSpan, im.beta)
	if w == 0 {
		return 0
	}

	arg := math.Pi * im.cutoff * x
	if math.Abs(arg) < sincZeroThreshold {
		return im.cutoff * w
	}
	return im.cutoff * math.Sin(arg) / arg * w
}
