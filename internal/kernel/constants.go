package kernel

import "github.com/tphakala/go-audio-blip/internal/rate"

// Kernel geometry.
const (
	// HalfWidth is the number of taps on each side of a step.
	HalfWidth = 8

	// Width is the number of output cells a standard-quality step touches.
	Width = 2 * HalfWidth

	// PhaseBits selects how many sub-sample phases the table holds.
	PhaseBits = 5

	// PhaseCount is the number of sub-sample phases.
	PhaseCount = 1 << PhaseBits

	// DeltaBits is the fixed-point scale of a unit step.
	DeltaBits = 15

	// DeltaUnit is the sum of every table row.
	DeltaUnit = 1 << DeltaBits
)

const (
	phaseShift = rate.FracBits - PhaseBits
	interpMask = 1<<phaseShift - 1
	fastShift  = rate.FracBits - DeltaBits

	// Taps written by the fast path.
	fastLo = HalfWidth - 1
	fastHi = HalfWidth
)

// Step design defaults.
const (
	DefaultCutoff      = 0.9
	DefaultAttenuation = 50.0
)
