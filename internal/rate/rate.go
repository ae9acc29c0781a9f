// Package rate maps input clock times onto the output sample time line.
//
// The clock/sample relationship is held as a 64-bit fixed-point factor
// (output time units per input clock) plus a sub-sample offset carried
// across time frames. The factor is always rounded up, so a given clock
// span never yields fewer samples than the configured rates ask for.
package rate

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

var (
	// ErrInvalidRates indicates a clock/sample rate pair that cannot be represented.
	ErrInvalidRates = errors.New("invalid clock or sample rate")

	// ErrFrameTooLong indicates a time frame that would produce more than MaxFrame samples.
	ErrFrameTooLong = errors.New("time frame too long")

	// ErrOutOfRange indicates a clock time beyond the representable window.
	ErrOutOfRange = errors.New("clock time out of range")

	// ErrInvalidCount indicates a negative sample count.
	ErrInvalidCount = errors.New("invalid sample count")
)

// Converter holds the fixed-point clock to sample mapping for one stream.
type Converter struct {
	factor uint64
	offset uint64
}

// New returns a converter set to MaxRatio clocks per sample with a zero offset.
func New() *Converter {
	return &Converter{factor: TimeUnit / MaxRatio}
}

// SetRates sets the input clock rate and output sample rate. For every
// clockRate input clocks, at least sampleRate samples are generated.
// On error the previous factor is kept.
func (c *Converter) SetRates(clockRate, sampleRate float64) error {
	factor, err := factorFor(clockRate, sampleRate)
	if err != nil {
		return err
	}
	c.factor = factor
	return nil
}

// Validate reports whether SetRates would accept the rate pair.
func Validate(clockRate, sampleRate float64) error {
	_, err := factorFor(clockRate, sampleRate)
	return err
}

func factorFor(clockRate, sampleRate float64) (uint64, error) {
	if !validRate(clockRate) || !validRate(sampleRate) {
		return 0, fmt.Errorf("%w: rates must be positive and finite (clock %v Hz, sample %v Hz)",
			ErrInvalidRates, clockRate, sampleRate)
	}

	if clockRate > sampleRate*MaxRatio {
		return 0, fmt.Errorf("%w: clock rate %v Hz exceeds %d times sample rate %v Hz",
			ErrInvalidRates, clockRate, MaxRatio, sampleRate)
	}

	factor, ok := ceilFactor(clockRate, sampleRate)
	if !ok {
		return 0, fmt.Errorf("%w: sample rate %v Hz too high for clock rate %v Hz",
			ErrInvalidRates, sampleRate, clockRate)
	}
	return factor, nil
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}

// ceilFactor computes ceil(TimeUnit * sampleRate / clockRate) exactly.
// A float64 ceil can round the quotient down before the ceil sees it.
func ceilFactor(clockRate, sampleRate float64) (uint64, bool) {
	q := new(big.Rat).SetFloat64(sampleRate)
	q.Mul(q, new(big.Rat).SetUint64(TimeUnit))
	q.Quo(q, new(big.Rat).SetFloat64(clockRate))

	n, rem := new(big.Int).QuoRem(q.Num(), q.Denom(), new(big.Int))
	if rem.Sign() != 0 {
		n.Add(n, big.NewInt(1))
	}

	if n.Sign() <= 0 || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// Reset returns the offset to the start of the stream. The factor is kept.
func (c *Converter) Reset() {
	c.offset = 0
}

// Factor returns output time units per input clock.
func (c *Converter) Factor() uint64 {
	return c.factor
}

// Offset returns the sub-sample phase, in time units, of the current frame start.
func (c *Converter) Offset() uint64 {
	return c.offset
}

// SamplesPerClock returns the effective ratio after fixed-point rounding.
func (c *Converter) SamplesPerClock() float64 {
	return float64(c.factor) / float64(TimeUnit)
}

// ClocksNeeded returns the length of time frame, in clocks, that makes
// exactly samples more samples available when the clock rate is at least
// the sample rate. With fewer clocks than samples per second it is the
// shortest frame yielding at least that many.
func (c *Converter) ClocksNeeded(samples int) (int, error) {
	if samples < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, samples)
	}
	if samples > MaxFrame {
		return 0, fmt.Errorf("%w: %d samples requested (max %d)", ErrFrameTooLong, samples, MaxFrame)
	}

	needed := uint64(samples) * TimeUnit
	if needed <= c.offset {
		return 0, nil
	}

	span := needed - c.offset
	clocks := span / c.factor
	if span%c.factor != 0 {
		clocks++
	}
	return int(clocks), nil
}

// SamplesIn reports how many samples ending a frame of the given length
// would make available, without changing state.
func (c *Converter) SamplesIn(clocks uint32) (int, error) {
	n, _, err := c.end(clocks)
	return n, err
}

// Advance ends a time frame of the given length and returns the number of
// new samples. State is unchanged on error.
func (c *Converter) Advance(clocks uint32) (int, error) {
	n, offset, err := c.end(clocks)
	if err != nil {
		return 0, err
	}
	c.offset = offset
	return n, nil
}

func (c *Converter) end(clocks uint32) (int, uint64, error) {
	off, ok := c.at(clocks)
	if !ok || off>>TimeBits > MaxFrame {
		return 0, 0, fmt.Errorf("%w: %d clocks exceed %d samples", ErrFrameTooLong, clocks, MaxFrame)
	}
	return int(off >> TimeBits), off & timeMask, nil
}

// Position maps a clock time in the current frame to an output position
// with FracBits of fraction. Split it with Index and Frac.
func (c *Converter) Position(clock uint32) (uint64, error) {
	off, ok := c.at(clock)
	if !ok {
		return 0, fmt.Errorf("%w: clock %d", ErrOutOfRange, clock)
	}
	return off >> PreShift, nil
}

// at computes clock*factor + offset, reporting overflow.
func (c *Converter) at(clock uint32) (uint64, bool) {
	hi, lo := bits.Mul64(uint64(clock), c.factor)
	lo, carry := bits.Add64(lo, c.offset, 0)
	return lo, hi == 0 && carry == 0
}

// Index returns the whole-sample part of a position.
func Index(pos uint64) uint64 {
	return pos >> FracBits
}

// Frac returns the sub-sample part of a position, FracBits wide.
func Frac(pos uint64) uint32 {
	return uint32(pos & fracMask)
}
