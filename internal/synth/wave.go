// Package synth generates simple waveforms as streams of amplitude deltas.
package synth

import (
	"errors"
	"fmt"
	"math"
)

// Adder receives deltas. *blip.Buffer implements it.
type Adder interface {
	AddDelta(clock uint32, delta int32) error
	AddDeltaFast(clock uint32, delta int32) error
}

// Shape selects a waveform.
type Shape int

const (
	// Square alternates between +Amplitude and -Amplitude every half period.
	Square Shape = iota

	// Saw rises from -Amplitude to +Amplitude in SawSteps steps, then drops.
	Saw
)

// SawSteps is the number of levels in one saw cycle.
const SawSteps = 16

const squareSteps = 2

// ErrInvalidWave indicates a wave that cannot be generated.
var ErrInvalidWave = errors.New("invalid wave")

// ParseShape converts a shape name.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "square":
		return Square, nil
	case "saw":
		return Saw, nil
	default:
		return 0, fmt.Errorf("%w: unknown shape %q (must be square or saw)", ErrInvalidWave, name)
	}
}

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Saw:
		return "saw"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

func (s Shape) steps() int {
	if s == Saw {
		return SawSteps
	}
	return squareSteps
}

// Wave emits the deltas of a periodic waveform, one time frame at a time.
type Wave struct {
	shape     Shape
	interval  int
	amplitude int32
	fast      bool

	time  int   // clock of the next delta, relative to the frame start
	step  int   // position within the cycle
	level int32 // level last written
}

// NewWave creates a wave with the given period in clocks and peak amplitude.
func NewWave(shape Shape, period int, amplitude int32) (*Wave, error) {
	if shape != Square && shape != Saw {
		return nil, fmt.Errorf("%w: unknown shape %d", ErrInvalidWave, shape)
	}
	if period < shape.steps() {
		return nil, fmt.Errorf("%w: period %d clocks shorter than %d steps", ErrInvalidWave, period, shape.steps())
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: negative amplitude %d", ErrInvalidWave, amplitude)
	}
	return &Wave{
		shape:     shape,
		interval:  int(math.Round(float64(period) / float64(shape.steps()))),
		amplitude: amplitude,
	}, nil
}

// NewWaveForFrequency creates a wave of the given frequency in Hz and
// volume from 0 to 1 of full scale, for a buffer clocked at clockRate.
func NewWaveForFrequency(shape Shape, clockRate, freq, volume float64) (*Wave, error) {
	if freq <= 0 || clockRate <= 0 {
		return nil, fmt.Errorf("%w: frequency %v Hz at clock rate %v Hz", ErrInvalidWave, freq, clockRate)
	}
	if volume < 0 || volume > 1 {
		return nil, fmt.Errorf("%w: volume %v (must be 0-1)", ErrInvalidWave, volume)
	}
	period := clockRate / freq
	if period > math.MaxInt32 {
		return nil, fmt.Errorf("%w: frequency %v Hz too low", ErrInvalidWave, freq)
	}
	// Bipolar, so half of the 16-bit range.
	amplitude := int32(volume*32767 + 0.5)
	return NewWave(shape, int(period+0.5), amplitude)
}

// SetFast selects the two-tap step for subsequent deltas.
func (w *Wave) SetFast(fast bool) {
	w.fast = fast
}

// Level returns the level last written.
func (w *Wave) Level() int32 {
	return w.level
}

// Run adds the deltas falling before clocks into dst and moves the wave
// on to the next frame.
func (w *Wave) Run(dst Adder, clocks int) error {
	for ; w.time < clocks; w.time += w.interval {
		target := w.target()
		if delta := target - w.level; delta != 0 {
			var err error
			if w.fast {
				err = dst.AddDeltaFast(uint32(w.time), delta)
			} else {
				err = dst.AddDelta(uint32(w.time), delta)
			}
			if err != nil {
				return fmt.Errorf("clock %d: %w", w.time, err)
			}
			w.level = target
		}
		w.step = (w.step + 1) % w.shape.steps()
	}
	w.time -= clocks
	return nil
}

func (w *Wave) target() int32 {
	if w.shape == Saw {
		return -w.amplitude + int32(int64(2*w.amplitude)*int64(w.step)/(SawSteps-1))
	}
	if w.step == 0 {
		return w.amplitude
	}
	return -w.amplitude
}
