package blip

import (
	"fmt"

	"github.com/tphakala/go-audio-blip/internal/kernel"
	"github.com/tphakala/go-audio-blip/internal/rate"
)

// Buffer turns amplitude deltas on an input clock into 16-bit samples.
//
// Deltas accumulate in a differential buffer: each cell holds the change
// in level at that output sample, scaled by kernel.DeltaUnit. Reading
// integrates the cells into samples. A Buffer must not be used from more
// than one goroutine at a time.
type Buffer struct {
	conv  *rate.Converter
	table *kernel.Table

	clockRate  float64
	sampleRate float64

	size       int
	avail      int
	integrator int64
	samples    []int64
	written    int // cells in use, including deltas past the frame end

	closed bool
}

// New creates a buffer holding up to size unread samples, set to MaxRatio
// clocks per sample. Call SetRates before adding deltas.
func New(size int) (*Buffer, error) {
	return NewWithConfig(&Config{Size: size})
}

// NewWithConfig creates a buffer from cfg.
func NewWithConfig(cfg *Config) (*Buffer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Buffer{
		conv:       rate.New(),
		table:      kernel.Default(),
		clockRate:  MaxRatio,
		sampleRate: 1,
		size:       cfg.Size,
		samples:    make([]int64, cfg.Size+bufExtra),
	}

	if cfg.ClockRate != 0 {
		if err := b.SetRates(cfg.ClockRate, cfg.SampleRate); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// SetRates sets the input clock rate and output sample rate. For every
// clockRate input clocks, approximately sampleRate samples are generated,
// never fewer. On error the previous rates stay in effect.
func (b *Buffer) SetRates(clockRate, sampleRate float64) error {
	if err := b.checkRates(clockRate, sampleRate); err != nil {
		return err
	}
	if err := b.conv.SetRates(clockRate, sampleRate); err != nil {
		return err
	}
	b.clockRate = clockRate
	b.sampleRate = sampleRate
	return nil
}

func (b *Buffer) checkRates(clockRate, sampleRate float64) error {
	if b.closed {
		return ErrClosed
	}
	return rate.Validate(clockRate, sampleRate)
}

// Rates returns the clock and sample rates last accepted by SetRates.
func (b *Buffer) Rates() (clockRate, sampleRate float64) {
	return b.clockRate, b.sampleRate
}

// Size returns the capacity in samples.
func (b *Buffer) Size() int {
	return b.size
}

// Clear discards all samples, deltas and the sub-sample phase. The rates
// are kept. It does nothing on a closed buffer.
func (b *Buffer) Clear() {
	if b.closed {
		return
	}
	b.conv.Reset()
	b.avail = 0
	b.written = 0
	b.integrator = 0
	clear(b.samples)
}

// AddDelta adds a step of height delta at the given clock time of the
// current frame, using the band-limited kernel.
func (b *Buffer) AddDelta(clock uint32, delta int32) error {
	cells, frac, err := b.locate(clock)
	if err != nil {
		return err
	}
	b.table.Add(cells, frac, delta)
	return nil
}

// AddDeltaFast is like AddDelta but uses a cheaper two-tap linear step.
func (b *Buffer) AddDeltaFast(clock uint32, delta int32) error {
	cells, frac, err := b.locate(clock)
	if err != nil {
		return err
	}
	kernel.AddFast(cells, frac, delta)
	return nil
}

// locate maps a clock time to the kernel's window of cells and the
// sub-sample fraction.
func (b *Buffer) locate(clock uint32) ([]int64, uint32, error) {
	if b.closed {
		return nil, 0, ErrClosed
	}

	pos, err := b.conv.Position(clock)
	if err != nil {
		return nil, 0, err
	}

	index := rate.Index(pos)
	if index > uint64(b.size+endFrameExtra-b.avail) {
		return nil, 0, fmt.Errorf("%w: clock %d is %d samples into the frame (room for %d)",
			ErrDeltaOutOfRange, clock, index, b.size+endFrameExtra-b.avail)
	}

	start := b.avail + int(index)
	b.written = max(b.written, start+kernel.Width)
	return b.samples[start : start+kernel.Width], rate.Frac(pos), nil
}

// ClocksNeeded returns the frame length, in clocks, that makes samples
// more samples available. It is exact when the clock rate is at least the
// sample rate. When upsampling a single clock can make several samples, so
// the frame may yield more than requested; read SamplesAvail after
// EndFrame rather than assuming the count.
func (b *Buffer) ClocksNeeded(samples int) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}

	clocks, err := b.conv.ClocksNeeded(samples)
	if err != nil {
		return 0, err
	}

	if b.avail+samples > b.size {
		return 0, fmt.Errorf("%w: %d samples requested, %d of %d in use",
			ErrBufferFull, samples, b.avail, b.size)
	}
	return clocks, nil
}

// EndFrame ends the current time frame after the given number of clocks
// and makes the samples it covers available. The next frame starts at
// clock 0. On error nothing changes.
func (b *Buffer) EndFrame(clocks uint32) error {
	n, err := b.checkEnd(clocks)
	if err != nil {
		return err
	}
	if _, err := b.conv.Advance(clocks); err != nil {
		return err
	}
	b.avail += n
	return nil
}

func (b *Buffer) checkEnd(clocks uint32) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}

	n, err := b.conv.SamplesIn(clocks)
	if err != nil {
		return 0, err
	}

	if b.avail+n > b.size {
		return 0, fmt.Errorf("%w: frame of %d clocks adds %d samples, %d of %d in use",
			ErrBufferFull, clocks, n, b.avail, b.size)
	}
	return n, nil
}

// SamplesAvail returns the number of samples ready to be read.
func (b *Buffer) SamplesAvail() int {
	if b.closed {
		return 0
	}
	return b.avail
}

// Close releases the buffer's memory. Further calls fail with ErrClosed.
// Closing a nil or already closed buffer does nothing.
func (b *Buffer) Close() error {
	if b == nil || b.closed {
		return nil
	}
	b.closed = true
	b.samples = nil
	b.avail = 0
	b.written = 0
	return nil
}
