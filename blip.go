package blip

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-blip/internal/rate"
)

// Config holds buffer configuration.
type Config struct {
	// Size is the capacity in output samples. Samples beyond this that
	// have not been read cannot be added.
	Size int

	// ClockRate is the input clock rate in Hz. Zero keeps the default of
	// MaxRatio clocks per sample.
	ClockRate float64

	// SampleRate is the output sample rate in Hz. It must be set whenever
	// ClockRate is.
	SampleRate float64
}

// Common errors returned by Buffer.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid buffer configuration")

	// ErrInvalidRates indicates a clock/sample rate pair that cannot be used.
	ErrInvalidRates = rate.ErrInvalidRates

	// ErrFrameTooLong indicates a time frame producing more than MaxFrame samples.
	ErrFrameTooLong = rate.ErrFrameTooLong

	// ErrDeltaOutOfRange indicates a delta beyond the end of the buffer.
	ErrDeltaOutOfRange = rate.ErrOutOfRange

	// ErrInvalidCount indicates a negative sample count.
	ErrInvalidCount = rate.ErrInvalidCount

	// ErrBufferFull indicates more samples than the buffer can hold unread.
	ErrBufferFull = errors.New("buffer full")

	// ErrBufferTooSmall indicates the output slice is too small.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrClosed indicates use of a buffer after Close.
	ErrClosed = errors.New("buffer closed")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1", ErrInvalidConfig)
	}

	if c.Size > MaxSize {
		return fmt.Errorf("%w: size %d too large (max %d)", ErrInvalidConfig, c.Size, MaxSize)
	}

	if c.ClockRate == 0 && c.SampleRate == 0 {
		return nil
	}

	if c.ClockRate <= 0 || c.SampleRate <= 0 {
		return fmt.Errorf("%w: clock and sample rates must both be positive", ErrInvalidConfig)
	}

	return nil
}
