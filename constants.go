package blip

import (
	"github.com/tphakala/go-audio-blip/internal/kernel"
	"github.com/tphakala/go-audio-blip/internal/rate"
)

// Limits of the clock to sample mapping.
const (
	// MaxRatio is the largest supported clockRate/sampleRate ratio. It is
	// also the ratio a new Buffer starts with.
	MaxRatio = rate.MaxRatio

	// MaxFrame is the most samples a single time frame may produce.
	MaxFrame = rate.MaxFrame
)

// Values for the stereo argument of [Buffer.ReadSamples].
const (
	Mono   = false
	Stereo = true
)

// Buffer capacity limits
const (
	// MaxSize is the largest capacity New accepts, about 45 minutes at 48 kHz.
	MaxSize = 1 << 27

	// Cells past the declared region a delta may reach at the end of a frame.
	endFrameExtra = 2

	// Accumulator cells beyond size, enough for the kernel tail.
	bufExtra = kernel.Width + endFrameExtra
)

// Output range
const (
	sampleMax = 32767
	sampleMin = -32768

	stereoStride = 2
)
