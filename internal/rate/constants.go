package rate

// Fixed-point layout.
//
// A position on the output time line is an unsigned 64-bit value with
// TimeBits fraction bits, so one output sample is TimeUnit. Positions handed
// to the step kernel drop the lowest PreShift bits and keep FracBits of
// sub-sample fraction.
const (
	PreShift = 32
	FracBits = 20
	TimeBits = PreShift + FracBits

	TimeUnit uint64 = 1 << TimeBits
	fracMask uint64 = 1<<FracBits - 1
	timeMask uint64 = TimeUnit - 1
)

// Limits shared with the public API.
const (
	// MaxRatio is the largest supported clockRate/sampleRate ratio.
	MaxRatio = 1 << 20

	// MaxFrame is the largest number of samples a single time frame may
	// produce. It keeps clocks*factor inside 64 bits.
	MaxFrame = 4000
)
