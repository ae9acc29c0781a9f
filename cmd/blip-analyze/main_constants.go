package main

// Default command-line flag values
const (
	defaultSampleRate   = 44100.0
	defaultClockMult    = 74     // Clocks per output sample
	defaultHalfPeriod   = 4096   // Square wave half period in clocks
	defaultAmplitude    = 8000   // Square wave peak level
	defaultWindow       = 4096   // Samples analyzed
	defaultBlock        = 512    // Samples per time frame
	defaultSettleBlocks = 8      // Blocks rendered before the analysis window
	defaultResponseSize = 512    // Frequency response points per row
)

// Display
const (
	maxPhasesToShow = 5
	dbFormat        = "%7.2f dB"
)

// Normalized frequencies at which row responses are reported.
var responseFrequencies = []float64{0.1, 0.25, 0.4, 0.45, 0.5}
