package main

import (
	"time"

	blip "github.com/tphakala/go-audio-blip"
)

// Default command-line flag values
const (
	defaultWave       = "square"
	defaultFrequency  = 440.0
	defaultVolume     = 0.5
	defaultDuration   = 2 * time.Second
	defaultSampleRate = blip.RateCD
	defaultClockRate  = blip.ClockNES
	defaultDetune     = 1.5 // Right channel frequency ratio in stereo mode
)

// Frame sizing
const (
	// Output samples produced per time frame.
	frameSamples = 1024

	// Buffer capacity in frames.
	bufferFrames = 4

	// Input samples read per chunk in resample mode.
	readChunk = 8192
)

// Output format
const (
	outputBitDepth = 16
	wavFormatPCM   = 1

	monoChannels   = 1
	stereoChannels = 2

	minRequiredArgs  = 1
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// Output samples rendered after the last input sample so the kernel
	// tail is not cut off.
	tailSamples = 16
)
