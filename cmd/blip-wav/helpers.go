package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	blip "github.com/tphakala/go-audio-blip"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Used for progress reporting only
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: int64(duration.Seconds() * float64(format.SampleRate)),
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// validate checks the input can be turned into deltas.
func (w *wavInputInfo) validate() error {
	if w.channels != monoChannels && w.channels != stereoChannels {
		return fmt.Errorf("unsupported channel count %d (mono or stereo only)", w.channels)
	}
	if w.bitDepth < outputBitDepth {
		return fmt.Errorf("unsupported bit depth %d (16 or more)", w.bitDepth)
	}
	return nil
}

// wavOutput encodes 16-bit PCM to a WAV file.
type wavOutput struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// createWAVOutput creates output file and encoder.
func createWAVOutput(path string, sampleRate, channels int) (*wavOutput, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutput{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, outputBitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: outputBitDepth,
		},
	}, nil
}

// WriteSamples writes interleaved samples.
func (w *wavOutput) WriteSamples(samples []int16) error {
	w.buf.Data = w.buf.Data[:0]
	for _, s := range samples {
		w.buf.Data = append(w.buf.Data, int(s))
	}
	if err := w.encoder.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutput) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return w.file.Close()
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// frameBuffer is a mono Buffer or a StereoBuffer seen through one API.
type frameBuffer interface {
	ClocksNeeded(samples int) (int, error)
	EndFrame(clocks uint32) error
	SamplesAvail() int
	Close() error

	// Read reads up to count samples per channel, interleaved.
	Read(out []int16, count int) (int, error)

	// Channels returns the per-channel buffers, left first.
	Channels() []*blip.Buffer
}

type monoBuffer struct{ *blip.Buffer }

func (m monoBuffer) Read(out []int16, count int) (int, error) {
	return m.ReadSamples(out, count, blip.Mono)
}

func (m monoBuffer) Channels() []*blip.Buffer {
	return []*blip.Buffer{m.Buffer}
}

type stereoBuffer struct{ *blip.StereoBuffer }

func (s stereoBuffer) Read(out []int16, count int) (int, error) {
	return s.ReadSamples(out, count)
}

func (s stereoBuffer) Channels() []*blip.Buffer {
	return []*blip.Buffer{s.Left, s.Right}
}

// newFrameBuffer creates buffers for one or two channels.
func newFrameBuffer(channels int, cfg *blip.Config) (frameBuffer, error) {
	switch channels {
	case monoChannels:
		b, err := blip.NewWithConfig(cfg)
		if err != nil {
			return nil, err
		}
		return monoBuffer{b}, nil
	case stereoChannels:
		s, err := blip.NewStereoWithConfig(cfg)
		if err != nil {
			return nil, err
		}
		return stereoBuffer{s}, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
}

// countingAdder counts the deltas passed through to a buffer.
type countingAdder struct {
	*blip.Buffer
	count *int64
}

func (c countingAdder) AddDelta(clock uint32, delta int32) error {
	*c.count++
	return c.Buffer.AddDelta(clock, delta)
}

func (c countingAdder) AddDeltaFast(clock uint32, delta int32) error {
	*c.count++
	return c.Buffer.AddDeltaFast(clock, delta)
}
