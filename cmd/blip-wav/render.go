package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/go-audio/audio"

	blip "github.com/tphakala/go-audio-blip"
	"github.com/tphakala/go-audio-blip/internal/synth"
)

type renderStats struct {
	clockRate  float64
	sampleRate int
	channels   int
	deltas     int64
	samples    int64
}

// synthesizeWAV renders one wave per channel in fixed-size frames.
func synthesizeWAV(outputPath string, opts *options) (stats *renderStats, err error) {
	shape, err := synth.ParseShape(opts.wave)
	if err != nil {
		return nil, err
	}

	channels := monoChannels
	if opts.stereo {
		channels = stereoChannels
	}

	fb, err := newFrameBuffer(channels, &blip.Config{
		Size:       frameSamples * bufferFrames,
		ClockRate:  opts.clockRate,
		SampleRate: float64(opts.sampleRate),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = fb.Close() }()

	freqs := []float64{opts.frequency, opts.frequency * opts.detune}
	waves := make([]*synth.Wave, channels)
	for ch := range waves {
		waves[ch], err = synth.NewWaveForFrequency(shape, opts.clockRate, freqs[ch], opts.volume)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		waves[ch].SetFast(opts.fast)
	}

	if opts.verbose {
		log.Printf("Wave: %s %.2f Hz, volume %.2f, %d channels", shape, opts.frequency, opts.volume, channels)
		log.Printf("Clock: %.3f Hz -> %d Hz", opts.clockRate, opts.sampleRate)
	}

	output, err := createWAVOutput(outputPath, opts.sampleRate, channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	stats = &renderStats{clockRate: opts.clockRate, sampleRate: opts.sampleRate, channels: channels}
	total := int64(math.Round(opts.duration.Seconds() * float64(opts.sampleRate)))
	progress := newProgressTracker(total, opts.verbose)
	adders := make([]countingAdder, channels)
	for ch, b := range fb.Channels() {
		adders[ch] = countingAdder{Buffer: b, count: &stats.deltas}
	}
	out := make([]int16, frameSamples*channels)

	for stats.samples < total {
		n := int(min(frameSamples, total-stats.samples))
		clocks, err := fb.ClocksNeeded(n)
		if err != nil {
			return nil, err
		}

		for ch, w := range waves {
			if err := w.Run(adders[ch], clocks); err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
		}
		if err := fb.EndFrame(uint32(clocks)); err != nil {
			return nil, err
		}

		got, err := fb.Read(out, n)
		if err != nil {
			return nil, err
		}
		if err := output.WriteSamples(out[:got*channels]); err != nil {
			return nil, err
		}
		stats.samples += int64(got)
		progress.reportIfNeeded(stats.samples)
	}

	return stats, nil
}

// deltaFeeder turns interleaved PCM into deltas, one input sample per clock.
type deltaFeeder struct {
	fb          frameBuffer
	chans       []*blip.Buffer
	fast        bool
	shift       uint
	prev        []int32
	clock       int
	frameClocks int
	out         []int16
	output      *wavOutput
	stats       *renderStats
}

// push adds one interleaved input frame.
func (f *deltaFeeder) push(frame []int) error {
	for ch, v := range frame {
		level := int32(v >> f.shift)
		if delta := level - f.prev[ch]; delta != 0 {
			var err error
			if f.fast {
				err = f.chans[ch].AddDeltaFast(uint32(f.clock), delta)
			} else {
				err = f.chans[ch].AddDelta(uint32(f.clock), delta)
			}
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}
			f.stats.deltas++
		}
		f.prev[ch] = level
	}

	f.clock++
	if f.clock == f.frameClocks {
		return f.endFrame(f.clock)
	}
	return nil
}

// endFrame ends the current frame and writes what it produced.
func (f *deltaFeeder) endFrame(clocks int) error {
	f.clock = 0
	if err := f.fb.EndFrame(uint32(clocks)); err != nil {
		return err
	}
	return f.drain()
}

func (f *deltaFeeder) drain() error {
	count := len(f.out) / len(f.chans)
	for f.fb.SamplesAvail() > 0 {
		n, err := f.fb.Read(f.out, count)
		if err != nil {
			return err
		}
		if err := f.output.WriteSamples(f.out[:n*len(f.chans)]); err != nil {
			return err
		}
		f.stats.samples += int64(n)
	}
	return nil
}

// flush ends the partial frame and renders the kernel tail.
func (f *deltaFeeder) flush() error {
	if f.clock > 0 {
		if err := f.endFrame(f.clock); err != nil {
			return err
		}
	}
	tail, err := f.fb.ClocksNeeded(tailSamples)
	if err != nil {
		return err
	}
	return f.endFrame(tail)
}

// resampleWAV converts an input WAV to sampleRate by treating each input
// sample as one clock and each change in level as a delta.
func resampleWAV(inputPath, outputPath string, sampleRate int, fast, verbose bool) (stats *renderStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if err := input.validate(); err != nil {
		return nil, err
	}

	fb, err := newFrameBuffer(input.channels, &blip.Config{
		Size:       frameSamples * bufferFrames,
		ClockRate:  float64(input.rate),
		SampleRate: float64(sampleRate),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = fb.Close() }()

	output, err := createWAVOutput(outputPath, sampleRate, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	stats = &renderStats{clockRate: float64(input.rate), sampleRate: sampleRate, channels: input.channels}
	feeder := &deltaFeeder{
		fb:    fb,
		chans: fb.Channels(),
		fast:  fast,
		shift: uint(input.bitDepth - outputBitDepth),
		prev:  make([]int32, input.channels),
		// One sample short of a full frame leaves room for the rounded-up rate.
		frameClocks: max(1, int(float64(frameSamples-1)*float64(input.rate)/float64(sampleRate))),
		out:         make([]int16, frameSamples*input.channels),
		output:      output,
		stats:       stats,
	}

	if verbose {
		log.Printf("Resampling %d Hz -> %d Hz, %d clocks per frame", input.rate, sampleRate, feeder.frameClocks)
	}

	progress := newProgressTracker(input.totalSamples, verbose)
	intBuffer := &audio.IntBuffer{
		Data:   make([]int, readChunk*input.channels),
		Format: input.format,
	}

	var consumed int64
	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		data := intBuffer.Data[:n-n%input.channels]
		for i := 0; i < len(data); i += input.channels {
			if err := feeder.push(data[i : i+input.channels]); err != nil {
				return nil, err
			}
		}
		consumed += int64(len(data) / input.channels)
		progress.reportIfNeeded(consumed)

		intBuffer.Data = intBuffer.Data[:cap(intBuffer.Data)]
	}

	if err := feeder.flush(); err != nil {
		return nil, err
	}
	return stats, nil
}
