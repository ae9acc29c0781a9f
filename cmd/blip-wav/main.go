// Command blip-wav writes band-limited PCM to a WAV file.
//
// It either synthesizes a square or saw wave clocked at an emulated chip
// rate, or resamples an existing WAV by treating its samples as clocks and
// the differences between them as deltas.
//
// Usage:
//
//	blip-wav -wave square -freq 440 out.wav
//	blip-wav -wave saw -clock 4194304 -stereo out.wav
//	blip-wav -in input.wav -rate 22050 out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	wave       string
	frequency  float64
	volume     float64
	duration   time.Duration
	sampleRate int
	clockRate  float64
	fast       bool
	stereo     bool
	detune     float64
	input      string
	verbose    bool
}

func run() error {
	var opts options
	flag.StringVar(&opts.wave, "wave", defaultWave, "Waveform: square, saw")
	flag.Float64Var(&opts.frequency, "freq", defaultFrequency, "Wave frequency in Hz")
	flag.Float64Var(&opts.volume, "volume", defaultVolume, "Wave volume, 0 to 1")
	flag.DurationVar(&opts.duration, "duration", defaultDuration, "Length of synthesized audio")
	flag.IntVar(&opts.sampleRate, "rate", defaultSampleRate, "Output sample rate in Hz")
	flag.Float64Var(&opts.clockRate, "clock", defaultClockRate, "Input clock rate in Hz (synthesis only)")
	flag.BoolVar(&opts.fast, "fast", false, "Use the two-tap step instead of the band-limited kernel")
	flag.BoolVar(&opts.stereo, "stereo", false, "Write a second wave to the right channel")
	flag.Float64Var(&opts.detune, "detune", defaultDetune, "Right channel frequency ratio in stereo mode")
	flag.StringVar(&opts.input, "in", "", "Resample this WAV file instead of synthesizing")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -wave square -freq 440 out.wav       # NES-clocked square\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -wave saw -stereo out.wav            # Saw, detuned right channel\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in speech.wav -rate 8000 out.wav    # Resample a recording\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	start := time.Now()
	var stats *renderStats
	var err error
	if opts.input != "" {
		stats, err = resampleWAV(opts.input, outputPath, opts.sampleRate, opts.fast, opts.verbose)
	} else {
		stats, err = synthesizeWAV(outputPath, &opts)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", filepath.Base(outputPath))
	fmt.Printf("  %.0f Hz clock -> %d Hz (%d channels)\n", stats.clockRate, stats.sampleRate, stats.channels)
	fmt.Printf("  %d deltas -> %d samples in %.2fs\n", stats.deltas, stats.samples, time.Since(start).Seconds())
	return nil
}
