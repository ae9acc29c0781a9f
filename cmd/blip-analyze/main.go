// Command blip-analyze reports on the step kernel table and measures how
// much aliasing the standard and fast delta paths let through.
//
// Usage:
//
//	blip-analyze
//	blip-analyze -rate 48000 -clock-mult 100 -half-period 2048
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	blip "github.com/tphakala/go-audio-blip"
	"github.com/tphakala/go-audio-blip/internal/analysis"
	"github.com/tphakala/go-audio-blip/internal/filter"
	"github.com/tphakala/go-audio-blip/internal/kernel"
	"github.com/tphakala/go-audio-blip/internal/mathutil"
	"github.com/tphakala/go-audio-blip/internal/synth"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type squareTest struct {
	sampleRate float64
	clockMult  int
	halfPeriod int
	amplitude  int32
	window     int
	block      int
	settle     int
}

func run() error {
	var sq squareTest
	var amplitude int
	flag.Float64Var(&sq.sampleRate, "rate", defaultSampleRate, "Output sample rate in Hz")
	flag.IntVar(&sq.clockMult, "clock-mult", defaultClockMult, "Input clocks per output sample")
	flag.IntVar(&sq.halfPeriod, "half-period", defaultHalfPeriod, "Square wave half period in clocks")
	flag.IntVar(&amplitude, "amplitude", defaultAmplitude, "Square wave peak level")
	flag.IntVar(&sq.window, "window", defaultWindow, "Samples analyzed")
	flag.Parse()
	sq.amplitude = int32(amplitude)
	sq.block = defaultBlock
	sq.settle = defaultSettleBlocks

	if err := printDesign(os.Stdout, kernel.DefaultParams()); err != nil {
		return err
	}
	printTable(os.Stdout, kernel.Default())

	fmt.Println("\n=== Aliasing (square wave) ===")
	fmt.Printf("  %.0f Hz output, %d clocks per sample, half period %d clocks\n",
		sq.sampleRate, sq.clockMult, sq.halfPeriod)
	for _, fast := range []bool{false, true} {
		name := "standard"
		if fast {
			name = "fast"
		}
		report, err := sq.measure(fast)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Printf("  %-8s alias/harmonic energy: "+dbFormat+"\n", name, report.RatioDB())
	}
	return nil
}

func printDesign(w io.Writer, params filter.SincParams) error {
	im, err := filter.NewImpulse(params)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "=== Step Design ===")
	fmt.Fprintf(w, "  Cutoff: %.2f of Nyquist\n", params.Cutoff)
	fmt.Fprintf(w, "  Half span: %.0f samples\n", params.HalfSpan)
	fmt.Fprintf(w, "  Kaiser beta: %.4f (~%.1f dB)\n\n", im.Beta(), mathutil.KaiserAttenuation(im.Beta()))
	return nil
}

func printTable(w io.Writer, tbl *kernel.Table) {
	fmt.Fprintln(w, "=== Step Kernel ===")
	fmt.Fprintf(w, "  Phases: %d (+1 for interpolation)\n", kernel.PhaseCount)
	fmt.Fprintf(w, "  Taps per phase: %d\n", kernel.Width)
	fmt.Fprintf(w, "  Unit step: %d\n\n", kernel.DeltaUnit)

	fmt.Fprintln(w, "DC gain per phase:")
	for p := range kernel.PhaseCount + 1 {
		if p < maxPhasesToShow || p > kernel.PhaseCount-maxPhasesToShow {
			fmt.Fprintf(w, "  Phase %2d: %d\n", p, tbl.DCGain(p))
		}
	}

	fmt.Fprintln(w, "\nFrequency response (fraction of sample rate):")
	fmt.Fprintf(w, "  %-6s", "phase")
	for _, f := range responseFrequencies {
		fmt.Fprintf(w, " %10.2f", f)
	}
	fmt.Fprintln(w)
	for _, p := range []int{0, kernel.PhaseCount / 4, kernel.PhaseCount / 2} {
		resp := filter.ComputeFrequencyResponse(rowCoefficients(tbl, p), defaultResponseSize)
		fmt.Fprintf(w, "  %-6d", p)
		for _, f := range responseFrequencies {
			fmt.Fprintf(w, " "+dbFormat, filter.MagnitudeDB(resp.MagnitudeAt(f)))
		}
		fmt.Fprintln(w)
	}
}

// rowCoefficients returns a table row scaled to unity DC gain.
func rowCoefficients(tbl *kernel.Table, p int) []float64 {
	row := tbl.Row(p)
	coeffs := make([]float64, len(row))
	for k, v := range row {
		coeffs[k] = float64(v) / kernel.DeltaUnit
	}
	return coeffs
}

// measure renders the square wave and analyzes the last window of output.
func (sq *squareTest) measure(fast bool) (analysis.AliasReport, error) {
	buf, err := blip.NewForRates(sq.sampleRate*float64(sq.clockMult), sq.sampleRate)
	if err != nil {
		return analysis.AliasReport{}, err
	}
	defer func() { _ = buf.Close() }()

	wave, err := synth.NewWave(synth.Square, 2*sq.halfPeriod, sq.amplitude)
	if err != nil {
		return analysis.AliasReport{}, err
	}
	wave.SetFast(fast)

	total := sq.window + sq.settle*sq.block
	out := make([]int16, 0, total)
	block := make([]int16, sq.block)
	for len(out) < total {
		clocks, err := buf.ClocksNeeded(len(block))
		if err != nil {
			return analysis.AliasReport{}, err
		}
		if err := wave.Run(buf, clocks); err != nil {
			return analysis.AliasReport{}, err
		}
		if err := buf.EndFrame(uint32(clocks)); err != nil {
			return analysis.AliasReport{}, err
		}
		n, err := buf.ReadSamples(block, len(block), blip.Mono)
		if err != nil {
			return analysis.AliasReport{}, err
		}
		out = append(out, block[:n]...)
	}

	// Whole periods in the window put the fundamental on a bin.
	fundamental := sq.window * sq.clockMult / (2 * sq.halfPeriod)
	return analysis.Aliasing(out[len(out)-sq.window:], fundamental, analysis.DefaultHarmonicWidth)
}
