// Package kernel holds the band-limited step table and the routines that
// add a scaled step into a differential accumulator.
//
// Row p of the table is a windowed sinc impulse centred p/PhaseCount of a
// sample after slot HalfWidth-1, quantized so that the row sums to exactly
// DeltaUnit. An extra row at p == PhaseCount lets the standard path
// interpolate between adjacent phases. The default table is built once and
// shared read-only by every buffer.
package kernel

import (
	"fmt"
	"math"
	"sync"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-audio-blip/internal/filter"
)

// Table is an immutable set of quantized step rows.
type Table struct {
	rows [PhaseCount + 1][Width]int32
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// DefaultParams returns the step design used by Default.
func DefaultParams() filter.SincParams {
	return filter.SincParams{
		Cutoff:      DefaultCutoff,
		HalfSpan:    HalfWidth,
		Attenuation: DefaultAttenuation,
	}
}

// Default returns the shared table, generating it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Generate(DefaultParams())
		if err != nil {
			panic(fmt.Sprintf("kernel: default step design rejected: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Generate builds a table from the given impulse design.
func Generate(params filter.SincParams) (*Table, error) {
	im, err := filter.NewImpulse(params)
	if err != nil {
		return nil, fmt.Errorf("step design: %w", err)
	}

	t := &Table{}
	taps := make([]float64, Width)
	for p := range PhaseCount + 1 {
		center := float64(HalfWidth-1) + float64(p)/PhaseCount
		for k := range taps {
			taps[k] = im.At(float64(k) - center)
		}
		if err := quantize(&t.rows[p], taps); err != nil {
			return nil, fmt.Errorf("phase %d: %w", p, err)
		}
	}
	return t, nil
}

// quantize scales taps to DeltaUnit and rounds them into row. The rounding
// remainder goes to the largest tap so the row sum is exact.
func quantize(row *[Width]int32, taps []float64) error {
	sum := f64.Sum(taps)
	if sum <= 0 || math.IsNaN(sum) {
		return fmt.Errorf("non-positive DC gain %v", sum)
	}
	f64.Scale(taps, taps, DeltaUnit/sum)

	var total int64
	peak := 0
	for k, v := range taps {
		row[k] = int32(math.Round(v))
		total += int64(row[k])
		if math.Abs(v) > math.Abs(taps[peak]) {
			peak = k
		}
	}
	row[peak] += int32(DeltaUnit - total)
	return nil
}

// Row returns a copy of the taps for phase p, 0 ≤ p ≤ PhaseCount.
func (t *Table) Row(p int) []int32 {
	row := t.rows[p]
	return row[:]
}

// DCGain returns the sum of the taps for phase p.
func (t *Table) DCGain(p int) int64 {
	var sum int64
	for _, v := range t.rows[p] {
		sum += int64(v)
	}
	return sum
}
