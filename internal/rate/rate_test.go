package rate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultRatio(t *testing.T) {
	c := New()
	assert.Equal(t, TimeUnit/MaxRatio, c.Factor())
	assert.Zero(t, c.Offset())

	// MaxRatio clocks make exactly one sample.
	n, err := c.SamplesIn(MaxRatio)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSetRates_Validation(t *testing.T) {
	tests := []struct {
		name       string
		clockRate  float64
		sampleRate float64
		wantErr    bool
	}{
		{"NES NTSC to 44.1k", 1789772.727, 44100, false},
		{"Equal rates", 48000, 48000, false},
		{"Upsampling clock", 8000, 48000, false},
		{"Exactly max ratio", 44100 * MaxRatio, 44100, false},
		{"Above max ratio", 44100*MaxRatio + 1, 44100, true},
		{"Zero clock", 0, 44100, true},
		{"Zero sample", 44100, 0, true},
		{"Negative clock", -1, 44100, true},
		{"NaN clock", math.NaN(), 44100, true},
		{"Inf sample", 44100, math.Inf(1), true},
		{"Factor overflow", 1, 1e300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			before := c.Factor()
			err := c.SetRates(tt.clockRate, tt.sampleRate)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRates)
				require.ErrorIs(t, Validate(tt.clockRate, tt.sampleRate), ErrInvalidRates)
				assert.Equal(t, before, c.Factor(), "factor must be unchanged on error")
				return
			}
			require.NoError(t, err)
			require.NoError(t, Validate(tt.clockRate, tt.sampleRate))
		})
	}
}

func TestSetRates_RoundsUp(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(80000, 8000))

	// 2^52 / 10 = 450359962737049.6
	assert.Equal(t, uint64(450359962737050), c.Factor())
	assert.GreaterOrEqual(t, c.SamplesPerClock(), 0.1)
}

func TestSetRates_ExactWhenDivisible(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(4096, 1))
	assert.Equal(t, TimeUnit/4096, c.Factor())
}

func TestClocksNeeded_ExactQuota(t *testing.T) {
	rates := []struct {
		clock, sample float64
	}{
		{80000, 8000},
		{1789772.727, 44100},
		{3579545, 48000},
		{4194304, 44100},
		{48001, 48000},
		{48000, 48000},
		{44100 * MaxRatio, 44100},
		{985248.4, 22050},
	}
	counts := []int{0, 1, 2, 3, 7, 100, 735, 1024, 3999, MaxFrame}

	for _, r := range rates {
		c := New()
		require.NoError(t, c.SetRates(r.clock, r.sample))

		for _, n := range counts {
			clocks, err := c.ClocksNeeded(n)
			require.NoError(t, err)
			require.LessOrEqual(t, clocks, math.MaxUint32)

			got, err := c.Advance(uint32(clocks))
			require.NoError(t, err)
			assert.Equal(t, n, got, "clock %v sample %v: ClocksNeeded(%d)=%d", r.clock, r.sample, n, clocks)
			assert.Less(t, c.Offset(), TimeUnit)
		}
	}
}

func TestClocksNeeded_Upsampling(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(8000, 44100))

	for _, n := range []int{1, 5, 100, 3990} {
		clocks, err := c.ClocksNeeded(n)
		require.NoError(t, err)

		got, err := c.Advance(uint32(clocks))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, n)
	}
}

func TestClocksNeeded_Errors(t *testing.T) {
	c := New()

	_, err := c.ClocksNeeded(-1)
	require.ErrorIs(t, err, ErrInvalidCount)

	_, err = c.ClocksNeeded(MaxFrame + 1)
	require.ErrorIs(t, err, ErrFrameTooLong)
}

func TestAdvance_FrameTooLong(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(1000, 1000))

	_, err := c.Advance(MaxFrame + 1)
	require.ErrorIs(t, err, ErrFrameTooLong)
	assert.Zero(t, c.Offset(), "offset must be unchanged on error")

	n, err := c.Advance(MaxFrame)
	require.NoError(t, err)
	assert.Equal(t, MaxFrame, n)
}

func TestAdvance_Overflow(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(1, 1000))

	_, err := c.Advance(math.MaxUint32)
	require.ErrorIs(t, err, ErrFrameTooLong)
}

func TestAdvance_CarriesPhase(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(30, 10))

	// Three clocks per sample: frames of two clocks give 0,1,1,0,1,1,...
	var total int
	for range 30 {
		n, err := c.Advance(2)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 20, total)
}

func TestRateFloor(t *testing.T) {
	rates := []struct {
		clock, sample uint64
	}{
		{1789773, 44100},
		{3546895, 48000},
		{44100, 44100},
		{96000, 44100},
	}
	frames := []uint32{1, 17, 1000, 3, 2999, 40, 1234}

	for _, r := range rates {
		c := New()
		require.NoError(t, c.SetRates(float64(r.clock), float64(r.sample)))

		var clocks, samples uint64
		for range 50 {
			for _, f := range frames {
				n, err := c.Advance(f)
				require.NoError(t, err)
				clocks += uint64(f)
				samples += uint64(n)
			}
		}
		assert.GreaterOrEqual(t, samples, clocks*r.sample/r.clock,
			"clock %d sample %d over %d clocks", r.clock, r.sample, clocks)
	}
}

func TestPosition(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(80000, 8000))

	pos, err := c.Position(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), Index(pos))
	assert.InDelta(t, 0.4, float64(Frac(pos))/(1<<FracBits), 1e-6)

	pos, err = c.Position(25)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), Index(pos))
	assert.InDelta(t, 0.5, float64(Frac(pos))/(1<<FracBits), 1e-6)
}

func TestPosition_Overflow(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(1, 1000))

	_, err := c.Position(math.MaxUint32)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReset(t *testing.T) {
	c := New()
	require.NoError(t, c.SetRates(30, 10))
	_, err := c.Advance(2)
	require.NoError(t, err)
	require.NotZero(t, c.Offset())

	factor := c.Factor()
	c.Reset()
	assert.Zero(t, c.Offset())
	assert.Equal(t, factor, c.Factor())
}

func BenchmarkPosition(b *testing.B) {
	c := New()
	if err := c.SetRates(1789772.727, 44100); err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = c.Position(12345)
	}
}
