package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-blip/internal/testutil"
)

func sine(n, bin int, amp float64) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(math.Round(amp * math.Sin(2*math.Pi*float64(bin*i)/float64(n))))
	}
	return s
}

func TestPowerSpectrum_Sine(t *testing.T) {
	s := sine(1024, 50, 10000)

	power, err := PowerSpectrum(s)
	require.NoError(t, err)
	assert.Len(t, power, 513)
	testutil.AssertNoNaNOrInf(t, power)
	assert.Equal(t, 50, PeakBin(power))
}

func TestPowerSpectrum_TooShort(t *testing.T) {
	_, err := PowerSpectrum(make([]int16, 4))
	require.ErrorIs(t, err, ErrTooShort)
}

func TestAliasing_PureToneIsHarmonic(t *testing.T) {
	s := sine(4096, 37, 12000)

	r, err := Aliasing(s, 37, DefaultHarmonicWidth)
	require.NoError(t, err)
	assert.Greater(t, r.Harmonic, 0.0)
	assert.Less(t, r.RatioDB(), -60.0)
}

func TestAliasing_DetectsOffHarmonicTone(t *testing.T) {
	a := sine(4096, 37, 8000)
	b := sine(4096, 500, 8000)
	mix := make([]int16, len(a))
	for i := range mix {
		mix[i] = a[i] + b[i]
	}

	r, err := Aliasing(mix, 37, DefaultHarmonicWidth)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.RatioDB(), 0.5)
}

func TestAliasing_BadFundamental(t *testing.T) {
	s := sine(256, 10, 1000)
	_, err := Aliasing(s, 2, DefaultHarmonicWidth)
	require.Error(t, err)
	_, err = Aliasing(s, 1000, DefaultHarmonicWidth)
	require.Error(t, err)
}

func TestAliasReport_RatioDB(t *testing.T) {
	assert.Zero(t, AliasReport{}.RatioDB())
	assert.InDelta(t, -300.0, AliasReport{Harmonic: 1}.RatioDB(), 0)
	assert.InDelta(t, -20.0, AliasReport{Harmonic: 100, Other: 1}.RatioDB(), 1e-9)
}

func TestRMS(t *testing.T) {
	assert.Zero(t, RMS(nil))
	testutil.AssertRelativeError(t, 0.5, RMS([]int16{16384, -16384, 16384}), 1e-12)

	s := sine(4096, 64, 16384)
	testutil.AssertRelativeError(t, 0.5/math.Sqrt2, RMS(s), 1e-3)
}
