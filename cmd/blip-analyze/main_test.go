package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-blip/internal/kernel"
)

func TestRowCoefficients_UnityGain(t *testing.T) {
	coeffs := rowCoefficients(kernel.Default(), 7)
	require.Len(t, coeffs, kernel.Width)

	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestMeasure_StandardBeatsFast(t *testing.T) {
	sq := &squareTest{
		sampleRate: defaultSampleRate,
		clockMult:  defaultClockMult,
		halfPeriod: defaultHalfPeriod,
		amplitude:  defaultAmplitude,
		window:     defaultWindow,
		block:      defaultBlock,
		settle:     defaultSettleBlocks,
	}

	standard, err := sq.measure(false)
	require.NoError(t, err)
	fast, err := sq.measure(true)
	require.NoError(t, err)
	assert.Less(t, standard.RatioDB(), fast.RatioDB())
}

func TestPrintTable(t *testing.T) {
	var sb strings.Builder
	printTable(&sb, kernel.Default())

	report := sb.String()
	assert.Contains(t, report, "Phases: 32")
	assert.Contains(t, report, "Phase  0: 32768")
}

func TestPrintDesign(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, printDesign(&sb, kernel.DefaultParams()))
	assert.Contains(t, sb.String(), "Kaiser beta: 4.5")
}
