package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakAbs(t *testing.T) {
	assert.Equal(t, 32768, PeakAbs([]int16{1, -32768, 300}))
	assert.Zero(t, PeakAbs(nil))
}

func TestFilled(t *testing.T) {
	s := Filled(5, 7)
	assert.Len(t, s, 5)
	AssertAllEqual(t, s, 7)
	AssertSentinels(t, s, 1, 2, 7)
}

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestAssertInRange_Messages(t *testing.T) {
	rec := &recordingT{}
	assert.True(t, AssertInRange(rec, 0.5, 0, 1, "beta for %d dB", 50))
	assert.Empty(t, rec.errors)

	assert.False(t, AssertInRange(rec, 5, 0, 1, "beta for %d dB", 50))
	if assert.Len(t, rec.errors, 1) {
		assert.Contains(t, rec.errors[0], "outside range")
		assert.Contains(t, rec.errors[0], "beta for 50 dB")
	}
}

func TestAssertRelativeError_Messages(t *testing.T) {
	rec := &recordingT{}
	assert.True(t, AssertRelativeError(rec, 100, 100.5, 0.01, "phase %d", 3))
	assert.Empty(t, rec.errors)

	assert.False(t, AssertRelativeError(rec, 100, 110, 0.01, "phase %d", 3))
	if assert.Len(t, rec.errors, 1) {
		assert.Contains(t, rec.errors[0], "exceeds tolerance")
		assert.Contains(t, rec.errors[0], "phase 3")
	}
}
