// Package testutil provides reusable assertions for the blip tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

func helper(t assert.TestingT) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t assert.TestingT, s []float64) bool {
	helper(t)
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t assert.TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	helper(t)
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}

// AssertAllEqual verifies that every sample equals want.
func AssertAllEqual(t assert.TestingT, s []int16, want int16) bool {
	helper(t)
	for i, v := range s {
		if v != want {
			return assert.Fail(t, "unexpected sample",
				"s[%d]=%d, want %d", i, v, want)
		}
	}
	return true
}

// AssertSentinels verifies that every stride-th slot starting at start
// still holds sentinel.
func AssertSentinels(t assert.TestingT, s []int16, start, stride int, sentinel int16) bool {
	helper(t)
	for i := start; i < len(s); i += stride {
		if s[i] != sentinel {
			return assert.Fail(t, "sentinel overwritten",
				"s[%d]=%d, want %d", i, s[i], sentinel)
		}
	}
	return true
}

// PeakAbs returns the largest absolute sample value.
func PeakAbs(s []int16) int {
	var peak int
	for _, v := range s {
		peak = max(peak, abs(int(v)))
	}
	return peak
}

// Filled returns a slice of n copies of v.
func Filled(n int, v int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
