// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickStep(t *testing.T) {
	tests := []struct {
		amin, amax, want float64
	}{
		{0, 1, 0.1},
		{0, 2, 0.2},
		{0, 3, 0.5},
		{0, 4, 0.5},
		{0, 5, 1},
		{0, 10, 1},
		{0, 100, 10},
		{0, 0.7, 0.1},
		{-1, 1, 0.2},
		{2, 2, 0}, // empty range
		{3, 2, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, TickStep(tt.amin, tt.amax), 1e-12, "TickStep(%v, %v)", tt.amin, tt.amax)
	}
}

func TestAdjustLimits(t *testing.T) {
	lo, hi := AdjustLimits(0.3, 9.7)
	assert.InDelta(t, 0, lo, 1e-12)
	assert.InDelta(t, 10, hi, 1e-12)

	lo, hi = AdjustLimits(-0.05, 1.02)
	assert.InDelta(t, -0.1, lo, 1e-12)
	assert.InDelta(t, 1.1, hi, 1e-12)

	// degenerate ranges pass through
	lo, hi = AdjustLimits(5, 5)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestFixDegenerate(t *testing.T) {
	lo, hi := fixDegenerate(5, 5)
	assert.InDelta(t, 4.5, lo, 1e-12)
	assert.InDelta(t, 5.5, hi, 1e-12)

	lo, hi = fixDegenerate(0, 0)
	assert.Equal(t, -0.1, lo)
	assert.Equal(t, 0.1, hi)

	lo, hi = fixDegenerate(-3, -3)
	assert.InDelta(t, -3.3, lo, 1e-12)
	assert.InDelta(t, -2.7, hi, 1e-12)

	lo, hi = fixDegenerate(1, 2)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0.1", FormatTick(0.1))
	assert.Equal(t, "100", FormatTick(100))
	assert.Equal(t, "-2.5", FormatTick(-2.5))
}

func TestIndexLabeler(t *testing.T) {
	f := IndexLabeler([]string{"a", "b", "c"})
	assert.Equal(t, "a", f(1))
	assert.Equal(t, "c", f(3))
	assert.Equal(t, "", f(0))
	assert.Equal(t, "", f(4))
	assert.Equal(t, "", f(1.5))
}
