// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func axesWithRange(d Dim, min, max float64) *Axes {
	ax := &Axes{Kind: Axes2D}
	ax.Ranges[d].Set(min, max)
	return ax
}

func TestBuildColorbarEmpty(t *testing.T) {
	// undefined channel range (the +-Inf sentinel) yields the empty
	// sentinel
	ax := &Axes{Kind: Axes2D}
	ax.Ranges[DimC].SetInfinity()
	cb := BuildColorbar(ax, DimC, 0)
	assert.True(t, cb.IsEmpty())

	// degenerate range too
	cb = BuildColorbar(axesWithRange(DimZ, 3, 3), DimZ, 0)
	assert.True(t, cb.IsEmpty())

	var nilBar *Colorbar
	assert.True(t, nilBar.IsEmpty())
	assert.True(t, (&Colorbar{}).IsEmpty())
}

func TestBuildColorbar(t *testing.T) {
	cb := BuildColorbar(axesWithRange(DimZ, 0, 10), DimZ, 0)
	require.False(t, cb.IsEmpty())
	assert.Equal(t, minmax.F64{Min: 0, Max: 10}, cb.Range)
	assert.InDelta(t, 0.5*TickStep(0, 10), cb.Tick, 1e-12)
	assert.Equal(t, DefaultColorLevels, cb.ColorLevels)
	assert.Zero(t, cb.Margin)

	cb = BuildColorbar(axesWithRange(DimZ, 0, 10), DimZ, 64)
	assert.Equal(t, 64, cb.ColorLevels)
}

func TestBuildColorbarLogTick(t *testing.T) {
	ax := axesWithRange(DimZ, 1, 1000)
	ax.Scale = ScaleZLog
	cb := BuildColorbar(ax, DimZ, 0)
	assert.Equal(t, 2.0, cb.Tick)
}

func TestBuildColorbarScaleMask(t *testing.T) {
	ax := axesWithRange(DimZ, 0, 1)
	ax.Scale = ScaleXFlip | ScaleYFlip | ScaleZFlip | ScaleZLog

	// the flip-X bit is always cleared
	cb := BuildColorbar(ax, DimZ, 0)
	assert.Zero(t, cb.Scale&ScaleXFlip)
	assert.NotZero(t, cb.Scale&ScaleZFlip)
	assert.NotZero(t, cb.Scale&ScaleZLog)

	// a C-channel colorbar also drops the z flip: flipping the data
	// z axis does not reorder colors
	ax.Ranges[DimC].Set(0, 1)
	cb = BuildColorbar(ax, DimC, 0)
	assert.Zero(t, cb.Scale&ScaleXFlip)
	assert.Zero(t, cb.Scale&ScaleZFlip)
	assert.NotZero(t, cb.Scale&ScaleYFlip)
}

func TestBuildColorbar3DMargin(t *testing.T) {
	ax := axesWithRange(DimZ, 0, 1)
	ax.Kind = Axes3D
	cb := BuildColorbar(ax, DimZ, 0)
	assert.Equal(t, colorbarMargin3D, cb.Margin)
}
