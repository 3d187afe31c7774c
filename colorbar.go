// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// colorbarMargin3D is the extra margin reserved beside 3-D plots.
const colorbarMargin3D = 0.05

// DefaultColorLevels is the default number of discrete color levels.
const DefaultColorLevels = 256

// Colorbar is the computed numeric layout of a color guide: the value
// range, tick step, renderer scale bits, reserved margin and level
// count. Range (0, 0) is the canonical "no colorbar" sentinel.
type Colorbar struct {
	Range  minmax.F64
	Tick   float64
	Scale  int
	Margin float64

	// ColorLevels is the number of discrete levels shown.
	ColorLevels int
}

// IsEmpty reports whether the colorbar is the empty sentinel.
func (cb *Colorbar) IsEmpty() bool {
	return cb == nil || (cb.Range == minmax.F64{})
}

// BuildColorbar computes a colorbar from one channel of the given
// axes. An undefined (non-finite) channel range yields the empty
// sentinel. The tick step is fixed at 2 for log-scaled channels, else
// a nice half-step of the range. The scale mask inherits the parent
// axes with the flip-X bit always cleared (colorbars never flip
// horizontally); for the C channel the Z flip bit is cleared as well,
// since flipping the data Z axis does not reorder colors.
func BuildColorbar(ax *Axes, dim Dim, levels int) *Colorbar {
	rng := ax.Ranges[dim]
	if rng.Min >= rng.Max || math.IsInf(rng.Min, 0) || math.IsInf(rng.Max, 0) {
		return &Colorbar{}
	}
	if levels <= 0 {
		levels = DefaultColorLevels
	}
	cb := &Colorbar{Range: rng, ColorLevels: levels}

	logScaled := ax.Scale&ScaleZLog != 0
	if logScaled {
		cb.Tick = 2
	} else {
		cb.Tick = 0.5 * TickStep(rng.Min, rng.Max)
	}

	cb.Scale = ax.Scale &^ ScaleXFlip
	if dim == DimC {
		cb.Scale &^= ScaleZFlip
	}
	if ax.Kind.Is3D() {
		cb.Margin = colorbarMargin3D
	}
	return cb
}
