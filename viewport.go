// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// Size is a canvas or frame extent in abstract units.
type Size struct {
	W, H float64
}

// Box is an axis-aligned rectangle in normalized [0,1]² coordinates.
// The zero Box is the canonical empty sentinel.
type Box struct {
	X, Y minmax.F64
}

// NewBox returns a Box spanning [x0, x1] × [y0, y1].
func NewBox(x0, x1, y0, y1 float64) Box {
	return Box{X: minmax.F64{Min: x0, Max: x1}, Y: minmax.F64{Min: y0, Max: y1}}
}

// IsZero reports whether the box is the empty sentinel.
func (b Box) IsZero() bool {
	return b.X.Min == 0 && b.X.Max == 0 && b.Y.Min == 0 && b.Y.Max == 0
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.X.Range()
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Y.Range()
}

// Diag returns the diagonal length, used for font-size scaling.
func (b Box) Diag() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Contains reports whether o lies within b on all four sides.
func (b Box) Contains(o Box) bool {
	return b.X.Min <= o.X.Min && o.X.Max <= b.X.Max &&
		b.Y.Min <= o.Y.Min && o.Y.Max <= b.Y.Max
}

// Overlaps reports whether b and o have a non-empty intersection.
func (b Box) Overlaps(o Box) bool {
	return b.X.Min < o.X.Max && o.X.Min < b.X.Max &&
		b.Y.Min < o.Y.Max && o.Y.Min < b.Y.Max
}

// Margins are extra fractional margins subtracted from an inner
// viewport box, e.g. to make room for a legend or colorbar.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// Viewport holds the nested normalized-device-coordinate boxes of one
// plot: the outer container and the inner data frame.
// Invariant: Inner ⊆ Outer whenever margins are non-negative.
// The zero Viewport is the canonical empty sentinel.
type Viewport struct {
	Outer Box
	Inner Box
}

// IsZero reports whether the viewport is the empty sentinel.
func (vp Viewport) IsZero() bool {
	return vp.Outer.IsZero() && vp.Inner.IsZero()
}

// Inner box margins as fractions of the outer extent, measured from
// the box center: lo + (0.5-low)*ext .. lo + (0.5+high)*ext.
// The frameless margins of exactly 0.5/0.5 make Inner == Outer
// (the image-fills-the-box mode); preserved deliberately.
const (
	frameMarginLow  = 0.375
	frameMarginHigh = 0.425
	bareMarginLow   = 0.5
	bareMarginHigh  = 0.5
)

// ComputeViewport computes the nested viewport boxes for a subplot
// rectangle (normalized to the figure). The outer box is the subplot
// rectangle scaled by the canvas aspect correction (the canvas is fit
// into a unit square, biasing width or height for non-square
// canvases). The inner box applies the frame margins, then an
// optional fixed aspect ratio (width/height; 0 means unconstrained)
// by symmetrically shrinking whichever axis has more slack, and
// finally subtracts the extra margins. Callers must supply a valid
// subplot rectangle with x0 < x1, y0 < y1.
func ComputeViewport(subplot Box, canvas Size, drawFrame bool, aspectRatio float64, extra Margins) Viewport {
	outer := subplot
	if canvas.W > canvas.H {
		r := canvas.H / canvas.W
		outer.Y.Min *= r
		outer.Y.Max *= r
	} else if canvas.H > canvas.W {
		r := canvas.W / canvas.H
		outer.X.Min *= r
		outer.X.Max *= r
	}

	low, high := bareMarginLow, bareMarginHigh
	if drawFrame {
		low, high = frameMarginLow, frameMarginHigh
	}
	inner := Box{
		X: innerSpan(outer.X, low, high),
		Y: innerSpan(outer.Y, low, high),
	}

	if aspectRatio > 0 {
		w, h := inner.Width(), inner.Height()
		if w > h*aspectRatio { // width has the slack
			d := 0.5 * (w - h*aspectRatio)
			inner.X.Min += d
			inner.X.Max -= d
		} else {
			d := 0.5 * (h - w/aspectRatio)
			inner.Y.Min += d
			inner.Y.Max -= d
		}
	}

	inner.X.Min += extra.Left
	inner.X.Max -= extra.Right
	inner.Y.Min += extra.Bottom
	inner.Y.Max -= extra.Top

	return Viewport{Outer: outer, Inner: inner}
}

// innerSpan shrinks one dimension of the outer box by the low/high
// fractional margins, measured from the box center.
func innerSpan(span minmax.F64, low, high float64) minmax.F64 {
	ext := span.Range()
	return minmax.F64{
		Min: span.Min + (0.5-low)*ext,
		Max: span.Min + (0.5+high)*ext,
	}
}
