// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"

	"cogentcore.org/core/base/option"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Dim is a coordinate channel of an [Axes]: X, Y, Z or the color
// channel C.
type Dim int32

const (
	DimX Dim = iota
	DimY
	DimZ
	DimC

	// NumDims is the number of coordinate channels.
	NumDims
)

func (d Dim) String() string {
	return [...]string{"x", "y", "z", "c"}[d]
}

// AxesKind selects the coordinate system of a plot.
type AxesKind int32

const (
	// AxesNone has no visible coordinate system (image-style plots).
	AxesNone AxesKind = iota

	// Axes2D is a standard 2-D cartesian coordinate system.
	Axes2D

	// Axes3D is a 3-D cartesian coordinate system with perspective.
	Axes3D

	// AxesPolar is a polar coordinate system.
	AxesPolar
)

func (k AxesKind) String() string {
	return [...]string{"none", "cartesian2d", "cartesian3d", "polar"}[k]
}

// Is3D returns true for the 3-D cartesian kind.
func (k AxesKind) Is3D() bool {
	return k == Axes3D
}

// Scale option bits, OR-ed into [Axes.Scale] and consumed by the
// renderer transform state.
const (
	ScaleXLog = 1 << iota
	ScaleYLog
	ScaleZLog
	ScaleXFlip
	ScaleYFlip
	ScaleZFlip
)

// TickData holds the tick layout for one axis.
type TickData struct {
	// Minor is the minor tick step.
	Minor float64

	// Org is the tick origin pair: the axis range, reversed when the
	// axis is flipped.
	Org minmax.F64

	// Major is the number of minor ticks per major tick.
	Major int
}

// TickSpec is an explicit (minor step, major count) tick override.
type TickSpec struct {
	Minor float64
	Major int
}

// Perspective is the 3-D viewing rotation and tilt, in degrees.
type Perspective struct {
	Rotation int
	Tilt     int
}

// LimitOverride fixes one or both bounds of an axis range; unset
// sides keep the automatically computed bound.
type LimitOverride struct {
	Min option.Option[float64]
	Max option.Option[float64]
}

// IsZero reports whether neither side is fixed.
func (lo LimitOverride) IsZero() bool {
	return !lo.Min.Valid && !lo.Max.Valid
}

// AxesOverrides carries all user-specified axis attributes consumed
// by [BuildAxes]. The zero value means fully automatic axes.
type AxesOverrides struct {
	XLim, YLim, ZLim, CLim LimitOverride

	XLog, YLog, ZLog    bool
	XFlip, YFlip, ZFlip bool

	XTicks, YTicks, ZTicks option.Option[TickSpec]

	// XTickFormat / YTickFormat are explicit tick label functions.
	XTickFormat, YTickFormat func(float64) string

	// XTickLabels / YTickLabels map integer tick values 1, 2, 3, ...
	// to fixed strings; they take precedence over the format funcs.
	XTickLabels, YTickLabels []string

	Grid option.Option[bool]

	Rotation, Tilt option.Option[int]

	// CameraDistance, when set, switches a 3-D axes into scene mode
	// with an explicit camera vector at this distance.
	CameraDistance option.Option[float64]
}

func (ov *AxesOverrides) lim(d Dim) LimitOverride {
	switch d {
	case DimX:
		return ov.XLim
	case DimY:
		return ov.YLim
	case DimZ:
		return ov.ZLim
	default:
		return ov.CLim
	}
}

func (ov *AxesOverrides) logFlag(d Dim) bool {
	switch d {
	case DimX:
		return ov.XLog
	case DimY:
		return ov.YLog
	default:
		return ov.ZLog
	}
}

func (ov *AxesOverrides) flipFlag(d Dim) bool {
	switch d {
	case DimX:
		return ov.XFlip
	case DimY:
		return ov.YFlip
	default:
		return ov.ZFlip
	}
}

func (ov *AxesOverrides) tickSpec(d Dim) option.Option[TickSpec] {
	switch d {
	case DimX:
		return ov.XTicks
	case DimY:
		return ov.YTicks
	default:
		return ov.ZTicks
	}
}

// Axes is the coordinate-system metadata for one plot: finalized
// ranges, tick layout, tick label functions, perspective, and the
// scale/grid options consumed by the renderer. It is recomputed
// wholesale by [BuildAxes] on every non-hold plot call and mutated
// field-by-field by the attribute setters afterward.
type Axes struct {
	Kind AxesKind

	// Ranges are the finalized per-channel ranges. Invariant:
	// Min < Max strictly once built (degenerate input is expanded
	// apart). The color channel may remain at the undefined
	// (+Inf, -Inf) sentinel when no color data exists.
	Ranges [NumDims]minmax.F64

	// Ticks is the tick layout for the X, Y, Z axes.
	Ticks [3]TickData

	// Formatters are the tick label functions for X and Y; nil means
	// the default numeric formatting.
	Formatters [2]func(float64) string

	// Perspective is the 3-D rotation/tilt; meaningful for Axes3D.
	Perspective Perspective

	// Camera is a 9-element position/focus/up vector, set only in
	// 3-D scene mode.
	Camera []float64

	// Scale is the OR of the Scale* log and flip bits.
	Scale int

	// Grid is whether grid lines are drawn.
	Grid bool
}

// IsZero reports whether the axes still carry un-built placeholder
// ranges. [BuildAxes] always yields Min < Max on the X range.
func (ax *Axes) IsZero() bool {
	return ax.Ranges[DimX].Min >= ax.Ranges[DimX].Max
}

// defaultMajorCount returns the default number of minor ticks per
// major tick: 5 for 2-D axes, 2 for 3-D and polar.
func (k AxesKind) defaultMajorCount() int {
	if k == Axes2D || k == AxesNone {
		return 5
	}
	return 2
}

// BuildAxes computes an Axes from the geometry list and user
// overrides. Ranges are aggregated per channel skipping NaNs, with Z
// substituting for missing color data; empty channels fall back to
// (0, 1) and degenerate ones are expanded apart so that Min < Max
// holds strictly. Nice-limit rounding is suppressed on axes with a
// log or flip flag and on explicitly fixed bounds. A log axis whose
// lower bound is not positive is clamped to the smallest positive
// data value (1e-300 when there is none).
func BuildAxes(kind AxesKind, geoms []*Geometry, ov *AxesOverrides) *Axes {
	if ov == nil {
		ov = &AxesOverrides{}
	}
	ax := &Axes{Kind: kind, Grid: ov.Grid.Or(true)}

	for d := DimX; d < NumDims; d++ {
		rng := &ax.Ranges[d]
		rng.SetInfinity()
		for _, g := range geoms {
			Range(geomChannel(g, d), rng)
		}
	}

	for d := DimX; d <= DimZ; d++ {
		rng := &ax.Ranges[d]
		if d == DimZ && !kind.Is3D() {
			if !rng.IsValid() {
				continue
			}
		}
		if !rng.IsValid() { // still the (+Inf, -Inf) sentinel: no data
			rng.Set(0, 1)
		}
		rng.Min, rng.Max = fixDegenerate(rng.Min, rng.Max)

		polarXY := kind == AxesPolar && d <= DimY
		logf := !polarXY && ov.logFlag(d)
		flipf := !polarXY && ov.flipFlag(d)

		fixedMin, fixedMax := false, false
		if !polarXY {
			lim := ov.lim(d)
			if lim.Min.Valid {
				rng.Min = lim.Min.Value
				fixedMin = true
			}
			if lim.Max.Valid {
				rng.Max = lim.Max.Value
				fixedMax = true
			}
		}
		if logf {
			clampLogRange(rng, geoms, d)
		} else if !flipf && !polarXY {
			lo, hi := AdjustLimits(rng.Min, rng.Max)
			if !fixedMin {
				rng.Min = lo
			}
			if !fixedMax {
				rng.Max = hi
			}
		}
		rng.Min, rng.Max = fixDegenerate(rng.Min, rng.Max)

		// tick layout
		td := &ax.Ticks[d]
		switch {
		case logf:
			td.Minor, td.Major = 10, 1
		case ov.tickSpec(d).Valid:
			ts := ov.tickSpec(d).Value
			td.Minor, td.Major = ts.Minor, ts.Major
		default:
			td.Major = kind.defaultMajorCount()
			td.Minor = TickStep(rng.Min, rng.Max) / float64(td.Major)
		}
		if flipf {
			td.Org.Set(rng.Max, rng.Min)
		} else {
			td.Org.Set(rng.Min, rng.Max)
		}

		if kind != AxesPolar {
			if logf {
				ax.Scale |= ScaleXLog << d
			}
			if flipf {
				ax.Scale |= ScaleXFlip << d
			}
		}
	}

	// color range: apply override only; the (+Inf, -Inf) sentinel is
	// a valid "no color data" state consumed by BuildColorbar.
	if lim := ov.CLim; !lim.IsZero() {
		if lim.Min.Valid {
			ax.Ranges[DimC].Min = lim.Min.Value
		}
		if lim.Max.Valid {
			ax.Ranges[DimC].Max = lim.Max.Value
		}
	}

	ax.Formatters[DimX] = tickFormatter(ov.XTickFormat, ov.XTickLabels)
	ax.Formatters[DimY] = tickFormatter(ov.YTickFormat, ov.YTickLabels)

	if kind.Is3D() {
		ax.Perspective = Perspective{
			Rotation: ov.Rotation.Or(40),
			Tilt:     ov.Tilt.Or(70),
		}
		if ov.CameraDistance.Valid {
			ax.Camera = cameraVector(ax.Perspective, ov.CameraDistance.Value)
		}
	}
	return ax
}

// geomChannel returns the channel of g relevant for range
// aggregation on dim d. Z substitutes for a missing color channel.
func geomChannel(g *Geometry, d Dim) Values {
	switch d {
	case DimX:
		return g.X
	case DimY:
		return g.Y
	case DimZ:
		return g.Z
	default:
		return g.ColorChannel()
	}
}

// clampLogRange forces a usable positive range for a log-scaled axis.
// Non-positive bounds are clamped to the smallest positive data value
// on that channel, falling back to 1e-300.
func clampLogRange(rng *minmax.F64, geoms []*Geometry, d Dim) {
	if rng.Min > 0 && rng.Max > rng.Min {
		return
	}
	small := math.Inf(1)
	for _, g := range geoms {
		vals := geomChannel(g, d)
		for i := 0; i < vals.Len(); i++ {
			if v := vals.Float1D(i); v > 0 && v < small {
				small = v
			}
		}
	}
	if math.IsInf(small, 1) {
		small = 1e-300
	}
	if rng.Min <= 0 {
		rng.Min = small
	}
	if rng.Max <= rng.Min {
		rng.Max = rng.Min * 10
	}
}

// tickFormatter wraps the user-supplied label machinery into one
// label function: a fixed label slice wins over a format func.
func tickFormatter(format func(float64) string, labels []string) func(float64) string {
	if len(labels) > 0 {
		return IndexLabeler(labels)
	}
	return format
}

// cameraVector computes the 9-element camera (position, focus, up)
// for 3-D scene mode from the perspective angles and camera distance,
// using a spherical-to-Cartesian transform.
func cameraVector(p Perspective, distance float64) []float64 {
	rot := math32.DegToRad(float32(p.Rotation))
	tilt := math32.DegToRad(float32(p.Tilt))
	pos := math32.Vec3(
		float32(distance)*math32.Sin(tilt)*math32.Sin(rot),
		float32(distance)*math32.Sin(tilt)*math32.Cos(rot),
		float32(distance)*math32.Cos(tilt),
	)
	up := math32.Vec3(0, 0, 1)
	if p.Tilt == 0 { // looking straight down: keep up out of the view axis
		up = math32.Vec3(0, 1, 0)
	}
	return []float64{
		float64(pos.X), float64(pos.Y), float64(pos.Z),
		0, 0, 0,
		float64(up.X), float64(up.Y), float64(up.Z),
	}
}
