// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

// GeomKind selects which backend draw routine and which legend guide
// glyph applies to a [Geometry].
type GeomKind int32

const (
	// KindLine connects consecutive points with straight segments.
	KindLine GeomKind = iota

	// KindStep connects consecutive points with horizontal-then-vertical
	// stair segments.
	KindStep

	// KindStem draws a vertical line from the baseline plus a marker
	// for each point.
	KindStem

	// KindScatter draws a marker per point, with optional per-point
	// size (Z) and color (C) channels.
	KindScatter

	// KindBar draws one filled rectangle per (edge-pair, height-pair).
	KindBar

	// KindHistogram is a bar geometry produced from binned data.
	KindHistogram

	// KindErrorBar draws vertical error bars around the points.
	KindErrorBar

	// KindPolar draws a line in polar coordinates.
	KindPolar

	// KindHeatmap blits a matrix of values as a colormapped cell array.
	KindHeatmap

	// KindContour draws contour lines of a Z matrix.
	KindContour

	// KindContourFill draws filled contour bands of a Z matrix.
	KindContourFill

	// KindWireframe draws a 3-D mesh without surface fill.
	KindWireframe

	// KindSurface draws a colormapped 3-D surface.
	KindSurface

	// KindLine3 draws a polyline in 3-D coordinates.
	KindLine3

	// KindScatter3 draws markers in 3-D coordinates.
	KindScatter3

	// KindVolume renders volumetric data.
	KindVolume

	// KindUser is the first kind value available for registered
	// user extensions, via [RegisterGeomDrawer].
	KindUser
)

var geomKindNames = map[GeomKind]string{
	KindLine:        "line",
	KindStep:        "step",
	KindStem:        "stem",
	KindScatter:     "scatter",
	KindBar:         "bar",
	KindHistogram:   "histogram",
	KindErrorBar:    "errorbar",
	KindPolar:       "polar",
	KindHeatmap:     "heatmap",
	KindContour:     "contour",
	KindContourFill: "contourf",
	KindWireframe:   "wireframe",
	KindSurface:     "surface",
	KindLine3:       "line3",
	KindScatter3:    "scatter3",
	KindVolume:      "volume",
}

func (k GeomKind) String() string {
	if nm, ok := geomKindNames[k]; ok {
		return nm
	}
	return "user" // registered extension kinds
}

// HasLegendGuide returns true for kinds that support a legend guide
// glyph: the line and marker families, bars, and error bars. Surfaces,
// heatmaps and other field-like kinds have no meaningful one-line
// sample.
func (k GeomKind) HasLegendGuide() bool {
	switch k {
	case KindLine, KindStep, KindStem, KindScatter, KindBar, KindHistogram, KindErrorBar, KindPolar:
		return true
	}
	return false
}

// Is3D returns true for kinds that require a 3-D axes and a backend
// with 3-D capabilities.
func (k GeomKind) Is3D() bool {
	switch k {
	case KindWireframe, KindSurface, KindLine3, KindScatter3, KindVolume:
		return true
	}
	return false
}

// Geometry is one renderable data series: a kind tag, up to four
// coordinate channels, a format spec string, a legend label, and
// free numeric style attributes. A Geometry is immutable once
// constructed; use [Geometry.WithAttrs] to derive a styled copy.
type Geometry struct {
	// Kind selects the backend draw routine.
	Kind GeomKind

	// X, Y, Z, C are the coordinate channels. Channels not used by
	// the Kind are empty. C is the color channel; when empty, Z
	// substitutes for color-range purposes.
	X, Y, Z, C Values

	// Spec is the format spec string ("r-o" etc.) passed through to
	// the renderer line/marker state.
	Spec string

	// Label is the legend label; empty excludes the series from the
	// legend.
	Label string

	// Attrs holds numeric style attributes (linewidth, markersize,
	// baseline, fill, matrix dimensions for field kinds, ...).
	Attrs map[string]float64
}

// WithAttrs returns a copy of the geometry with the given attributes
// merged over the existing ones. The receiver is not modified.
func (g *Geometry) WithAttrs(attrs map[string]float64) *Geometry {
	ng := *g
	ng.Attrs = make(map[string]float64, len(g.Attrs)+len(attrs))
	for k, v := range g.Attrs {
		ng.Attrs[k] = v
	}
	for k, v := range attrs {
		ng.Attrs[k] = v
	}
	return &ng
}

// Attr returns the named numeric attribute, or def if unset.
func (g *Geometry) Attr(name string, def float64) float64 {
	if v, ok := g.Attrs[name]; ok {
		return v
	}
	return def
}

// ColorChannel returns the values governing the color range for this
// geometry: C if present, else Z.
func (g *Geometry) ColorChannel() Values {
	if len(g.C) > 0 {
		return g.C
	}
	return g.Z
}
