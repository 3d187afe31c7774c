// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "fmt"

// Front-end plotting family: thin wrappers that normalize arguments
// through the geometry factory and install the result on the current
// plot. One table entry per kind carries the per-kind wiring; the
// named methods only select the entry.

type familyEntry struct {
	axes     AxesKind
	colorbar bool
}

var plotFamily = map[GeomKind]familyEntry{
	KindLine:        {axes: Axes2D},
	KindStep:        {axes: Axes2D},
	KindStem:        {axes: Axes2D},
	KindScatter:     {axes: Axes2D},
	KindBar:         {axes: Axes2D},
	KindHistogram:   {axes: Axes2D},
	KindErrorBar:    {axes: Axes2D},
	KindPolar:       {axes: AxesPolar},
	KindHeatmap:     {axes: Axes2D, colorbar: true},
	KindContour:     {axes: Axes2D, colorbar: true},
	KindContourFill: {axes: Axes2D, colorbar: true},
	KindWireframe:   {axes: Axes3D},
	KindSurface:     {axes: Axes3D, colorbar: true},
	KindLine3:       {axes: Axes3D},
	KindScatter3:    {axes: Axes3D},
	KindVolume:      {axes: Axes3D, colorbar: true},
}

// PlotKind normalizes args through [NewGeometries] and installs the
// resulting geometries of the given kind on the current plot. With
// hold active the geometries layer onto the existing plot; otherwise a
// fresh plot replaces the current one, keeping its attributes and
// subplot slot. The extension point for kinds registered with
// [RegisterGeomDrawer]: user kinds draw with 2-D axes and no colorbar
// unless layered onto a configured plot.
func (ctx *Context) PlotKind(kind GeomKind, args ...any) (*Plot, error) {
	geoms, err := NewGeometries(kind, args...)
	if err != nil {
		return nil, err
	}
	for _, g := range geoms {
		if _, err := ParseLineSpec(g.Spec); err != nil {
			return nil, err
		}
	}
	return ctx.installGeoms(kind, geoms)
}

func (ctx *Context) installGeoms(kind GeomKind, geoms []*Geometry) (*Plot, error) {
	ent, ok := plotFamily[kind]
	if !ok {
		ent = familyEntry{axes: Axes2D}
	}
	p := ctx.CurrentPlot()
	if p.Attrs.Hold && len(p.Geoms) > 0 {
		p.Geoms = append(p.Geoms, geoms...)
	} else {
		np := NewPlot()
		np.Attrs = p.Attrs
		np.Attrs.Colorbar = false // per-kind, not sticky across replacement
		np.Geoms = geoms
		np.Axes.Kind = ent.axes
		ctx.Figure().SetCurrent(np)
		p = np
	}
	if ent.colorbar {
		p.Attrs.Colorbar = true
	}
	p.UpdateAxes()
	return p, nil
}

// Plot draws line series; see [NewGeometries] for argument forms.
func (ctx *Context) Plot(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindLine, args...)
}

// Stairs draws post-step stairstep series.
func (ctx *Context) Stairs(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindStep, args...)
}

// Stem draws vertical stems with markers at the data points.
func (ctx *Context) Stem(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindStem, args...)
}

// Scatter draws one marker series, optionally sized by z and colored
// by c.
func (ctx *Context) Scatter(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindScatter, args...)
}

// ErrorBar draws points with vertical error bars; the third
// coordinate holds the downward deviations and the fourth the upward
// ones, defaulting to symmetric.
func (ctx *Context) ErrorBar(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindErrorBar, args...)
}

// Polar draws (angle, radius) series on polar axes; angles in radians.
func (ctx *Context) Polar(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindPolar, args...)
}

// Contour draws labeled contour lines of z sampled on the (x, y) grid.
func (ctx *Context) Contour(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindContour, args...)
}

// Contourf draws filled contours of z sampled on the (x, y) grid.
func (ctx *Context) Contourf(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindContourFill, args...)
}

// Heatmap draws a raster image of the row-major matrix z over integer
// cell coordinates.
func (ctx *Context) Heatmap(z [][]float64, args ...any) (*Plot, error) {
	x, y, flat, err := Grid(z)
	if err != nil {
		return nil, err
	}
	return ctx.PlotKind(KindHeatmap, append([]any{x, y, flat}, args...)...)
}

// Wireframe draws a 3-D surface mesh without fill.
func (ctx *Context) Wireframe(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindWireframe, args...)
}

// Surface draws a color-shaded 3-D surface.
func (ctx *Context) Surface(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindSurface, args...)
}

// Plot3 draws line series in 3-D space.
func (ctx *Context) Plot3(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindLine3, args...)
}

// Scatter3 draws marker series in 3-D space, optionally colored by c.
func (ctx *Context) Scatter3(args ...any) (*Plot, error) {
	return ctx.PlotKind(KindScatter3, args...)
}

// Bar draws vertical bars for category heights at positions 1..n.
func (ctx *Context) Bar(heights []float64, spec ...string) (*Plot, error) {
	x, y := BarCoordinates(heights, 0, 0)
	g := &Geometry{Kind: KindBar, X: x, Y: y}
	if len(spec) > 0 {
		if _, err := ParseLineSpec(spec[0]); err != nil {
			return nil, err
		}
		g.Spec = spec[0]
	}
	return ctx.installGeoms(KindBar, []*Geometry{g})
}

// Histogram bins the samples into nbins equal-width bins (nbins <= 0
// selects an automatic count) and draws the counts as bars. NaN
// samples are dropped before binning; infinite ones are an error.
func (ctx *Context) Histogram(samples []float64, nbins int, spec ...string) (*Plot, error) {
	vals, err := CopyValues(Values(samples))
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, ErrNoData
	}
	edges, counts := HistogramBins(vals, nbins)
	x, y := EdgesToBarCoordinates(edges, counts, 0)
	g := &Geometry{Kind: KindHistogram, X: x, Y: y}
	if len(spec) > 0 {
		if _, err := ParseLineSpec(spec[0]); err != nil {
			return nil, err
		}
		g.Spec = spec[0]
	}
	return ctx.installGeoms(KindHistogram, []*Geometry{g})
}

// Volume renders scalar data on an nx x ny x nz grid; the backend
// reports the color limits it used, which feed the colorbar.
func (ctx *Context) Volume(data []float64, nx, ny, nz int) (*Plot, error) {
	if nx < 1 || ny < 1 || nz < 1 || nx*ny*nz != len(data) {
		return nil, fmt.Errorf("%w: volume data is %d values for %dx%dx%d", ErrBadShape, len(data), nx, ny, nz)
	}
	xs := make(Values, nx)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	ys := make(Values, ny)
	for i := range ys {
		ys[i] = float64(i + 1)
	}
	g := &Geometry{
		Kind:  KindVolume,
		X:     xs,
		Y:     ys,
		Z:     data,
		Attrs: map[string]float64{"nx": float64(nx), "ny": float64(ny), "nz": float64(nz)},
	}
	return ctx.installGeoms(KindVolume, []*Geometry{g})
}

// Grid flattens a row-major matrix into the x, y, z coordinate triple
// field kinds consume: x spans the columns, y the rows, both from 1.
func Grid(z [][]float64) (x, y, flat Values, err error) {
	ny := len(z)
	if ny == 0 || len(z[0]) == 0 {
		return nil, nil, nil, ErrNoData
	}
	nx := len(z[0])
	flat = make(Values, 0, nx*ny)
	for _, row := range z {
		if len(row) != nx {
			return nil, nil, nil, fmt.Errorf("%w: ragged matrix rows %d vs %d", ErrBadShape, len(row), nx)
		}
		flat = append(flat, row...)
	}
	x = make(Values, nx)
	for i := range x {
		x[i] = float64(i + 1)
	}
	y = make(Values, ny)
	for i := range y {
		y[i] = float64(i + 1)
	}
	return x, y, flat, nil
}
