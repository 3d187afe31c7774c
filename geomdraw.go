// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32/minmax"
)

// DrawContext carries the state shared by geometry drawers during one
// plot draw pass.
type DrawContext struct {
	Rend Renderer
	Plot *Plot

	// ColorRange accumulates auto-computed color-scale limits
	// returned by geometry rendering (e.g. volumes); legend and
	// colorbar drawing may depend on it afterward.
	ColorRange minmax.F64
}

// GeomDrawer renders one geometry through backend primitives.
type GeomDrawer func(dc *DrawContext, g *Geometry) error

var geomDrawers = map[GeomKind]GeomDrawer{
	KindLine:        drawLine,
	KindStep:        drawStep,
	KindStem:        drawStem,
	KindScatter:     drawScatter,
	KindBar:         drawBar,
	KindHistogram:   drawBar,
	KindErrorBar:    drawErrorBar,
	KindPolar:       drawPolar,
	KindHeatmap:     drawHeatmap,
	KindContour:     drawContour,
	KindContourFill: drawContour,
	KindWireframe:   drawSurface,
	KindSurface:     drawSurface,
	KindLine3:       drawLine3,
	KindScatter3:    drawScatter3,
	KindVolume:      drawVolume,
}

// RegisterGeomDrawer registers a draw function for a geometry kind,
// the extension point for user-defined kinds (use values >= KindUser)
// or for overriding a built-in drawer.
func RegisterGeomDrawer(kind GeomKind, d GeomDrawer) {
	geomDrawers[kind] = d
}

func drawerFor(kind GeomKind) (GeomDrawer, error) {
	if d, ok := geomDrawers[kind]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("plotkit: no drawer registered for geometry kind %v", kind)
}

// rend3D returns the 3-D capability of the backend, or an error for
// backends without it.
func (dc *DrawContext) rend3D() (Renderer3D, error) {
	if r3, ok := dc.Rend.(Renderer3D); ok {
		return r3, nil
	}
	return nil, fmt.Errorf("plotkit: renderer %T lacks 3-D support", dc.Rend)
}

// drawLine strokes the series; a nonzero "fill" attribute first fills
// the polygon closed over the point sequence.
func drawLine(dc *DrawContext, g *Geometry) error {
	dc.Rend.SetLineSpec(g.Spec)
	if g.Attr("fill", 0) != 0 {
		dc.Rend.FillArea(g.X, g.Y)
	}
	dc.Rend.Polyline(g.X, g.Y)
	return nil
}

// drawStep expands the points into post-step stair segments.
func drawStep(dc *DrawContext, g *Geometry) error {
	n := len(g.X)
	if n == 0 {
		return nil
	}
	sx := make([]float64, 0, 2*n-1)
	sy := make([]float64, 0, 2*n-1)
	sx = append(sx, g.X[0])
	sy = append(sy, g.Y[0])
	for i := 1; i < n; i++ {
		sx = append(sx, g.X[i], g.X[i])
		sy = append(sy, g.Y[i-1], g.Y[i])
	}
	dc.Rend.SetLineSpec(g.Spec)
	dc.Rend.Polyline(sx, sy)
	return nil
}

func drawStem(dc *DrawContext, g *Geometry) error {
	dc.Rend.SetLineSpec(g.Spec)
	base := g.Attr("baseline", 0)
	for i := range g.X {
		dc.Rend.Polyline([]float64{g.X[i], g.X[i]}, []float64{base, g.Y[i]})
	}
	dc.Rend.Polymarker(g.X, g.Y)
	return nil
}

func drawScatter(dc *DrawContext, g *Geometry) error {
	dc.Rend.SetLineSpec(g.Spec)
	if cc := g.ColorChannel(); len(cc) > 0 {
		Range(cc, &dc.ColorRange)
	}
	dc.Rend.Polymarker(g.X, g.Y)
	return nil
}

// drawBar fills one rectangle per (edge pair, height pair); bar and
// histogram geometries store flattened pairs in X and Y.
func drawBar(dc *DrawContext, g *Geometry) error {
	if len(g.X)%2 != 0 || len(g.Y) != len(g.X) {
		return fmt.Errorf("%w: bar geometry requires flattened coordinate pairs", ErrBadShape)
	}
	dc.Rend.SetLineSpec(g.Spec)
	for i := 0; i < len(g.X); i += 2 {
		dc.Rend.FillRect(g.X[i], g.X[i+1], g.Y[i], g.Y[i+1])
	}
	return nil
}

// drawErrorBar draws vertical error bars with caps. Z holds the
// downward deviations; C holds the upward ones, defaulting to Z.
func drawErrorBar(dc *DrawContext, g *Geometry) error {
	dc.Rend.SetLineSpec(g.Spec)
	capw := g.Attr("capwidth", 0.01)
	for i := range g.X {
		lo, hi := 0.0, 0.0
		if i < len(g.Z) {
			lo = math.Abs(g.Z[i])
			hi = lo
		}
		if i < len(g.C) {
			hi = math.Abs(g.C[i])
		}
		x, y := g.X[i], g.Y[i]
		dc.Rend.Polyline([]float64{x, x}, []float64{y - lo, y + hi})
		dc.Rend.Polyline([]float64{x - capw, x + capw}, []float64{y - lo, y - lo})
		dc.Rend.Polyline([]float64{x - capw, x + capw}, []float64{y + hi, y + hi})
	}
	return nil
}

// drawPolar converts (angle, radius) points to the unit disk; the
// radial range comes from the plot's Y axis.
func drawPolar(dc *DrawContext, g *Geometry) error {
	rng := dc.Plot.Axes.Ranges[DimY]
	px := make([]float64, len(g.X))
	py := make([]float64, len(g.X))
	for i := range g.X {
		r := rng.NormValue(g.Y[i])
		px[i] = r * math.Cos(g.X[i])
		py[i] = r * math.Sin(g.X[i])
	}
	dc.Rend.SetLineSpec(g.Spec)
	if g.Attr("fill", 0) != 0 {
		dc.Rend.FillArea(px, py)
	}
	dc.Rend.Polyline(px, py)
	return nil
}

func drawHeatmap(dc *DrawContext, g *Geometry) error {
	nx, ny := len(g.X), len(g.Y)
	if nx == 0 || ny == 0 {
		return nil
	}
	crng := minmax.F64{}
	crng.SetInfinity()
	Range(g.Z, &crng)
	if !crng.IsValid() {
		return nil
	}
	dc.ColorRange.FitInRange(crng)
	levels := int(g.Attr("levels", DefaultColorLevels))
	cells := make([]int, len(g.Z))
	for i, v := range g.Z {
		cells[i] = int(crng.ClipNormValue(v) * float64(levels-1))
	}
	dc.Rend.CellArray(g.X[0], g.X[nx-1], g.Y[0], g.Y[ny-1], nx, ny, cells)
	return nil
}

func drawContour(dc *DrawContext, g *Geometry) error {
	r3, err := dc.rend3D()
	if err != nil {
		return err
	}
	zrng := minmax.F64{}
	zrng.SetInfinity()
	Range(g.Z, &zrng)
	if !zrng.IsValid() {
		return nil
	}
	dc.ColorRange.FitInRange(zrng)
	nlev := int(g.Attr("levels", 20))
	h := make([]float64, nlev)
	for i := range h {
		h[i] = zrng.ProjValue(float64(i) / float64(nlev-1))
	}
	majorH := 0
	if g.Kind == KindContour {
		majorH = 1 // labeled major contour lines
	}
	r3.Contour(g.X, g.Y, h, g.Z, majorH)
	return nil
}

func drawSurface(dc *DrawContext, g *Geometry) error {
	r3, err := dc.rend3D()
	if err != nil {
		return err
	}
	zrng := minmax.F64{}
	zrng.SetInfinity()
	Range(g.Z, &zrng)
	if zrng.IsValid() {
		dc.ColorRange.FitInRange(zrng)
	}
	opt := SurfaceColored
	if g.Kind == KindWireframe {
		opt = SurfaceMesh
	}
	r3.Surface(g.X, g.Y, g.Z, opt)
	return nil
}

func drawLine3(dc *DrawContext, g *Geometry) error {
	r3, err := dc.rend3D()
	if err != nil {
		return err
	}
	dc.Rend.SetLineSpec(g.Spec)
	r3.Polyline3(g.X, g.Y, g.Z)
	return nil
}

func drawScatter3(dc *DrawContext, g *Geometry) error {
	r3, err := dc.rend3D()
	if err != nil {
		return err
	}
	dc.Rend.SetLineSpec(g.Spec)
	if cc := g.C; len(cc) > 0 {
		Range(cc, &dc.ColorRange)
	}
	r3.Polymarker3(g.X, g.Y, g.Z)
	return nil
}

func drawVolume(dc *DrawContext, g *Geometry) error {
	r3, err := dc.rend3D()
	if err != nil {
		return err
	}
	nx := int(g.Attr("nx", 0))
	ny := int(g.Attr("ny", 0))
	nz := int(g.Attr("nz", 0))
	if nx*ny*nz != len(g.Z) {
		return fmt.Errorf("%w: volume data is %d values for %dx%dx%d", ErrBadShape, len(g.Z), nx, ny, nz)
	}
	cmin, cmax := r3.Volume(g.Z, nx, ny, nz)
	dc.ColorRange.FitValInRange(cmin)
	dc.ColorRange.FitValInRange(cmax)
	return nil
}
