// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"log/slog"
	"math"
)

// Draw orchestration: state setup and draw order across nested
// components. All mark-making goes through the [Renderer] primitives;
// this file only decides what is drawn, where, and in which order.
//
// The per-plot ordering is a strict contract: geometries render
// between the axes background and the legend/colorbar/labels, because
// later elements may depend on color limits computed during geometry
// rendering.

// Character heights in NDC, scaled from the viewport diagonal.
const (
	titleCharHeightFrac = 0.024
	axisCharHeightFrac  = 0.018
	minCharHeight       = 0.012
	axisTickSize        = 0.0075
	legendPad           = 0.01
	colorbarWidth       = 0.03
	colorbarPad         = 0.02
)

// Draw resets the backend canvas state and draws all plots in order.
func (fg *Figure) Draw(r Renderer) error {
	r.Clear()
	for _, p := range fg.Plots {
		if err := p.Draw(r, fg.Size); err != nil {
			return err
		}
	}
	r.Flush()
	return nil
}

// Draw composes and draws one plot. A plot that was never composed
// and has no geometries (the empty-viewport sentinel) is a no-op.
func (p *Plot) Draw(r Renderer, canvas Size) error {
	if p.Viewport.IsZero() && len(p.Geoms) == 0 {
		return nil
	}
	p.Compose(canvas, r)

	r.SetColormap(p.Attrs.Colormap)
	r.SetTransparency(p.Attrs.Alpha)

	outer, inner := p.Viewport.Outer, p.Viewport.Inner
	if p.Attrs.Background != nil {
		r.SetViewport(outer.X.Min, outer.X.Max, outer.Y.Min, outer.Y.Max)
		r.SetWindow(0, 1, 0, 1)
		r.SetFillColor(p.Attrs.Background)
		r.FillRect(0, 1, 0, 1)
	}

	r.SetViewport(inner.X.Min, inner.X.Max, inner.Y.Min, inner.Y.Max)
	if err := p.setWindow(r); err != nil {
		return err
	}
	r.SetCharHeight(math.Max(axisCharHeightFrac*inner.Diag(), minCharHeight))

	if err := p.drawAxes(r); err != nil {
		return err
	}

	dc := &DrawContext{Rend: r, Plot: p}
	dc.ColorRange.SetInfinity()
	for _, g := range p.Geoms {
		drawer, err := drawerFor(g.Kind)
		if err != nil {
			return err
		}
		if err := drawer(dc, g); err != nil {
			return err
		}
	}
	// colorbar may ride on limits collected during geometry rendering
	if p.Colorbar.IsEmpty() && dc.ColorRange.IsValid() && dc.ColorRange.Range() > 0 {
		p.Colorbar = &Colorbar{
			Range:       dc.ColorRange,
			Tick:        0.5 * TickStep(dc.ColorRange.Min, dc.ColorRange.Max),
			ColorLevels: DefaultColorLevels,
		}
	}

	if p.Attrs.AxesOnTop {
		if err := p.drawAxes(r); err != nil {
			return err
		}
	}

	if p.Attrs.LegendLoc != LegendNone && !p.Legend.IsEmpty() {
		p.drawLegend(r)
	}
	if p.Attrs.Colorbar && !p.Colorbar.IsEmpty() {
		p.drawColorbar(r)
	}
	p.drawText(r)
	return nil
}

// setWindow sets the data window and transform scale from the axes,
// using the raw ranges (never the flipped tick origins).
func (p *Plot) setWindow(r Renderer) error {
	ax := p.Axes
	if ax.Kind == AxesPolar {
		r.SetWindow(-1, 1, -1, 1)
		return r.SetScale(0)
	}
	xr, yr := ax.Ranges[DimX], ax.Ranges[DimY]
	r.SetWindow(xr.Min, xr.Max, yr.Min, yr.Max)
	return r.SetScale(ax.Scale)
}

// drawAxes draws the coordinate system for the plot's axes kind.
func (p *Plot) drawAxes(r Renderer) error {
	ax := p.Axes
	switch ax.Kind {
	case AxesNone:
		return nil
	case Axes2D:
		xt, yt := ax.Ticks[DimX], ax.Ticks[DimY]
		if ax.Grid {
			r.Grid2D(xt.Minor, yt.Minor, xt.Org.Min, yt.Org.Min, xt.Major, yt.Major)
		}
		al, labeled := r.(AxesLabeler)
		if labeled && (ax.Formatters[DimX] != nil || ax.Formatters[DimY] != nil) {
			fx := tickLabelFunc(r, ax.Formatters[DimX])
			fy := tickLabelFunc(r, ax.Formatters[DimY])
			al.Axes2DLabeled(xt.Minor, yt.Minor, xt.Org.Min, yt.Org.Min, xt.Major, yt.Major, axisTickSize, fx, fy)
		} else {
			r.Axes2D(xt.Minor, yt.Minor, xt.Org.Min, yt.Org.Min, xt.Major, yt.Major, axisTickSize)
		}
		r.Axes2D(xt.Minor, yt.Minor, xt.Org.Max, yt.Org.Max, -xt.Major, -yt.Major, -axisTickSize)
		return nil
	case Axes3D:
		dc := DrawContext{Rend: r}
		r3, err := dc.rend3D()
		if err != nil {
			return err
		}
		zr := ax.Ranges[DimZ]
		r3.SetSpace3D(zr.Min, zr.Max, ax.Perspective.Rotation, ax.Perspective.Tilt)
		if ax.Camera != nil {
			r3.SetCamera(ax.Camera)
		}
		xt, yt, zt := ax.Ticks[DimX], ax.Ticks[DimY], ax.Ticks[DimZ]
		r3.Axes3D(xt.Minor, 0, zt.Minor, xt.Org.Min, yt.Org.Max, zt.Org.Min, xt.Major, 0, zt.Major, -axisTickSize)
		r3.Axes3D(0, yt.Minor, 0, xt.Org.Max, yt.Org.Min, zt.Org.Min, 0, yt.Major, 0, axisTickSize)
		return nil
	case AxesPolar:
		p.drawPolarAxes(r)
	}
	return nil
}

// tickLabelFunc wraps a formatter into the render closure the backend
// invokes per tick; a nil formatter keeps the backend default label.
func tickLabelFunc(r Renderer, f func(float64) string) TickLabelFunc {
	return func(x, y float64, label string, value float64) {
		if f != nil {
			label = f(value)
		}
		r.Text(x, y, label)
	}
}

// drawPolarAxes draws radial grid circles and angular spokes; the
// backend has no polar axes primitive, so these are layout-computed
// polylines on the unit disk.
func (p *Plot) drawPolarAxes(r Renderer) {
	const segments = 128
	rings := p.Axes.Ticks[DimY].Major
	if rings <= 0 {
		rings = 4
	}
	rng := p.Axes.Ranges[DimY]
	for k := 1; k <= rings; k++ {
		rad := float64(k) / float64(rings)
		cx := make([]float64, segments+1)
		cy := make([]float64, segments+1)
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			cx[i] = rad * math.Cos(a)
			cy[i] = rad * math.Sin(a)
		}
		r.Polyline(cx, cy)
		r.Text(0.01, rad, FormatTick(rng.ProjValue(rad)))
	}
	for k := 0; k < 12; k++ {
		a := 2 * math.Pi * float64(k) / 12
		r.Polyline([]float64{0, math.Cos(a)}, []float64{0, math.Sin(a)})
	}
}

// legendItems returns the geometries that participate in the legend,
// in draw order; the same filter BuildLegend applies.
func legendItems(geoms []*Geometry) []*Geometry {
	var items []*Geometry
	for _, g := range geoms {
		if g.Label != "" && g.Kind.HasLegendGuide() {
			items = append(items, g)
		}
	}
	return items
}

// legendOrigin returns the top-left NDC corner for the legend frame.
func (p *Plot) legendOrigin() (x, y float64) {
	inner := p.Viewport.Inner
	sz := p.Legend.Size
	switch p.Attrs.LegendLoc {
	case LegendUpperLeft:
		return inner.X.Min + legendPad, inner.Y.Max - legendPad
	case LegendLowerLeft:
		return inner.X.Min + legendPad, inner.Y.Min + sz.H + legendPad
	case LegendLowerRight:
		return inner.X.Max - sz.W - legendPad, inner.Y.Min + sz.H + legendPad
	case LegendOutsideRight:
		return inner.X.Max + legendPad, inner.Y.Max - legendPad
	default: // upper right
		return inner.X.Max - sz.W - legendPad, inner.Y.Max - legendPad
	}
}

// drawLegend draws the legend frame, guide glyphs and labels at the
// cursor positions computed by BuildLegend, in NDC.
func (p *Plot) drawLegend(r Renderer) {
	lg := p.Legend
	items := legendItems(p.Geoms)
	if len(items) != len(lg.Cursors) { // composed against different geometries
		lg = BuildLegend(p.Geoms, p.Viewport.Inner, r, p.Attrs.MaxLegendRows)
		p.Legend = lg
		if lg.IsEmpty() {
			return
		}
	}
	r.SetViewport(0, 1, 0, 1)
	r.SetWindow(0, 1, 0, 1)
	ch := LegendCharHeight(p.Viewport.Inner)
	r.SetCharHeight(ch)

	ox, oy := p.legendOrigin()
	if p.Attrs.Background != nil {
		r.SetFillColor(p.Attrs.Background)
		r.FillRect(ox, ox+lg.Size.W, oy-lg.Size.H, oy)
	}
	for i, g := range items {
		cur := lg.Cursors[i]
		x := ox + cur.X
		y := oy - cur.Y - 0.5*ch
		r.SetLineSpec(g.Spec)
		if g.Kind == KindScatter {
			r.Polymarker([]float64{x + 0.4*legendGuideWidth}, []float64{y})
		} else {
			r.Polyline([]float64{x, x + 0.8*legendGuideWidth}, []float64{y, y})
		}
		r.Text(x+legendGuideWidth, y-0.5*ch, g.Label)
	}
}

// drawColorbar draws the color strip and its value axis in the
// reserved right margin.
func (p *Plot) drawColorbar(r Renderer) {
	cb := p.Colorbar
	inner := p.Viewport.Inner
	x0 := inner.X.Max + colorbarPad + cb.Margin
	x1 := x0 + colorbarWidth
	r.SetViewport(x0, x1, inner.Y.Min, inner.Y.Max)
	r.SetWindow(0, 1, cb.Range.Min, cb.Range.Max)
	if err := r.SetScale(cb.Scale); err != nil {
		slog.Error("plotkit: renderer rejected colorbar scale", "scale", cb.Scale, "err", err)
		return
	}
	cells := make([]int, cb.ColorLevels)
	for i := range cells {
		cells[i] = i
	}
	r.CellArray(0, 1, cb.Range.Min, cb.Range.Max, 1, cb.ColorLevels, cells)
	r.Axes2D(0, cb.Tick, 1, cb.Range.Min, 0, 1, axisTickSize)
}

// drawText draws the title and axis labels anchored to the viewport
// boxes.
func (p *Plot) drawText(r Renderer) {
	at := &p.Attrs
	if at.Title == "" && at.XLabel == "" && at.YLabel == "" {
		return
	}
	outer, inner := p.Viewport.Outer, p.Viewport.Inner
	r.SetViewport(0, 1, 0, 1)
	r.SetWindow(0, 1, 0, 1)
	if at.Title != "" {
		ch := math.Max(titleCharHeightFrac*inner.Diag(), minCharHeight)
		r.SetCharHeight(ch)
		tw, _ := r.TextExtent(at.Title, ch)
		r.Text(inner.X.Midpoint()-0.5*tw, outer.Y.Max-ch, at.Title)
	}
	ch := math.Max(axisCharHeightFrac*inner.Diag(), minCharHeight)
	r.SetCharHeight(ch)
	if at.XLabel != "" {
		tw, _ := r.TextExtent(at.XLabel, ch)
		r.Text(inner.X.Midpoint()-0.5*tw, outer.Y.Min+0.5*ch, at.XLabel)
	}
	if at.YLabel != "" {
		_, th := r.TextExtent(at.YLabel, ch)
		r.Text(outer.X.Min+0.5*th, inner.Y.Midpoint(), at.YLabel)
	}
}
