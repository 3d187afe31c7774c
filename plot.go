// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "image/color"

// colorbarRightMargin is the fixed right margin reserved for an
// enabled colorbar.
const colorbarRightMargin = 0.1

// Plot composes a Viewport, Axes, geometry list, Legend, Colorbar and
// attributes into one renderable unit. It owns all its sub-components
// exclusively; a non-hold plot call on the same subplot slot replaces
// the Plot wholesale.
type Plot struct {
	Viewport Viewport
	Axes     *Axes
	Geoms    []*Geometry
	Legend   *Legend
	Colorbar *Colorbar
	Attrs    Attributes
}

// NewPlot returns an empty Plot: empty-sentinel viewport, legend and
// colorbar, no geometries, default attributes.
func NewPlot() *Plot {
	p := &Plot{
		Axes:     &Axes{Kind: Axes2D},
		Legend:   &Legend{},
		Colorbar: &Colorbar{},
	}
	p.Attrs.Defaults()
	return p
}

// ComposePlot composes the given parts into a Plot. A nil legend or
// colorbar is built from the axes and geometries with defaults; nil
// attributes mean the default attribute set. The viewport is computed
// from the requested subplot rectangle, frame flag, optional aspect
// ratio, and the extra margins induced by the legend and colorbar.
func ComposePlot(axes *Axes, geoms []*Geometry, legend *Legend, colorbar *Colorbar, attrs *Attributes, canvas Size, tm TextMeasurer) *Plot {
	p := NewPlot()
	if attrs != nil {
		p.Attrs = *attrs
	}
	p.Axes = axes
	p.Geoms = geoms
	p.Legend = legend
	p.Colorbar = colorbar
	p.compose(canvas, tm)
	return p
}

// Compose rebuilds the legend, colorbar and viewport from the current
// axes, geometries and attributes. Purely compositional: no backend
// drawing happens here.
func (p *Plot) Compose(canvas Size, tm TextMeasurer) {
	p.Legend = nil
	p.Colorbar = nil
	p.compose(canvas, tm)
}

func (p *Plot) compose(canvas Size, tm TextMeasurer) {
	if p.Axes == nil || p.Axes.IsZero() {
		p.UpdateAxes() // nil or placeholder axes, never built from data
	}
	if tm == nil {
		tm = estimateMeasurer{}
	}
	// reference frame before extra margins, for font-size scaling
	base := ComputeViewport(p.Attrs.Subplot, canvas, p.Attrs.Frame, p.Attrs.AspectRatio, Margins{})
	if p.Legend == nil {
		p.Legend = BuildLegend(p.Geoms, base.Inner, tm, p.Attrs.MaxLegendRows)
	}
	if p.Colorbar == nil {
		p.Colorbar = BuildColorbar(p.Axes, p.colorDim(), DefaultColorLevels)
	}

	var extra Margins
	if p.Attrs.LegendLoc == LegendOutsideRight && !p.Legend.IsEmpty() {
		extra.Right += p.Legend.Size.W
	}
	if p.Attrs.Colorbar && !p.Colorbar.IsEmpty() {
		extra.Right += colorbarRightMargin
	}
	p.Viewport = ComputeViewport(p.Attrs.Subplot, canvas, p.Attrs.Frame, p.Attrs.AspectRatio, extra)
}

// colorDim returns the channel the colorbar represents: C when any
// geometry carries explicit color data, else Z.
func (p *Plot) colorDim() Dim {
	for _, g := range p.Geoms {
		if len(g.C) > 0 {
			return DimC
		}
	}
	return DimZ
}

// UpdateAxes recomputes the axes wholesale from the current
// geometries and attribute overrides, preserving the axes kind.
func (p *Plot) UpdateAxes() {
	kind := Axes2D
	if p.Axes != nil {
		kind = p.Axes.Kind
	}
	p.Axes = BuildAxes(kind, p.Geoms, &p.Attrs.Overrides)
}

// estimateMeasurer approximates text extents from character counts,
// used only when no backend measurer is available.
type estimateMeasurer struct{}

func (estimateMeasurer) TextExtent(s string, charHeight float64) (w, h float64) {
	n := 0
	for range s {
		n++
	}
	return 0.6 * charHeight * float64(n), charHeight
}

//////// attribute setters
// Each setter mutates the plot attributes in place; setters that
// affect axis semantics recompute the axes immediately.

// SetTitle sets the plot title.
func (p *Plot) SetTitle(s string) *Plot {
	p.Attrs.Title = s
	return p
}

// SetXLabel sets the X axis label.
func (p *Plot) SetXLabel(s string) *Plot {
	p.Attrs.XLabel = s
	return p
}

// SetYLabel sets the Y axis label.
func (p *Plot) SetYLabel(s string) *Plot {
	p.Attrs.YLabel = s
	return p
}

// SetZLabel sets the Z axis label.
func (p *Plot) SetZLabel(s string) *Plot {
	p.Attrs.ZLabel = s
	return p
}

// SetXLim fixes the X axis bounds; a nil entry keeps the
// automatically computed bound, and (nil, nil) restores fully
// automatic limits.
func (p *Plot) SetXLim(min, max *float64) *Plot {
	p.Attrs.Overrides.XLim = limOf(min, max)
	p.UpdateAxes()
	return p
}

// SetYLim fixes the Y axis bounds; see [Plot.SetXLim].
func (p *Plot) SetYLim(min, max *float64) *Plot {
	p.Attrs.Overrides.YLim = limOf(min, max)
	p.UpdateAxes()
	return p
}

// SetZLim fixes the Z axis bounds; see [Plot.SetXLim].
func (p *Plot) SetZLim(min, max *float64) *Plot {
	p.Attrs.Overrides.ZLim = limOf(min, max)
	p.UpdateAxes()
	return p
}

// SetCLim fixes the color channel bounds; see [Plot.SetXLim].
func (p *Plot) SetCLim(min, max *float64) *Plot {
	p.Attrs.Overrides.CLim = limOf(min, max)
	p.UpdateAxes()
	return p
}

// SetXLog sets logarithmic scaling on the X axis.
func (p *Plot) SetXLog(on bool) *Plot {
	p.Attrs.Overrides.XLog = on
	p.UpdateAxes()
	return p
}

// SetYLog sets logarithmic scaling on the Y axis.
func (p *Plot) SetYLog(on bool) *Plot {
	p.Attrs.Overrides.YLog = on
	p.UpdateAxes()
	return p
}

// SetZLog sets logarithmic scaling on the Z axis.
func (p *Plot) SetZLog(on bool) *Plot {
	p.Attrs.Overrides.ZLog = on
	p.UpdateAxes()
	return p
}

// SetXFlip reverses the X axis direction.
func (p *Plot) SetXFlip(on bool) *Plot {
	p.Attrs.Overrides.XFlip = on
	p.UpdateAxes()
	return p
}

// SetYFlip reverses the Y axis direction.
func (p *Plot) SetYFlip(on bool) *Plot {
	p.Attrs.Overrides.YFlip = on
	p.UpdateAxes()
	return p
}

// SetZFlip reverses the Z axis direction.
func (p *Plot) SetZFlip(on bool) *Plot {
	p.Attrs.Overrides.ZFlip = on
	p.UpdateAxes()
	return p
}

// SetXTicks overrides the X tick step and major count.
func (p *Plot) SetXTicks(minor float64, major int) *Plot {
	p.Attrs.Overrides.XTicks.Set(TickSpec{Minor: minor, Major: major})
	p.UpdateAxes()
	return p
}

// SetYTicks overrides the Y tick step and major count.
func (p *Plot) SetYTicks(minor float64, major int) *Plot {
	p.Attrs.Overrides.YTicks.Set(TickSpec{Minor: minor, Major: major})
	p.UpdateAxes()
	return p
}

// SetZTicks overrides the Z tick step and major count.
func (p *Plot) SetZTicks(minor float64, major int) *Plot {
	p.Attrs.Overrides.ZTicks.Set(TickSpec{Minor: minor, Major: major})
	p.UpdateAxes()
	return p
}

// SetXTickLabels maps integer X tick values 1, 2, 3, ... to fixed
// labels.
func (p *Plot) SetXTickLabels(labels []string) *Plot {
	p.Attrs.Overrides.XTickLabels = labels
	p.UpdateAxes()
	return p
}

// SetYTickLabels maps integer Y tick values 1, 2, 3, ... to fixed
// labels.
func (p *Plot) SetYTickLabels(labels []string) *Plot {
	p.Attrs.Overrides.YTickLabels = labels
	p.UpdateAxes()
	return p
}

// SetXTickFormat sets an explicit X tick label function.
func (p *Plot) SetXTickFormat(f func(float64) string) *Plot {
	p.Attrs.Overrides.XTickFormat = f
	p.UpdateAxes()
	return p
}

// SetYTickFormat sets an explicit Y tick label function.
func (p *Plot) SetYTickFormat(f func(float64) string) *Plot {
	p.Attrs.Overrides.YTickFormat = f
	p.UpdateAxes()
	return p
}

// SetGrid sets grid line visibility.
func (p *Plot) SetGrid(on bool) *Plot {
	p.Attrs.Overrides.Grid.Set(on)
	p.UpdateAxes()
	return p
}

// SetLegend sets the legend placement slot.
func (p *Plot) SetLegend(loc LegendLocation) *Plot {
	p.Attrs.LegendLoc = loc
	return p
}

// SetColorbar enables or disables the colorbar.
func (p *Plot) SetColorbar(on bool) *Plot {
	p.Attrs.Colorbar = on
	return p
}

// SetAspectRatio fixes the inner frame width/height ratio.
func (p *Plot) SetAspectRatio(r float64) *Plot {
	p.Attrs.AspectRatio = r
	return p
}

// SetHold sets hold mode: subsequent plot calls layer onto this plot
// instead of replacing it.
func (p *Plot) SetHold(on bool) *Plot {
	p.Attrs.Hold = on
	return p
}

// SetBackground sets the background fill color; nil disables it.
func (p *Plot) SetBackground(c color.Color) *Plot {
	p.Attrs.Background = c
	return p
}

// SetColormap selects the backend colormap index.
func (p *Plot) SetColormap(index int) *Plot {
	p.Attrs.Colormap = index
	return p
}

// SetScheme sets the overall color scheme.
func (p *Plot) SetScheme(s ColorScheme) *Plot {
	p.Attrs.Scheme = s
	return p
}
