// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlotSentinels(t *testing.T) {
	p := NewPlot()
	assert.True(t, p.Viewport.IsZero())
	assert.True(t, p.Legend.IsEmpty())
	assert.True(t, p.Colorbar.IsEmpty())
	assert.Empty(t, p.Geoms)
	assert.Equal(t, Axes2D, p.Axes.Kind)
}

func TestPlotCompose(t *testing.T) {
	p := NewPlot()
	p.Geoms = []*Geometry{lineGeom([]float64{1, 2, 3}, []float64{4, 5, 6})}
	canvas := Size{W: 100, H: 100}
	p.Compose(canvas, nil)

	assert.False(t, p.Viewport.IsZero())
	assert.True(t, p.Viewport.Outer.Contains(p.Viewport.Inner))
	require.NotNil(t, p.Axes)
	assert.Less(t, p.Axes.Ranges[DimX].Min, p.Axes.Ranges[DimX].Max)
	// no labels, no color data: both guides stay empty
	assert.True(t, p.Legend.IsEmpty())
	assert.True(t, p.Colorbar.IsEmpty())
}

func TestComposeRebuildsPlaceholderAxes(t *testing.T) {
	canvas := Size{W: 100, H: 100}

	// NewPlot installs placeholder axes with zero ranges; composing a
	// hand-assembled plot must build them from the data
	p := NewPlot()
	require.True(t, p.Axes.IsZero())
	p.Geoms = []*Geometry{lineGeom([]float64{1, 2, 3}, []float64{4, 5, 6})}
	p.Compose(canvas, nil)

	yr := p.Axes.Ranges[DimY]
	assert.Less(t, yr.Min, yr.Max)
	assert.LessOrEqual(t, yr.Min, 4.0)
	assert.GreaterOrEqual(t, yr.Max, 6.0)
	assert.True(t, p.Axes.Grid)

	// the rebuild preserves a preset axes kind
	pp := NewPlot()
	pp.Axes.Kind = AxesPolar
	pp.Geoms = p.Geoms
	pp.Compose(canvas, nil)
	assert.Equal(t, AxesPolar, pp.Axes.Kind)
	assert.False(t, pp.Axes.IsZero())
}

func TestPlotComposeLegendMargin(t *testing.T) {
	canvas := Size{W: 100, H: 100}

	inside := NewPlot()
	inside.Geoms = []*Geometry{
		{Kind: KindLine, X: Values{1, 2}, Y: Values{1, 2}, Label: "series"},
	}
	inside.Compose(canvas, nil)
	require.False(t, inside.Legend.IsEmpty())

	outside := NewPlot()
	outside.Geoms = inside.Geoms
	outside.SetLegend(LegendOutsideRight)
	outside.Compose(canvas, nil)

	// an outside legend narrows the inner frame by its width
	assert.InDelta(t, inside.Viewport.Inner.X.Max-outside.Legend.Size.W,
		outside.Viewport.Inner.X.Max, 1e-12)
	// inside placements do not
	assert.Equal(t, inside.Viewport.Inner.X.Min, outside.Viewport.Inner.X.Min)
}

func TestPlotComposeColorbarMargin(t *testing.T) {
	canvas := Size{W: 100, H: 100}

	plain := NewPlot()
	plain.Geoms = []*Geometry{
		{Kind: KindHeatmap, X: Values{1, 2}, Y: Values{1, 2}, Z: Values{1, 2, 3, 4}},
	}
	plain.Compose(canvas, nil)
	require.False(t, plain.Colorbar.IsEmpty())

	withBar := NewPlot()
	withBar.Geoms = plain.Geoms
	withBar.SetColorbar(true)
	withBar.Compose(canvas, nil)
	assert.InDelta(t, plain.Viewport.Inner.X.Max-colorbarRightMargin,
		withBar.Viewport.Inner.X.Max, 1e-12)
}

func TestPlotColorDim(t *testing.T) {
	p := NewPlot()
	p.Geoms = []*Geometry{{Kind: KindHeatmap, Z: Values{1}}}
	assert.Equal(t, DimZ, p.colorDim())
	p.Geoms = append(p.Geoms, &Geometry{Kind: KindScatter, C: Values{1}})
	assert.Equal(t, DimC, p.colorDim())
}

func TestUpdateAxesPreservesKind(t *testing.T) {
	p := NewPlot()
	p.Axes.Kind = AxesPolar
	p.UpdateAxes()
	assert.Equal(t, AxesPolar, p.Axes.Kind)

	p.Axes = nil
	p.UpdateAxes()
	assert.Equal(t, Axes2D, p.Axes.Kind)
}

func TestEstimateMeasurer(t *testing.T) {
	w, h := estimateMeasurer{}.TextExtent("abcd", 0.02)
	assert.InDelta(t, 0.6*0.02*4, w, 1e-12)
	assert.Equal(t, 0.02, h)
}
