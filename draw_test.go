// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit"
	"github.com/plotkit/plotkit/rendertest"
)

func linePlot(label string) *plotkit.Plot {
	p := plotkit.NewPlot()
	p.Geoms = []*plotkit.Geometry{{
		Kind:  plotkit.KindLine,
		X:     plotkit.Values{1, 2, 3},
		Y:     plotkit.Values{4, 5, 6},
		Label: label,
	}}
	return p
}

func TestFigureDrawOrder(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(linePlot("series"))
	fg.Current().SetTitle("hello")

	require.NoError(t, fg.Draw(rec))

	names := rec.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "Clear", names[0])
	assert.Equal(t, "Flush", names[len(names)-1])

	// axes before geometry, geometry before title text
	axes := rec.Index("Axes2D")
	line := rec.Index("Polyline")
	require.GreaterOrEqual(t, axes, 0)
	require.GreaterOrEqual(t, line, 0)
	assert.Less(t, axes, line)

	var titleAt int = -1
	for i, op := range rec.Ops {
		if op.Name == "Text" && len(op.Args) == 3 && op.Args[2] == "hello" {
			titleAt = i
		}
	}
	require.GreaterOrEqual(t, titleAt, 0)
	assert.Greater(t, titleAt, line)
}

func TestDrawEmptyPlotSkipped(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	require.NoError(t, fg.Draw(rec))
	// only frame bookkeeping, no drawing
	assert.Equal(t, []string{"Clear", "Flush"}, rec.Names())
}

func TestDrawLegendSuppressed(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(linePlot("series"))
	require.NoError(t, fg.Draw(rec))
	withLegend := rec.Count("Text")

	rec.Reset()
	fg.Current().SetLegend(plotkit.LegendNone)
	require.NoError(t, fg.Draw(rec))
	assert.Less(t, rec.Count("Text"), withLegend)
}

func TestDrawScatterLegendGuide(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	p := plotkit.NewPlot()
	p.Geoms = []*plotkit.Geometry{{
		Kind:  plotkit.KindScatter,
		X:     plotkit.Values{1, 2, 3},
		Y:     plotkit.Values{4, 5, 6},
		Label: "pts",
	}}
	fg.SetCurrent(p)

	require.NoError(t, fg.Draw(rec))
	// one marker run for the series, one for the legend guide
	assert.Equal(t, 2, rec.Count("Polymarker"))
	assert.Zero(t, rec.Count("Polyline"))
}

func TestDrawLineFill(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	p := linePlot("")
	p.Geoms[0] = p.Geoms[0].WithAttrs(map[string]float64{"fill": 1})
	fg.SetCurrent(p)

	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 1, rec.Count("FillArea"))
	// the fill renders under the stroke
	assert.Less(t, rec.Index("FillArea"), rec.Index("Polyline"))
}

func TestDrawColorbarOnlyWhenEnabled(t *testing.T) {
	p := plotkit.NewPlot()
	p.Geoms = []*plotkit.Geometry{{
		Kind: plotkit.KindHeatmap,
		X:    plotkit.Values{1, 2},
		Y:    plotkit.Values{1, 2},
		Z:    plotkit.Values{1, 2, 3, 4},
	}}

	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(p)
	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 1, rec.Count("CellArray")) // the heatmap itself

	rec.Reset()
	p.SetColorbar(true)
	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 2, rec.Count("CellArray")) // heatmap plus color strip
}

func TestDrawGrid(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(linePlot(""))
	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 1, rec.Count("Grid2D")) // grid defaults on

	rec.Reset()
	fg.Current().SetGrid(false)
	require.NoError(t, fg.Draw(rec))
	assert.Zero(t, rec.Count("Grid2D"))
}

func TestDraw3D(t *testing.T) {
	p := plotkit.NewPlot()
	p.Axes.Kind = plotkit.Axes3D
	p.Geoms = []*plotkit.Geometry{{
		Kind: plotkit.KindLine3,
		X:    plotkit.Values{0, 1},
		Y:    plotkit.Values{0, 1},
		Z:    plotkit.Values{0, 1},
	}}
	p.UpdateAxes()

	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(p)
	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 1, rec.Count("SetSpace3D"))
	assert.Equal(t, 2, rec.Count("Axes3D"))
	assert.Equal(t, 1, rec.Count("Polyline3"))
}

// flatRenderer hides the 3-D capability of the wrapped renderer.
type flatRenderer struct {
	plotkit.Renderer
}

func TestDraw3DWithoutCapability(t *testing.T) {
	p := plotkit.NewPlot()
	p.Axes.Kind = plotkit.Axes3D
	p.Geoms = []*plotkit.Geometry{{
		Kind: plotkit.KindSurface,
		X:    plotkit.Values{1, 2},
		Y:    plotkit.Values{1, 2},
		Z:    plotkit.Values{1, 2, 3, 4},
	}}

	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(p)
	err := fg.Draw(flatRenderer{rendertest.New()})
	assert.Error(t, err)
}

func TestDrawVolumeFeedsColorbar(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)

	p := plotkit.NewPlot()
	p.Axes.Kind = plotkit.Axes3D
	p.Geoms = []*plotkit.Geometry{{
		Kind:  plotkit.KindVolume,
		X:     plotkit.Values{1, 2},
		Y:     plotkit.Values{1, 2},
		Z:     plotkit.Values{1, 2, 3, 4, 5, 6, 7, 8},
		Attrs: map[string]float64{"nx": 2, "ny": 2, "nz": 2},
	}}
	fg.SetCurrent(p)

	require.NoError(t, fg.Draw(rec))
	// the limits reported by the backend become the colorbar range
	require.False(t, p.Colorbar.IsEmpty())
	assert.Equal(t, 1.0, p.Colorbar.Range.Min)
	assert.Equal(t, 8.0, p.Colorbar.Range.Max)
}

func TestDrawCustomTickLabels(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	p := linePlot("")
	p.Geoms[0].X = plotkit.Values{1, 2}
	p.Geoms[0].Y = plotkit.Values{1, 2}
	p.SetXTickLabels([]string{"jan", "feb"})
	fg.SetCurrent(p)

	require.NoError(t, fg.Draw(rec))
	assert.Equal(t, 1, rec.Count("Axes2DLabeled"))

	// the recorder invokes the label closure at the origin tick;
	// x starts at 1 so the first fixed label appears
	found := false
	for _, op := range rec.Ops {
		if op.Name == "Text" && len(op.Args) == 3 && op.Args[2] == "jan" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFigureSave(t *testing.T) {
	rec := rendertest.New()
	fg := plotkit.NewFigure(0, 0)
	fg.SetCurrent(linePlot(""))

	fn := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, fg.Save(rec, fn))

	// unsupported format and missing extension surface as errors
	assert.Error(t, fg.Save(rec, filepath.Join(t.TempDir(), "out.png")))
	assert.Error(t, fg.Save(rec, filepath.Join(t.TempDir(), "noext")))
}
