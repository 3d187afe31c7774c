// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInfRange() minmax.F64 {
	var r minmax.F64
	r.SetInfinity()
	return r
}

func TestNewGeometriesSingleCoord(t *testing.T) {
	geoms, err := NewGeometries(KindLine, []float64{5, 6, 7})
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	// a lone coordinate is Y over integer X starting at 1
	assert.Equal(t, Values{1, 2, 3}, geoms[0].X)
	assert.Equal(t, Values{5, 6, 7}, geoms[0].Y)
}

func TestNewGeometriesSpec(t *testing.T) {
	geoms, err := NewGeometries(KindLine, []float64{1, 2}, []float64{3, 4}, "r-o")
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.Equal(t, "r-o", geoms[0].Spec)
}

func TestNewGeometriesColumns(t *testing.T) {
	x := []float64{1, 2, 3}
	ys := Columns{{1, 2, 3}, {4, 5, 6}}
	geoms, err := NewGeometries(KindLine, x, ys)
	require.NoError(t, err)
	require.Len(t, geoms, 2)
	// the shared x vector is recycled across series
	assert.Equal(t, Values(x), geoms[0].X)
	assert.Equal(t, Values(x), geoms[1].X)
	assert.Equal(t, Values{4, 5, 6}, geoms[1].Y)

	// column counts must agree
	_, err = NewGeometries(KindLine, Columns{{1}, {2}}, Columns{{1}, {2}, {3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestNewGeometriesComplex(t *testing.T) {
	geoms, err := NewGeometries(KindLine, []complex128{1 + 2i, 3 + 4i})
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.Equal(t, Values{1, 3}, geoms[0].X)
	assert.Equal(t, Values{2, 4}, geoms[0].Y)
}

func TestNewGeometriesFunc(t *testing.T) {
	sq := func(x float64) float64 { return x * x }
	geoms, err := NewGeometries(KindLine, []float64{1, 2, 3}, sq)
	require.NoError(t, err)
	assert.Equal(t, Values{1, 4, 9}, geoms[0].Y)

	// a function with nothing to apply to is an error
	_, err = NewGeometries(KindLine, sq)
	assert.Error(t, err)
}

func TestNewGeometriesScatterSingleSeries(t *testing.T) {
	_, err := NewGeometries(KindScatter, []float64{1, 2}, Columns{{1, 2}, {3, 4}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadShape)

	geoms, err := NewGeometries(KindScatter,
		[]float64{1, 2}, []float64{3, 4}, []float64{5, 6}, []float64{7, 8})
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.Equal(t, Values{5, 6}, geoms[0].Z)
	assert.Equal(t, Values{7, 8}, geoms[0].C)
}

func TestNewGeometriesLengthMismatch(t *testing.T) {
	_, err := NewGeometries(KindLine, []float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestNewGeometriesFieldShape(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2}
	z := []float64{1, 2, 3, 4, 5, 6}
	geoms, err := NewGeometries(KindHeatmap, x, y, z)
	require.NoError(t, err)
	assert.Len(t, geoms[0].Z, 6)

	_, err = NewGeometries(KindHeatmap, x, y, []float64{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestNewGeometriesNoData(t *testing.T) {
	_, err := NewGeometries(KindLine)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewGeometriesInfinite(t *testing.T) {
	_, err := NewGeometries(KindLine, []float64{1, 2}, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, ErrInfinity)

	// NaN passes validation and is skipped at range time
	geoms, err := NewGeometries(KindLine, []float64{1, 2}, []float64{1, math.NaN()})
	require.NoError(t, err)
	assert.Len(t, geoms, 1)
}

func TestGeometryAttrs(t *testing.T) {
	g := &Geometry{Kind: KindStem, Attrs: map[string]float64{"baseline": 2}}
	assert.Equal(t, 2.0, g.Attr("baseline", 0))
	assert.Equal(t, 7.0, g.Attr("missing", 7))

	ng := g.WithAttrs(map[string]float64{"linewidth": 3})
	assert.Equal(t, 2.0, ng.Attr("baseline", 0))
	assert.Equal(t, 3.0, ng.Attr("linewidth", 0))
	// the receiver is untouched
	_, ok := g.Attrs["linewidth"]
	assert.False(t, ok)
}

func TestGeometryColorChannel(t *testing.T) {
	g := &Geometry{Z: Values{1}, C: Values{2}}
	assert.Equal(t, Values{2}, g.ColorChannel())
	g.C = nil
	assert.Equal(t, Values{1}, g.ColorChannel())
}

func TestGeomKindPredicates(t *testing.T) {
	assert.True(t, KindLine.HasLegendGuide())
	assert.True(t, KindScatter.HasLegendGuide())
	assert.True(t, KindBar.HasLegendGuide())
	assert.False(t, KindHeatmap.HasLegendGuide())
	assert.False(t, KindSurface.HasLegendGuide())

	assert.True(t, KindSurface.Is3D())
	assert.False(t, KindHeatmap.Is3D())

	assert.Equal(t, "contourf", KindContourFill.String())
	assert.Equal(t, "user", (KindUser + 3).String())
}

func TestRangeSkipsNaN(t *testing.T) {
	vals := Values{1, math.NaN(), 5}
	rng := newInfRange()
	Range(vals, &rng)
	assert.Equal(t, 1.0, rng.Min)
	assert.Equal(t, 5.0, rng.Max)
}

func TestCopyValues(t *testing.T) {
	got, err := CopyValues(Values{1, math.NaN(), 2})
	require.NoError(t, err)
	assert.Equal(t, Values{1, 2}, got)

	_, err = CopyValues(Values{1, math.Inf(1)})
	assert.ErrorIs(t, err, ErrInfinity)

	_, err = CopyValues(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
