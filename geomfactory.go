// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// geometry factory: normalizes heterogeneous user input shapes into
// one or more parallel [Geometry] series.

// ErrBadShape indicates inconsistent coordinate lengths or column
// counts in factory input.
var ErrBadShape = errors.New("plotkit: inconsistent data shapes")

// Columns is a coordinate given as multiple parallel series: each
// inner slice is one column, producing one Geometry per column.
type Columns [][]float64

// NewGeometries builds geometries of the given kind from heterogeneous
// coordinate arguments. Accepted argument forms, in positional order
// X, Y, Z, C:
//   - []float64 or Values: one coordinate shared by all series.
//   - [Columns]: one coordinate per series; all Columns arguments must
//     agree on the number of columns, and plain slices are recycled
//     across series.
//   - []complex128: expands to two coordinates (real, imag).
//   - func(float64) float64: applied elementwise to the previous
//     coordinate to produce the next one.
//   - a trailing string: the format spec for all resulting geometries.
//
// A single coordinate argument is treated as Y with X = 1..n.
// KindScatter never splits columns and yields exactly one Geometry.
// Mismatched lengths return a descriptive error wrapping [ErrBadShape].
func NewGeometries(kind GeomKind, args ...any) ([]*Geometry, error) {
	spec := ""
	var coords []Columns
	for _, a := range args {
		switch v := a.(type) {
		case string:
			spec = v
		case []float64:
			coords = append(coords, Columns{v})
		case Values:
			coords = append(coords, Columns{v})
		case []int:
			fs := make([]float64, len(v))
			for i, iv := range v {
				fs[i] = float64(iv)
			}
			coords = append(coords, Columns{fs})
		case Columns:
			if len(v) == 0 {
				return nil, fmt.Errorf("%w: empty column set", ErrBadShape)
			}
			coords = append(coords, v)
		case []complex128:
			re := make([]float64, len(v))
			im := make([]float64, len(v))
			for i, c := range v {
				re[i] = real(c)
				im[i] = imag(c)
			}
			coords = append(coords, Columns{re}, Columns{im})
		case func(float64) float64:
			if len(coords) == 0 {
				return nil, errors.New("plotkit: function argument requires a preceding coordinate")
			}
			prev := coords[len(coords)-1]
			next := make(Columns, len(prev))
			for ci, col := range prev {
				out := make([]float64, len(col))
				for i, x := range col {
					out[i] = v(x)
				}
				next[ci] = out
			}
			coords = append(coords, next)
		default:
			return nil, fmt.Errorf("plotkit: unsupported argument type %T", a)
		}
	}
	if len(coords) == 0 {
		return nil, ErrNoData
	}
	if len(coords) > 4 {
		return nil, fmt.Errorf("%w: more than four coordinates", ErrBadShape)
	}

	// a lone coordinate is Y over integer X
	if len(coords) == 1 {
		n := 0
		for _, col := range coords[0] {
			if len(col) > n {
				n = len(col)
			}
		}
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i + 1)
		}
		coords = append([]Columns{{xs}}, coords[0])
	}

	nser := 1
	for _, co := range coords {
		if len(co) == 1 {
			continue
		}
		if nser != 1 && len(co) != nser {
			return nil, fmt.Errorf("%w: %d vs %d columns", ErrBadShape, nser, len(co))
		}
		nser = len(co)
	}
	if kind == KindScatter && nser != 1 {
		return nil, fmt.Errorf("%w: scatter accepts single-column coordinates only", ErrBadShape)
	}

	geoms := make([]*Geometry, nser)
	for s := range geoms {
		g := &Geometry{Kind: kind, Spec: spec}
		chans := []*Values{&g.X, &g.Y, &g.Z, &g.C}
		for ci, co := range coords {
			col := co[0] // recycle shared vectors
			if len(co) > 1 {
				col = co[s]
			}
			*chans[ci] = Values(col)
		}
		if err := g.checkLengths(); err != nil {
			return nil, err
		}
		if err := g.checkFinite(); err != nil {
			return nil, err
		}
		geoms[s] = g
	}
	return geoms, nil
}

// checkLengths validates that X and Y agree and that any Z / C
// channels match them. Field kinds carry a len(X)*len(Y) matrix in Z.
func (g *Geometry) checkLengths() error {
	if g.Kind.isField() {
		if len(g.Z) != len(g.X)*len(g.Y) {
			return fmt.Errorf("%w: z has %d values, expected %d x %d", ErrBadShape, len(g.Z), len(g.X), len(g.Y))
		}
		return nil
	}
	n := len(g.X)
	if len(g.Y) != n {
		return fmt.Errorf("%w: x has %d values, y has %d", ErrBadShape, n, len(g.Y))
	}
	if len(g.Z) != 0 && len(g.Z) != n {
		return fmt.Errorf("%w: z has %d values, expected %d", ErrBadShape, len(g.Z), n)
	}
	if len(g.C) != 0 && len(g.C) != n {
		return fmt.Errorf("%w: c has %d values, expected %d", ErrBadShape, len(g.C), n)
	}
	return nil
}

// checkFinite rejects infinite values in any populated channel, via
// [CheckFloats]; NaN is allowed and skipped at range time.
func (g *Geometry) checkFinite() error {
	for _, ch := range []Values{g.X, g.Y, g.Z, g.C} {
		if len(ch) == 0 {
			continue
		}
		if err := CheckFloats(ch...); err != nil {
			return err
		}
	}
	return nil
}

// isField is true for kinds whose Z holds a len(X)*len(Y) matrix
// rather than a per-point channel.
func (k GeomKind) isField() bool {
	switch k {
	case KindHeatmap, KindContour, KindContourFill, KindWireframe, KindSurface, KindVolume:
		return true
	}
	return false
}
