// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "math"

// Legend layout constants, in NDC fractions.
const (
	// legendItemGap is the fixed vertical gap allotted per item.
	legendItemGap = 0.03

	// legendColumnGap separates wrapped columns.
	legendColumnGap = 0.02

	// legendGuideWidth is the width reserved for the guide glyph
	// (line sample, bar swatch) left of each label.
	legendGuideWidth = 0.08

	// legendCharHeightFrac scales the label character height from
	// the reference frame diagonal.
	legendCharHeightFrac = 0.018

	// legendMinCharHeight is the smallest usable character height.
	legendMinCharHeight = 0.012
)

// Cursor is the top-left position of one legend item, relative to the
// legend origin, with Y measured downward.
type Cursor struct {
	X, Y float64
}

// Legend is the computed legend frame size and per-item cursor
// positions. The zero value (Size (0,0), no cursors) is the canonical
// "no legend" sentinel.
type Legend struct {
	Size    Size
	Cursors []Cursor
}

// IsEmpty reports whether the legend is the empty sentinel.
func (lg *Legend) IsEmpty() bool {
	return lg == nil || (lg.Size == Size{} && len(lg.Cursors) == 0)
}

// LegendCharHeight returns the label character height derived from
// the reference frame diagonal.
func LegendCharHeight(frame Box) float64 {
	return math.Max(legendCharHeightFrac*frame.Diag(), legendMinCharHeight)
}

// BuildLegend computes legend geometry for the labeled subset of the
// geometry list. Only geometries with a non-empty label and a kind
// that supports a legend guide glyph participate. Items are laid out
// top to bottom; when the running row count exceeds maxRows a new
// column is started to the right. maxRows <= 0 means a single
// unbounded column. Text measurement is delegated to the backend.
func BuildLegend(geoms []*Geometry, frame Box, tm TextMeasurer, maxRows int) *Legend {
	ch := LegendCharHeight(frame)
	lg := &Legend{}
	x, y := 0.0, 0.0
	colWidth := 0.0
	totalHeight := 0.0
	rows := 0
	for _, g := range geoms {
		if g.Label == "" || !g.Kind.HasLegendGuide() {
			continue
		}
		if maxRows > 0 && rows >= maxRows {
			x += colWidth + legendColumnGap
			colWidth = 0
			y = 0
			rows = 0
		}
		tw, th := tm.TextExtent(g.Label, ch)
		itemHeight := math.Max(th-legendItemGap, 0) + legendItemGap
		lg.Cursors = append(lg.Cursors, Cursor{X: x, Y: y})
		y += itemHeight
		rows++
		colWidth = math.Max(colWidth, legendGuideWidth+tw)
		totalHeight = math.Max(totalHeight, y)
	}
	if len(lg.Cursors) == 0 {
		return &Legend{}
	}
	lg.Size = Size{W: x + colWidth, H: totalHeight}
	return lg
}
