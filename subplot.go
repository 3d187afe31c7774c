// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "fmt"

// Subplot assigns a new current plot to the union bounding rectangle
// of the given 1-based, row-major grid cells (row 1 is the top row).
//
// With replace, existing plots are reconciled against the new
// rectangle: an exact match is reused and brought to front instead of
// creating a new plot, a partial overlap is removed entirely, and
// disjoint plots are left untouched. Without replace the new subplot
// is appended blindly; draw order then governs visible stacking.
func (fg *Figure) Subplot(rows, cols int, cells []int, replace bool) (*Plot, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("plotkit: invalid subplot grid %dx%d", rows, cols)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("plotkit: no subplot cells given")
	}
	rect := Box{}
	for i, cell := range cells {
		if cell < 1 || cell > rows*cols {
			return nil, fmt.Errorf("plotkit: subplot cell %d out of %dx%d grid", cell, rows, cols)
		}
		row := (cell-1)/cols + 1
		col := (cell-1)%cols + 1
		cb := NewBox(
			float64(col-1)/float64(cols), float64(col)/float64(cols),
			1-float64(row)/float64(rows), 1-float64(row-1)/float64(rows),
		)
		if i == 0 {
			rect = cb
		} else {
			rect.X.FitInRange(cb.X)
			rect.Y.FitInRange(cb.Y)
		}
	}

	if replace {
		for i, p := range fg.Plots {
			if p.Attrs.Subplot == rect {
				// exact slot match: bring to front and reuse
				fg.Plots = append(append(fg.Plots[:i:i], fg.Plots[i+1:]...), p)
				return p, nil
			}
		}
		kept := fg.Plots[:0]
		for _, p := range fg.Plots {
			if !p.Attrs.Subplot.Overlaps(rect) {
				kept = append(kept, p)
			}
		}
		fg.Plots = kept
	}

	p := NewPlot()
	p.Attrs.Subplot = rect
	fg.Plots = append(fg.Plots, p)
	return p, nil
}
