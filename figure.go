// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default canvas size for new figures, in abstract units.
const (
	DefaultFigureWidth  = 600
	DefaultFigureHeight = 450
)

// Figure is a collection of Plots plus a canvas size; the unit of
// display. Plots is never empty: a fresh Figure holds one empty Plot,
// and the last element is always the current plot.
type Figure struct {
	// Size is the canvas size in abstract units; its aspect ratio
	// biases the viewport computation for non-square canvases.
	Size Size

	// Plots are the composed plots, drawn in order.
	Plots []*Plot
}

// NewFigure returns a Figure with the given canvas size (zero or
// negative dimensions use the defaults) holding one empty Plot.
func NewFigure(w, h float64) *Figure {
	if w <= 0 {
		w = DefaultFigureWidth
	}
	if h <= 0 {
		h = DefaultFigureHeight
	}
	return &Figure{Size: Size{W: w, H: h}, Plots: []*Plot{NewPlot()}}
}

// Current returns the current plot, the last element of Plots.
func (fg *Figure) Current() *Plot {
	return fg.Plots[len(fg.Plots)-1]
}

// SetCurrent replaces the current plot wholesale.
func (fg *Figure) SetCurrent(p *Plot) {
	fg.Plots[len(fg.Plots)-1] = p
}

// Save draws the figure on the given renderer and writes it to
// filename, dispatching the output format on the file extension.
// Renderers without the [Exporter] capability or formats the backend
// rejects surface as errors.
func (fg *Figure) Save(r Renderer, filename string) error {
	exp, ok := r.(Exporter)
	if !ok {
		return fmt.Errorf("plotkit: renderer %T cannot export files", r)
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		return fmt.Errorf("plotkit: missing output extension in %q", filename)
	}
	if err := fg.Draw(r); err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := exp.Export(bw, format); err != nil {
		return err
	}
	return bw.Flush()
}
