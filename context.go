// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "cogentcore.org/core/base/errors"

// Context owns the mutable "current figure" state and the renderer it
// draws on. It is intended for single-threaded interactive or
// scripting use; callers must serialize access externally when
// sharing a Context across goroutines. Tests and embedders construct
// their own Context; the package-level [Default] context supports
// script-style use.
type Context struct {
	rend Renderer
	fig  *Figure
}

// NewContext returns a Context drawing on the given renderer, which
// may be nil for layout-only use.
func NewContext(r Renderer) *Context {
	return &Context{rend: r}
}

// Renderer returns the context renderer, nil if none set.
func (ctx *Context) Renderer() Renderer {
	return ctx.rend
}

// SetRenderer sets the renderer to draw on.
func (ctx *Context) SetRenderer(r Renderer) {
	ctx.rend = r
}

// Figure returns the current figure, creating a default-sized one on
// first access.
func (ctx *Context) Figure() *Figure {
	if ctx.fig == nil {
		ctx.fig = NewFigure(0, 0)
	}
	return ctx.fig
}

// SetFigure replaces the current figure wholesale.
func (ctx *Context) SetFigure(fg *Figure) *Figure {
	ctx.fig = fg
	return fg
}

// NewFigure constructs a figure of the given canvas size and makes it
// current.
func (ctx *Context) NewFigure(w, h float64) *Figure {
	return ctx.SetFigure(NewFigure(w, h))
}

// CurrentPlot returns the current plot of the current figure.
func (ctx *Context) CurrentPlot() *Plot {
	return ctx.Figure().Current()
}

// Subplot selects the union of the given 1-based row-major grid cells
// as the current plot, replacing overlapping plots (see
// [Figure.Subplot]).
func (ctx *Context) Subplot(rows, cols int, cells ...int) (*Plot, error) {
	return ctx.Figure().Subplot(rows, cols, cells, true)
}

// Hold sets hold mode on the current plot: subsequent plotting calls
// layer geometries onto it instead of replacing it.
func (ctx *Context) Hold(on bool) {
	ctx.CurrentPlot().SetHold(on)
}

// Set applies a string-keyed attribute to the current plot,
// validating key and value, and recomputes its axes. This is the
// figure-scoped variant of the typed [Plot] setters.
func (ctx *Context) Set(key string, val any) error {
	p := ctx.CurrentPlot()
	if err := p.Attrs.Set(key, val); err != nil {
		return err
	}
	p.UpdateAxes()
	return nil
}

// SetTitle sets the current plot title.
func (ctx *Context) SetTitle(s string) {
	ctx.CurrentPlot().SetTitle(s)
}

// SetXLabel sets the current plot X axis label.
func (ctx *Context) SetXLabel(s string) {
	ctx.CurrentPlot().SetXLabel(s)
}

// SetYLabel sets the current plot Y axis label.
func (ctx *Context) SetYLabel(s string) {
	ctx.CurrentPlot().SetYLabel(s)
}

// Show draws the current figure on the context renderer.
func (ctx *Context) Show() error {
	if ctx.rend == nil {
		return errors.New("plotkit: no renderer set on context")
	}
	return ctx.Figure().Draw(ctx.rend)
}

// Save draws the current figure and writes it to filename; the
// format is dispatched on the file extension (see [Figure.Save]).
func (ctx *Context) Save(filename string) error {
	if ctx.rend == nil {
		return errors.New("plotkit: no renderer set on context")
	}
	return ctx.Figure().Save(ctx.rend, filename)
}

// std is the process-wide default context, for script-style use with
// no synchronization; see the [Context] concurrency note.
var std = NewContext(nil)

// Default returns the package-level default context.
func Default() *Context {
	return std
}
