// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides an op-recording renderer for testing
// draw orchestration without a graphics backend. Every backend call is
// appended to an op list that tests assert on; text metrics come from
// a fixed-width bitmap font so layout is deterministic.
package rendertest

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/plotkit/plotkit"
)

// Op is one recorded backend call.
type Op struct {
	Name string
	Args []any
}

// Recorder records all backend calls in order. It implements the full
// renderer surface including the 3-D and export capabilities.
type Recorder struct {
	Ops []Op

	viewport [4]float64
	window   [4]float64
	face     *basicfont.Face
}

// New returns an empty Recorder with a unit window.
func New() *Recorder {
	return &Recorder{
		viewport: [4]float64{0, 1, 0, 1},
		window:   [4]float64{0, 1, 0, 1},
		face:     basicfont.Face7x13,
	}
}

func (rc *Recorder) record(name string, args ...any) {
	rc.Ops = append(rc.Ops, Op{Name: name, Args: args})
}

// Names returns the recorded op names in call order.
func (rc *Recorder) Names() []string {
	names := make([]string, len(rc.Ops))
	for i, op := range rc.Ops {
		names[i] = op.Name
	}
	return names
}

// Count returns how many ops with the given name were recorded.
func (rc *Recorder) Count(name string) int {
	n := 0
	for _, op := range rc.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Index returns the position of the first op with the given name, -1
// if absent.
func (rc *Recorder) Index(name string) int {
	for i, op := range rc.Ops {
		if op.Name == name {
			return i
		}
	}
	return -1
}

// Reset discards all recorded ops.
func (rc *Recorder) Reset() {
	rc.Ops = nil
}

// TextExtent measures s with the fixed-width test font, scaled so one
// glyph row spans charHeight.
func (rc *Recorder) TextExtent(s string, charHeight float64) (w, h float64) {
	adv := font.MeasureString(rc.face, s).Ceil()
	scale := charHeight / float64(rc.face.Metrics().Height.Ceil())
	return float64(adv) * scale, charHeight
}

func (rc *Recorder) Clear() { rc.record("Clear") }

func (rc *Recorder) Flush() { rc.record("Flush") }

func (rc *Recorder) SetViewport(x0, x1, y0, y1 float64) {
	rc.viewport = [4]float64{x0, x1, y0, y1}
	rc.record("SetViewport", x0, x1, y0, y1)
}

func (rc *Recorder) SetWindow(x0, x1, y0, y1 float64) {
	rc.window = [4]float64{x0, x1, y0, y1}
	rc.record("SetWindow", x0, x1, y0, y1)
}

func (rc *Recorder) Viewport() (x0, x1, y0, y1 float64) {
	return rc.viewport[0], rc.viewport[1], rc.viewport[2], rc.viewport[3]
}

func (rc *Recorder) Window() (x0, x1, y0, y1 float64) {
	return rc.window[0], rc.window[1], rc.window[2], rc.window[3]
}

func (rc *Recorder) SetScale(scale int) error {
	if scale < 0 {
		return fmt.Errorf("rendertest: invalid scale %d", scale)
	}
	rc.record("SetScale", scale)
	return nil
}

func (rc *Recorder) SetColormap(index int) { rc.record("SetColormap", index) }

func (rc *Recorder) SetTransparency(alpha float64) { rc.record("SetTransparency", alpha) }

func (rc *Recorder) SetLineSpec(spec string) { rc.record("SetLineSpec", spec) }

func (rc *Recorder) SetCharHeight(h float64) { rc.record("SetCharHeight", h) }

func (rc *Recorder) SetFillColor(c color.Color) { rc.record("SetFillColor", c) }

func (rc *Recorder) Polyline(x, y []float64) { rc.record("Polyline", x, y) }

func (rc *Recorder) Polymarker(x, y []float64) { rc.record("Polymarker", x, y) }

func (rc *Recorder) FillArea(x, y []float64) { rc.record("FillArea", x, y) }

func (rc *Recorder) FillRect(x0, x1, y0, y1 float64) {
	rc.record("FillRect", x0, x1, y0, y1)
}

func (rc *Recorder) CellArray(x0, x1, y0, y1 float64, nx, ny int, colors []int) {
	rc.record("CellArray", x0, x1, y0, y1, nx, ny, colors)
}

func (rc *Recorder) Text(x, y float64, s string) {
	rc.record("Text", x, y, s)
}

func (rc *Recorder) Axes2D(xtick, ytick, xorg, yorg float64, majorX, majorY int, tickSize float64) {
	rc.record("Axes2D", xtick, ytick, xorg, yorg, majorX, majorY, tickSize)
}

func (rc *Recorder) Grid2D(xtick, ytick, xorg, yorg float64, majorX, majorY int) {
	rc.record("Grid2D", xtick, ytick, xorg, yorg, majorX, majorY)
}

// Axes2DLabeled records the labeled axes call and invokes each label
// callback once at the axis origin, so tests can observe the labels a
// real backend would render along the full axis.
func (rc *Recorder) Axes2DLabeled(xtick, ytick, xorg, yorg float64, majorX, majorY int, tickSize float64, fx, fy plotkit.TickLabelFunc) {
	rc.record("Axes2DLabeled", xtick, ytick, xorg, yorg, majorX, majorY, tickSize)
	if fx != nil {
		fx(xorg, yorg, fmt.Sprintf("%g", xorg), xorg)
	}
	if fy != nil {
		fy(xorg, yorg, fmt.Sprintf("%g", yorg), yorg)
	}
}

func (rc *Recorder) SetSpace3D(zmin, zmax float64, rotation, tilt int) {
	rc.record("SetSpace3D", zmin, zmax, rotation, tilt)
}

func (rc *Recorder) SetCamera(camera []float64) {
	rc.record("SetCamera", camera)
}

func (rc *Recorder) Axes3D(xtick, ytick, ztick, xorg, yorg, zorg float64, majorX, majorY, majorZ int, tickSize float64) {
	rc.record("Axes3D", xtick, ytick, ztick, xorg, yorg, zorg, majorX, majorY, majorZ, tickSize)
}

func (rc *Recorder) Polyline3(x, y, z []float64) { rc.record("Polyline3", x, y, z) }

func (rc *Recorder) Polymarker3(x, y, z []float64) { rc.record("Polymarker3", x, y, z) }

func (rc *Recorder) Surface(x, y, z []float64, option int) {
	rc.record("Surface", x, y, z, option)
}

func (rc *Recorder) Contour(x, y, h, z []float64, majorH int) {
	rc.record("Contour", x, y, h, z, majorH)
}

func (rc *Recorder) Volume(data []float64, nx, ny, nz int) (cmin, cmax float64) {
	rc.record("Volume", data, nx, ny, nz)
	cmin, cmax = 0, 0
	for i, v := range data {
		if i == 0 || v < cmin {
			cmin = v
		}
		if i == 0 || v > cmax {
			cmax = v
		}
	}
	return cmin, cmax
}

// Export writes a plain-text op dump; the only supported format is
// "txt".
func (rc *Recorder) Export(w io.Writer, format string) error {
	if format != "txt" {
		return fmt.Errorf("rendertest: unsupported export format %q", format)
	}
	for _, op := range rc.Ops {
		if _, err := fmt.Fprintf(w, "%s %v\n", op.Name, op.Args); err != nil {
			return err
		}
	}
	return nil
}
