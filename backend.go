// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"image/color"
	"io"
)

// The graphics backend is an external collaborator: plotkit computes
// layout and orchestrates state and draw order, and the backend does
// all mark-making. These interfaces abstract its capabilities;
// backend failures propagate unchanged.

// TextMeasurer measures rendered text, a delegated backend capability
// used for legend layout. The returned extents are in normalized
// device coordinates at the given character height.
type TextMeasurer interface {
	TextExtent(s string, charHeight float64) (w, h float64)
}

// Renderer is the low-level graphics backend consumed by the draw
// orchestration. Coordinates passed to the primitives are in the
// window set by SetWindow; viewport coordinates are NDC.
type Renderer interface {
	TextMeasurer

	// Clear resets the canvas for a new frame.
	Clear()

	// Flush makes all drawing performed so far visible.
	Flush()

	// SetViewport sets the NDC box that the window maps onto.
	SetViewport(x0, x1, y0, y1 float64)

	// SetWindow sets the data-coordinate window.
	SetWindow(x0, x1, y0, y1 float64)

	// Viewport returns the current NDC viewport.
	Viewport() (x0, x1, y0, y1 float64)

	// Window returns the current data-coordinate window.
	Window() (x0, x1, y0, y1 float64)

	// SetScale sets the log/flip transform bits (the Scale* consts).
	SetScale(scale int) error

	// SetColormap selects the colormap by index.
	SetColormap(index int)

	// SetTransparency sets the global alpha in [0, 1].
	SetTransparency(alpha float64)

	// SetLineSpec sets line/marker/color state from a format spec
	// string such as "r-o".
	SetLineSpec(spec string)

	// SetCharHeight sets the text character height in NDC.
	SetCharHeight(h float64)

	// SetFillColor sets the fill color for FillArea and FillRect.
	SetFillColor(c color.Color)

	// Polyline strokes a connected line through the points.
	Polyline(x, y []float64)

	// Polymarker draws the current marker at each point.
	Polymarker(x, y []float64)

	// FillArea fills the polygon described by the points.
	FillArea(x, y []float64)

	// FillRect fills the axis-aligned rectangle.
	FillRect(x0, x1, y0, y1 float64)

	// CellArray blits an nx × ny grid of color indices into the
	// given rectangle.
	CellArray(x0, x1, y0, y1 float64, nx, ny int, colors []int)

	// Text renders a string at the given NDC position.
	Text(x, y float64, s string)

	// Axes2D draws the 2-D axes: tick steps, origin pair, major
	// counts and tick size (negative draws outward).
	Axes2D(xtick, ytick, xorg, yorg float64, majorX, majorY int, tickSize float64)

	// Grid2D draws 2-D grid lines at the major tick positions.
	Grid2D(xtick, ytick, xorg, yorg float64, majorX, majorY int)
}

// TickLabelFunc renders one tick label at the given NDC position;
// label is the backend's default text for value and may be replaced.
type TickLabelFunc func(x, y float64, label string, value float64)

// AxesLabeler is the optional custom tick label capability: Axes2D
// with per-tick label callbacks instead of the default numeric labels.
// Backends without it fall back to plain [Renderer.Axes2D].
type AxesLabeler interface {
	Axes2DLabeled(xtick, ytick, xorg, yorg float64, majorX, majorY int, tickSize float64, fx, fy TickLabelFunc)
}

// Renderer3D is the optional 3-D capability set of a backend.
// Drawing a 3-D geometry on a backend without it is a backend
// delegation failure surfaced to the caller.
type Renderer3D interface {
	// SetSpace3D sets the 3-D window and perspective rotation/tilt.
	SetSpace3D(zmin, zmax float64, rotation, tilt int)

	// SetCamera positions the camera from a 9-element
	// position/focus/up vector (scene mode).
	SetCamera(camera []float64)

	// Axes3D draws the 3-D axes box.
	Axes3D(xtick, ytick, ztick, xorg, yorg, zorg float64, majorX, majorY, majorZ int, tickSize float64)

	// Polyline3 strokes a 3-D polyline.
	Polyline3(x, y, z []float64)

	// Polymarker3 draws 3-D markers.
	Polymarker3(x, y, z []float64)

	// Surface renders a z matrix over the x/y grid; option selects
	// mesh vs filled vs colormapped shading.
	Surface(x, y, z []float64, option int)

	// Contour renders contour lines or bands of a z matrix at the
	// given h levels.
	Contour(x, y, h, z []float64, majorH int)

	// Volume renders volumetric data with the given dimensions,
	// returning the auto-computed color-scale limits.
	Volume(data []float64, nx, ny, nz int) (cmin, cmax float64)
}

// Surface option values for [Renderer3D.Surface].
const (
	SurfaceMesh = iota + 1
	SurfaceFilled
	SurfaceColored
	SurfaceCellArray
)

// Exporter is the optional save-to-file capability of a backend.
// The format is the lowercased file extension without the dot.
type Exporter interface {
	Export(w io.Writer, format string) error
}
