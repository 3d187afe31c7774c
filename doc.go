// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotkit is a high-level plotting façade: it assembles a small
// set of composable layout structures (Viewport, Geometry, Axes, Legend,
// Colorbar, Plot, Figure) and delegates all mark-making to an external
// [Renderer] backend. The package computes nested normalized-device
// coordinate boxes, axis ranges and ticks, legend and colorbar geometry,
// and orchestrates draw order and state across nested components,
// including hold (layering), subplot grids with overlap resolution, and
// attribute inheritance.
//
// The canonical entry points are the plotting functions on [Context]
// (Plot, Scatter, Bar, Histogram, ...), which build geometries from
// user data, recompute axes, and compose the result into the current
// figure. A package-level default context supports script-style use;
// tests and embedders construct their own with [NewContext].
package plotkit
