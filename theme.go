// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds figure-level style defaults, loadable from a TOML file
// so scripts can share a house style without code changes.
type Theme struct {
	// FigureWidth and FigureHeight are the default canvas size in
	// abstract units; zero keeps the package defaults.
	FigureWidth  float64 `toml:"figure-width"`
	FigureHeight float64 `toml:"figure-height"`

	// Colormap is the backend colormap index.
	Colormap int `toml:"colormap"`

	// Scheme is the color scheme name: "light", "dark", or "" for
	// none.
	Scheme string `toml:"scheme"`

	// Grid enables grid lines on all plots.
	Grid bool `toml:"grid"`

	// Frame draws the plot frame; defaults to on.
	Frame *bool `toml:"frame"`

	// Background is a spec color letter for the plot background,
	// empty for none.
	Background string `toml:"background"`
}

// ReadTheme decodes a Theme from TOML.
func ReadTheme(r io.Reader) (*Theme, error) {
	th := &Theme{}
	if err := toml.NewDecoder(r).Decode(th); err != nil {
		return nil, err
	}
	return th, nil
}

// OpenTheme reads a Theme from the given TOML file.
func OpenTheme(filename string) (*Theme, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadTheme(bufio.NewReader(fp))
}

// WriteTheme encodes the theme as TOML.
func (th *Theme) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(th)
}

// Save writes the theme to the given TOML file.
func (th *Theme) Save(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := th.Write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// ApplyTheme installs the theme on the context: figure size on the
// current figure, style attributes on the current plot.
func (ctx *Context) ApplyTheme(th *Theme) error {
	fg := ctx.Figure()
	if th.FigureWidth > 0 {
		fg.Size.W = th.FigureWidth
	}
	if th.FigureHeight > 0 {
		fg.Size.H = th.FigureHeight
	}
	p := ctx.CurrentPlot()
	p.Attrs.Colormap = th.Colormap
	switch th.Scheme {
	case "":
	case "light":
		p.Attrs.Scheme = SchemeLight
	case "dark":
		p.Attrs.Scheme = SchemeDark
	default:
		return fmt.Errorf("plotkit: unsupported color scheme %q", th.Scheme)
	}
	if th.Frame != nil {
		p.Attrs.Frame = *th.Frame
	}
	if th.Background != "" {
		ls, err := ParseLineSpec(th.Background)
		if err != nil {
			return err
		}
		if ls.HasColor {
			p.Attrs.Background = ls.Color
		}
	}
	p.Attrs.Overrides.Grid.Set(th.Grid)
	p.UpdateAxes()
	return nil
}
