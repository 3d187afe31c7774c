// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
)

// LineSpec is the parsed form of a format-spec string such as "r-o":
// at most one color letter, one line style, and one marker, in any
// order. The raw string is what travels to the renderer; ParseLineSpec
// exists so the front end can validate specs early and so backends can
// share one parser.
type LineSpec struct {
	// Style is the line style token: "-", "--", ":", "-.", or ""
	// when the spec requests markers only.
	Style string

	// Marker is the marker letter, 0 for none.
	Marker byte

	// Color is the spec color; HasColor distinguishes an explicit
	// black ("k") from no color at all.
	Color    color.RGBA
	HasColor bool
}

var specColors = map[byte]color.RGBA{
	'r': colors.Red,
	'g': colors.Green,
	'b': colors.Blue,
	'c': colors.Cyan,
	'm': colors.Magenta,
	'y': colors.Yellow,
	'k': colors.Black,
	'w': colors.White,
}

const specMarkers = "o+*.xsd^v><ph"

// ParseLineSpec parses a format-spec string. Empty input yields the
// zero LineSpec, meaning style defaults apply. Unknown characters and
// repeated components are errors.
func ParseLineSpec(s string) (LineSpec, error) {
	var ls LineSpec
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '-' || ch == ':':
			if ls.Style != "" {
				return LineSpec{}, fmt.Errorf("plotkit: duplicate line style in spec %q", s)
			}
			if ch == ':' {
				ls.Style = ":"
				continue
			}
			// "-", "--" and "-." are distinct styles
			if i+1 < len(s) && (s[i+1] == '-' || s[i+1] == '.') {
				ls.Style = s[i : i+2]
				i++
			} else {
				ls.Style = "-"
			}
		case strings.IndexByte(specMarkers, ch) >= 0:
			if ls.Marker != 0 {
				return LineSpec{}, fmt.Errorf("plotkit: duplicate marker in spec %q", s)
			}
			ls.Marker = ch
		default:
			c, ok := specColors[ch]
			if !ok {
				return LineSpec{}, fmt.Errorf("plotkit: unknown character %q in spec %q", ch, s)
			}
			if ls.HasColor {
				return LineSpec{}, fmt.Errorf("plotkit: duplicate color in spec %q", s)
			}
			ls.Color = c
			ls.HasColor = true
		}
	}
	return ls, nil
}
