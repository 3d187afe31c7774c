// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/base/option"
	"cogentcore.org/core/colors"
)

// LegendLocation is the placement slot of a plot legend.
type LegendLocation int32

const (
	// LegendUpperRight places the legend inside the frame, top right.
	LegendUpperRight LegendLocation = iota

	// LegendUpperLeft places the legend inside the frame, top left.
	LegendUpperLeft

	// LegendLowerLeft places the legend inside the frame, bottom left.
	LegendLowerLeft

	// LegendLowerRight places the legend inside the frame, bottom right.
	LegendLowerRight

	// LegendOutsideRight reserves extra right margin beside the frame.
	LegendOutsideRight

	// LegendNone suppresses legend drawing.
	LegendNone
)

var legendLocationNames = map[string]LegendLocation{
	"upper right":   LegendUpperRight,
	"upper left":    LegendUpperLeft,
	"lower left":    LegendLowerLeft,
	"lower right":   LegendLowerRight,
	"outside right": LegendOutsideRight,
	"none":          LegendNone,
}

func (ll LegendLocation) String() string {
	for nm, v := range legendLocationNames {
		if v == ll {
			return nm
		}
	}
	return "invalid"
}

// LegendLocationFromString parses a legend location name, returning
// an invalid-configuration error for unknown names.
func LegendLocationFromString(s string) (LegendLocation, error) {
	if ll, ok := legendLocationNames[s]; ok {
		return ll, nil
	}
	return 0, fmt.Errorf("plotkit: unsupported legend location %q", s)
}

// ColorScheme selects the overall plot color scheme.
type ColorScheme int32

const (
	SchemeNone ColorScheme = iota
	SchemeLight
	SchemeDark
)

// Attributes is the closed, typed attribute set of a plot, with a
// small validated escape hatch ([Attributes.Set] / Extra) for
// backend-passthrough options.
type Attributes struct {
	Title  string
	XLabel string
	YLabel string
	ZLabel string

	// Hold appends new geometries to the current plot instead of
	// replacing it.
	Hold bool

	// Frame draws the axes frame around the data box.
	Frame bool

	// LegendLoc is the legend placement slot.
	LegendLoc LegendLocation

	// Colorbar enables colorbar drawing.
	Colorbar bool

	// AspectRatio fixes the inner frame width/height ratio; 0 is
	// unconstrained.
	AspectRatio float64

	// Alpha is the global transparency in [0, 1].
	Alpha float64

	// Background is the canvas background fill; nil disables it.
	Background color.Color

	// Colormap is the backend colormap index.
	Colormap int

	// Scheme is the overall color scheme.
	Scheme ColorScheme

	// AxesOnTop re-overlays the axes after the geometries.
	AxesOnTop bool

	// MaxLegendRows wraps the legend into columns past this row
	// count; 0 is a single unbounded column.
	MaxLegendRows int

	// Subplot is the requested subplot rectangle, normalized to the
	// figure.
	Subplot Box

	// Overrides carries the user axis attributes for [BuildAxes].
	Overrides AxesOverrides

	// Extra holds unvalidated backend-passthrough options.
	Extra metadata.Data
}

func (at *Attributes) Defaults() {
	at.Frame = true
	at.Alpha = 1
	at.Background = colors.White
	at.Subplot = NewBox(0, 1, 0, 1)
}

// limOf converts a (min, max) pair where either entry may be nil into
// a LimitOverride.
func limOf(min, max *float64) LimitOverride {
	var lo LimitOverride
	if min != nil {
		lo.Min.Set(*min)
	}
	if max != nil {
		lo.Max.Set(*max)
	}
	return lo
}

// Set applies a string-keyed attribute value, validating the key
// against the recognized attribute set and the value against the
// expected type. Unrecognized keys are an invalid-configuration
// error; use Extra for backend passthrough.
func (at *Attributes) Set(key string, val any) error {
	switch key {
	case "title":
		return setString(key, val, &at.Title)
	case "xlabel":
		return setString(key, val, &at.XLabel)
	case "ylabel":
		return setString(key, val, &at.YLabel)
	case "zlabel":
		return setString(key, val, &at.ZLabel)
	case "xlim":
		return setLim(key, val, &at.Overrides.XLim)
	case "ylim":
		return setLim(key, val, &at.Overrides.YLim)
	case "zlim":
		return setLim(key, val, &at.Overrides.ZLim)
	case "clim":
		return setLim(key, val, &at.Overrides.CLim)
	case "xlog":
		return setBool(key, val, &at.Overrides.XLog)
	case "ylog":
		return setBool(key, val, &at.Overrides.YLog)
	case "zlog":
		return setBool(key, val, &at.Overrides.ZLog)
	case "xflip":
		return setBool(key, val, &at.Overrides.XFlip)
	case "yflip":
		return setBool(key, val, &at.Overrides.YFlip)
	case "zflip":
		return setBool(key, val, &at.Overrides.ZFlip)
	case "xticks":
		return setTicks(key, val, &at.Overrides.XTicks)
	case "yticks":
		return setTicks(key, val, &at.Overrides.YTicks)
	case "zticks":
		return setTicks(key, val, &at.Overrides.ZTicks)
	case "xticklabels":
		return setStrings(key, val, &at.Overrides.XTickLabels)
	case "yticklabels":
		return setStrings(key, val, &at.Overrides.YTickLabels)
	case "grid":
		b := false
		if err := setBool(key, val, &b); err != nil {
			return err
		}
		at.Overrides.Grid.Set(b)
		return nil
	case "legend":
		s, ok := val.(string)
		if !ok {
			return badAttrType(key, val, "string")
		}
		ll, err := LegendLocationFromString(s)
		if err != nil {
			return err
		}
		at.LegendLoc = ll
		return nil
	case "colorbar":
		return setBool(key, val, &at.Colorbar)
	case "aspectratio":
		return setFloat(key, val, &at.AspectRatio)
	case "alpha":
		return setFloat(key, val, &at.Alpha)
	case "hold":
		return setBool(key, val, &at.Hold)
	case "background":
		c, ok := val.(color.Color)
		if !ok {
			return badAttrType(key, val, "color.Color")
		}
		at.Background = c
		return nil
	case "colormap":
		return setInt(key, val, &at.Colormap)
	case "scheme":
		i := 0
		if err := setInt(key, val, &i); err != nil {
			return err
		}
		at.Scheme = ColorScheme(i)
		return nil
	case "rotation":
		return setIntOption(key, val, &at.Overrides.Rotation)
	case "tilt":
		return setIntOption(key, val, &at.Overrides.Tilt)
	}
	return fmt.Errorf("plotkit: unrecognized attribute %q", key)
}

func badAttrType(key string, val any, want string) error {
	return fmt.Errorf("plotkit: attribute %q requires %s, got %T", key, want, val)
}

func setString(key string, val any, dst *string) error {
	s, ok := val.(string)
	if !ok {
		return badAttrType(key, val, "string")
	}
	*dst = s
	return nil
}

func setBool(key string, val any, dst *bool) error {
	b, ok := val.(bool)
	if !ok {
		return badAttrType(key, val, "bool")
	}
	*dst = b
	return nil
}

func setFloat(key string, val any, dst *float64) error {
	switch v := val.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return badAttrType(key, val, "float64")
	}
	return nil
}

func setInt(key string, val any, dst *int) error {
	i, ok := val.(int)
	if !ok {
		return badAttrType(key, val, "int")
	}
	*dst = i
	return nil
}

func setIntOption(key string, val any, dst *option.Option[int]) error {
	i := 0
	if err := setInt(key, val, &i); err != nil {
		return err
	}
	dst.Set(i)
	return nil
}

func setLim(key string, val any, dst *LimitOverride) error {
	switch v := val.(type) {
	case nil:
		*dst = LimitOverride{}
	case [2]float64:
		*dst = limOf(&v[0], &v[1])
	case [2]*float64:
		*dst = limOf(v[0], v[1])
	default:
		return badAttrType(key, val, "[2]float64 or [2]*float64")
	}
	return nil
}

func setTicks(key string, val any, dst *option.Option[TickSpec]) error {
	ts, ok := val.(TickSpec)
	if !ok {
		return badAttrType(key, val, "TickSpec")
	}
	dst.Set(ts)
	return nil
}

func setStrings(key string, val any, dst *[]string) error {
	ss, ok := val.([]string)
	if !ok {
		return badAttrType(key, val, "[]string")
	}
	*dst = ss
	return nil
}
