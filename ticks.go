// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"
	"strconv"
)

// Tick computation: nice step sizes and attractive limit rounding for
// numeric ranges. These are layout-side computations; the renderer
// only ever receives the resulting origins, steps and major counts.

// TickStep returns a "nice" tick step for the range [amin, amax]:
// a power of ten scaled to 1, 2, 5 or 10 sub-units depending on how
// many decades the range spans. Returns 0 for an empty range.
func TickStep(amin, amax float64) float64 {
	if amax <= amin {
		return 0
	}
	exponent := math.Floor(math.Log10(amax - amin))
	factor := math.Pow(10, exponent)
	switch int((amax - amin) / factor) {
	case 1:
		return 0.1 * factor
	case 2:
		return 0.2 * factor
	case 3, 4:
		return 0.5 * factor
	default:
		return factor
	}
}

// AdjustLimits rounds the range outward to tick-aligned attractive
// bounds: the lower bound down and the upper bound up to a multiple of
// [TickStep]. Degenerate or empty ranges are returned unchanged.
func AdjustLimits(amin, amax float64) (float64, float64) {
	tick := TickStep(amin, amax)
	if tick == 0 {
		return amin, amax
	}
	lo := tick * math.Floor(amin/tick)
	hi := tick * math.Ceil(amax/tick)
	return lo, hi
}

// fixDegenerate guarantees a strictly increasing range: a min == max
// pair is expanded symmetrically by 10% of the magnitude, or by ±0.1
// when the value is 0.
func fixDegenerate(amin, amax float64) (float64, float64) {
	if amin < amax {
		return amin, amax
	}
	if amin == 0 && amax == 0 {
		return -0.1, 0.1
	}
	d := 0.1 * math.Abs(amin)
	return amin - d, amax + d
}

// FormatTick renders a tick value with the shortest round-trip
// representation, the default tick label function.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// IndexLabeler returns a tick label function mapping consecutive
// integer tick values 1, 2, 3, ... to the given labels, with a blank
// string for anything out of range or non-integral.
func IndexLabeler(labels []string) func(float64) string {
	return func(v float64) string {
		i := int(math.Round(v))
		if float64(i) != v || i < 1 || i > len(labels) {
			return ""
		}
		return labels[i-1]
	}
}
