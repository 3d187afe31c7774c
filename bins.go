// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "math"

// Binning transforms turn raw samples into the flattened coordinate
// pairs the bar drawer consumes (see drawBar).

// DefaultBarWidth is the bar width fraction of the unit category
// spacing used by BarCoordinates.
const DefaultBarWidth = 0.8

// HistogramBins computes equal-width bin edges and counts over x.
// nbins <= 0 selects the Sturges-style default round(3.3*log10(n))+1.
// Values land in bin i when edges[i] <= v < edges[i+1]; the top edge
// is inclusive so the maximum is not dropped.
func HistogramBins(x Values, nbins int) (edges Values, counts Values) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}
	if nbins <= 0 {
		nbins = int(math.Round(3.3*math.Log10(float64(n)))) + 1
	}
	if nbins < 1 {
		nbins = 1
	}
	min, max := x[0], x[0]
	for _, v := range x {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min == max { // all samples equal: one centered unit-width bin
		min -= 0.5
		max += 0.5
	}
	edges = make(Values, nbins+1)
	for i := range edges {
		edges[i] = min + float64(i)*(max-min)/float64(nbins)
	}
	counts = make(Values, nbins)
	width := (max - min) / float64(nbins)
	for _, v := range x {
		i := int((v - min) / width)
		if i >= nbins {
			i = nbins - 1
		}
		counts[i]++
	}
	return edges, counts
}

// BarCoordinates flattens category heights into (x0,x1) edge pairs and
// (baseline,height) pairs at integer category positions 1..n.
// barWidth <= 0 uses DefaultBarWidth.
func BarCoordinates(heights Values, barWidth, baseline float64) (x, y Values) {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	x = make(Values, 0, 2*len(heights))
	y = make(Values, 0, 2*len(heights))
	for i, h := range heights {
		c := float64(i + 1)
		x = append(x, c-0.5*barWidth, c+0.5*barWidth)
		y = append(y, baseline, h)
	}
	return x, y
}

// EdgesToBarCoordinates flattens pre-binned histogram output (n+1
// edges, n counts) into the drawBar pair layout.
func EdgesToBarCoordinates(edges, counts Values, baseline float64) (x, y Values) {
	n := len(counts)
	x = make(Values, 0, 2*n)
	y = make(Values, 0, 2*n)
	for i := 0; i < n && i+1 < len(edges); i++ {
		x = append(x, edges[i], edges[i+1])
		y = append(y, baseline, counts[i])
	}
	return x, y
}
