// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	ErrInfinity = errors.New("plotkit: infinite data point")
	ErrNoData   = errors.New("plotkit: no data points")
)

// Valuer is the data interface for plotting, providing a length
// and float64 access to individual values.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D returns the float64 value at given index.
	Float1D(i int) float64
}

// Values provides a minimal implementation of the Valuer interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CopyValues returns a Values copy of the given data, or an error if
// there are no values or one of the values is an Infinity.
// NaN values are skipped in the copying process.
func CopyValues(data Valuer) (Values, error) {
	if data == nil {
		return nil, ErrNoData
	}
	cpy := make(Values, 0, data.Len())
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		if err := CheckFloats(v); err != nil {
			return nil, err
		}
		cpy = append(cpy, v)
	}
	return cpy, nil
}

// Range updates the given range with values from data, skipping NaNs.
// The range should start from the [minmax.F64.SetInfinity] sentinel
// so that successive calls accumulate a running (min, max) fold.
func Range(data Valuer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}
