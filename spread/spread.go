// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spread stretches a short ordered sequence of values
// to a longer one by piecewise interpolation, optionally
// compressing the sampled domain with padding so that the
// extreme endpoint values are avoided.
package spread

import (
	"cogentcore.org/rampensau/base/errors"
)

// Interpolator returns the value at the given amount
// (usually in [0, 1]) between from and to.
type Interpolator[T any] func(amt float64, from, to T) T

// Lerp linearly interpolates between from and to.
func Lerp(amt, from, to float64) float64 {
	return from + amt*(to-from)
}

// Floats is [Spread] for numbers, using [Lerp].
func Floats(values []float64, size int, padding float64) ([]float64, error) {
	return Spread(values, size, padding, Lerp)
}

// Spread returns a new sequence of exactly size values, spreading the given
// values over it and filling the gaps with the given interpolator.
// values is never modified, and must contain at least two values.
//
// Without padding (padding <= 0), size must be at least len(values), every
// input value appears unchanged in the result, and the extra slots are dealt
// round-robin to the segments between consecutive values, starting from the
// first, so that insertions are as evenly spaced as integer division allows.
// The last result value is always the last input value.
//
// With padding > 0 (conventionally < 0.5), size must be at least 1. The
// normalized domain [0, 1] is compressed to [padding, 1-padding] before
// sampling size evenly spaced positions from it, so the input values are
// not guaranteed to appear verbatim in the result.
func Spread[T any](values []T, size int, padding float64, interp Interpolator[T]) ([]T, error) {
	n := len(values)
	if n < 2 {
		return nil, errors.InvalidArgument("spread: at least two values are required, got %d", n)
	}
	if interp == nil {
		return nil, errors.InvalidArgument("spread: nil interpolator")
	}
	if padding > 0 {
		if size < 1 {
			return nil, errors.InvalidArgument("spread: target size must be at least 1, got %d", size)
		}
		return padded(values, size, padding, interp), nil
	}
	if size < n {
		return nil, errors.InvalidArgument("spread: target size %d must be greater than or equal to the number of values %d", size, n)
	}
	return segmented(values, size, interp), nil
}

// segmented implements [Spread] without padding. Segment k between
// values[k] and values[k+1] holds values[k] followed by its share of
// the extra slots, each interpolated at j / segment length.
func segmented[T any](values []T, size int, interp Interpolator[T]) []T {
	n := len(values)
	segs := n - 1
	extra := size - n
	res := make([]T, 0, size)
	for k := 0; k < segs; k++ {
		ln := 1 + extra/segs
		if k < extra%segs {
			ln++
		}
		from, to := values[k], values[k+1]
		res = append(res, from)
		for j := 1; j < ln; j++ {
			res = append(res, interp(float64(j)/float64(ln), from, to))
		}
	}
	return append(res, values[n-1])
}

// padded implements [Spread] with padding.
func padded[T any](values []T, size int, padding float64, interp Interpolator[T]) []T {
	n := len(values)
	last := float64(n - 1)
	start := padding
	end := 1 - padding

	res := make([]T, size)
	seg := 0
	prev := start
	for i := range res {
		t := 0.5
		if size > 1 {
			t = float64(i) / float64(size-1)
		}
		pos := start + t*(end-start)
		if pos < prev { // positions only decrease when padding > 0.5
			seg = 0
		}
		prev = pos
		// positions are non-decreasing, so continue from the last segment
		for seg < n-2 && pos > float64(seg+1)/last {
			seg++
		}
		segStart := float64(seg) / last
		segEnd := float64(seg+1) / last
		res[i] = interp((pos-segStart)/(segEnd-segStart), values[seg], values[seg+1])
	}
	return res
}
