// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color triple produced by color ramps,
// along with functions for converting triples to CSS color strings
// and concrete colors, blending and resampling concrete colors,
// parsing color names, and previewing colors as terminal swatches
// and images.
package colors

// Triple is a color as three numbers, whose meaning depends on
// the [Modes] it is interpreted in. Ramps produce
// (hue in [0, 360), saturation, lightness) triples, with saturation
// and lightness conventionally (but not necessarily) in [0, 1].
type Triple [3]float64

// HSVToHSL converts the given (hue, saturation, value) triple
// to a (hue, saturation, lightness) triple.
func HSVToHSL(c Triple) Triple {
	h, s, v := c[0], c[1], c[2]
	l := v - v*s/2
	m := min(l, 1-l)
	if m == 0 {
		return Triple{h, 0, l}
	}
	return Triple{h, (v - l) / m, l}
}
