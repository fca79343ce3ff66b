// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, as [OKLCH] triples.
// The first 8 colors differ in hue, and later rounds repeat
// the hues with different lightness and chroma. Negative
// indexes wrap around, so Spaced(-1) is the last color of the cycle.
// This is useful, for example, for assigning colors in graphs.
func Spaced(idx int) Triple {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	loffs := []float64{0, -0.1, 0, 0.05, 0, 0, 0.05, 0}
	lights := []float64{0.65, 0.8, 0.45, 0.65, 0.8}
	chromas := []float64{0.4, 0.4, 0.4, 0.15, 0.15}
	ncats := len(hues)
	nls := len(lights)
	hi := ((idx % ncats) + ncats) % ncats
	tci := (((idx - hi) / ncats % nls) + nls) % nls
	return Triple{hues[hi], chromas[tci], loffs[hi] + lights[tci]}
}
