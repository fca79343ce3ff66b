// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// PChoose chooses an index in the given slice of weights at random,
// with a probability proportional to the weight of each item.
// The weights need not sum to 1, and negative weights count as 0.
// It returns -1 if there are no positive weights. A nil rnd uses
// the system global Rand source.
func PChoose(ws []float64, rnd Rand) int {
	sum := 0.0
	for _, w := range ws {
		sum += max(w, 0)
	}
	if sum <= 0 {
		return -1
	}
	pv := OrGlobal(rnd).Float64() * sum
	cum := 0.0
	last := -1
	for i, w := range ws {
		if w <= 0 {
			continue
		}
		cum += w
		last = i
		if pv < cum { // note: lower values already excluded
			return i
		}
	}
	return last
}
