// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Shuffle returns a new slice with the elements of s in a
// pseudo-random order, using the Fisher-Yates algorithm driven
// by rnd.Float64 (nil uses the global source). s is not modified.
func Shuffle[T any](s []T, rnd Rand) []T {
	rnd = OrGlobal(rnd)
	res := make([]T, len(s))
	copy(res, s)
	for i := len(res); i > 0; {
		j := int(rnd.Float64() * float64(i))
		i--
		res[i], res[j] = res[j], res[i]
	}
	return res
}
