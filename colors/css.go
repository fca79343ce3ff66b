// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
)

// ToCSS returns the given color as a CSS color function string in the
// given mode, for example "hsl(120 50% 75%)" or "oklch(75% 50% 120)".
// HSV triples are converted to HSL first, since CSS has no hsv().
// Invalid modes are formatted as OKLCH.
func ToCSS(c Triple, mode Modes) string {
	var fn string
	var args [3]string
	switch mode {
	case HSL, HSV:
		if mode == HSV {
			c = HSVToHSL(c)
		}
		fn = "hsl"
		args = [3]string{num(c[0]), percent(c[1]), percent(c[2])}
	case LCH:
		fn = "lch"
		args = [3]string{percent(c[2]), percent(c[1]), num(c[0])}
	default:
		fn = "oklch"
		args = [3]string{percent(c[2]), percent(c[1]), num(c[0])}
	}
	return fn + "(" + strings.Join(args[:], " ") + ")"
}

// ToCSSAll returns [ToCSS] of each of the given colors.
func ToCSSAll(cs []Triple, mode Modes) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = ToCSS(c, mode)
	}
	return res
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return num(v*100) + "%"
}
