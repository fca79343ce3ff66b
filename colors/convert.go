// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// oklchChroma is the OKLCH chroma of a triple chroma of 1 (CSS 100%).
	oklchChroma = 0.4

	// lchChroma is the CIE LCh chroma of a triple chroma of 1 (CSS 100%),
	// in the units of [colorful.Hcl], which divides Lab values by 100.
	lchChroma = 1.5
)

// ToColor returns the given triple interpreted in the given mode as a
// [colorful.Color]. The result may be outside of the sRGB gamut;
// see [colorful.Color.Clamped]. Invalid modes are interpreted as OKLCH.
func ToColor(c Triple, mode Modes) colorful.Color {
	h, s, l := c[0], c[1], c[2]
	switch mode {
	case HSL:
		return colorful.Hsl(h, s, l)
	case HSV:
		return colorful.Hsv(h, s, l)
	case LCH:
		return colorful.Hcl(h, s*lchChroma, l)
	default:
		return colorful.OkLch(l, s*oklchChroma, h)
	}
}

// AsRGBA returns the given triple interpreted in the given mode
// as an opaque [color.RGBA], clamped to the sRGB gamut.
func AsRGBA(c Triple, mode Modes) color.RGBA {
	r, g, b := ToColor(c, mode).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns the given triple interpreted in the given mode
// as a hex color string like "#ff8800", clamped to the sRGB gamut.
func Hex(c Triple, mode Modes) string {
	return ToColor(c, mode).Clamped().Hex()
}

// ToColors returns [ToColor] of each of the given triples.
func ToColors(cs []Triple, mode Modes) []colorful.Color {
	res := make([]colorful.Color, len(cs))
	for i, c := range cs {
		res[i] = ToColor(c, mode)
	}
	return res
}
