// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Swatch is the text drawn for each color by [Preview].
var Swatch = "  "

// Preview returns a one line string drawing each of the given colors
// as a swatch with a true color terminal background.
func Preview(cs []color.Color) string {
	return PreviewProfile(termenv.TrueColor, cs)
}

// PreviewProfile is like [Preview], but it downsamples the colors
// to the given terminal color profile. An [termenv.Ascii] profile
// draws plain swatches without any escape sequences.
func PreviewProfile(p termenv.Profile, cs []color.Color) string {
	var b strings.Builder
	for _, c := range cs {
		cf, _ := colorful.MakeColor(c)
		b.WriteString(p.String(Swatch).Background(p.Color(cf.Clamped().Hex())).String())
	}
	return b.String()
}

// PreviewTriples is [Preview] for triples interpreted in the given mode.
func PreviewTriples(cs []Triple, mode Modes) string {
	res := make([]color.Color, len(cs))
	for i, c := range cs {
		res[i] = AsRGBA(c, mode)
	}
	return Preview(res)
}
