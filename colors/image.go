// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Strip returns a new image of the given size showing the given colors
// as equally wide vertical bands, from left to right. Each color covers
// at least one pixel, so the image is widened if needed.
func Strip(cs []color.Color, size image.Point) *image.RGBA {
	if len(cs) == 0 {
		return image.NewRGBA(image.Rectangle{Max: size})
	}
	size.X = max(size.X, len(cs))
	size.Y = max(size.Y, 1)
	src := image.NewRGBA(image.Rect(0, 0, len(cs), 1))
	for i, c := range cs {
		src.Set(i, 0, c)
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.NearestNeighbor.Scale(img, img.Bounds(), src, src.Bounds(), draw.Src, nil)
	return img
}

// StripTriples is [Strip] for triples interpreted in the given mode.
func StripTriples(cs []Triple, mode Modes, size image.Point) *image.RGBA {
	res := make([]color.Color, len(cs))
	for i, c := range cs {
		res[i] = AsRGBA(c, mode)
	}
	return Strip(res, size)
}
