// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hues provides functions for working with hue angles
// in degrees: normalization onto the color wheel, an evenly
// distributed spectrum remap, color harmonies, and unique
// random hue selection.
package hues

import (
	"math"

	"cogentcore.org/rampensau/base/randx"
)

// Normalize returns the given hue wrapped onto the color wheel,
// always in the range [0, 360), including for negative hues.
func Normalize(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

// Harvey returns the given hue remapped onto a more evenly distributed
// spectrum, without the over abundance of green and ultramarine of a
// plain HSL hue wheel. See https://twitter.com/harvey_rayner/status/1748159440010809665.
// The input hue is normalized first; the result is in [0, 360).
func Harvey(h float64) float64 {
	h = Normalize(h) / 360
	if h == 0 {
		return 0
	}
	h = 1 + math.Mod(h, 1)

	const seg = 1.0 / 6
	a := math.Mod(h, seg) / seg * math.Pi / 2
	b, c := seg*math.Cos(a), seg*math.Sin(a)
	i := int(math.Floor(h * 6))
	cases := [6]float64{c, 1.0/3 - b, 1.0/3 + c, 2.0/3 - b, 2.0/3 + c, 1 - b}
	return cases[i%6] * 360
}

// UniqueOptions are the options for [UniqueRandom].
type UniqueOptions struct {

	// StartHue is the hue of the first slot; 0 picks a random one.
	StartHue float64

	// Total is the number of hues to return.
	Total int

	// MinDiffAngle is the minimum angle between two returned hues.
	// It is capped to 360 / Total so that Total hues always fit.
	MinDiffAngle float64

	// Rand is the random source; nil uses the global one.
	Rand randx.Rand
}

// Defaults sets the default values for the options.
func (o *UniqueOptions) Defaults() {
	o.Total = 9
	o.MinDiffAngle = 60
}

// UniqueRandom returns a list of hues spaced at least
// [UniqueOptions.MinDiffAngle] apart, in random order.
// The hues are picked from evenly spaced slots around the wheel
// starting at [UniqueOptions.StartHue], so no two of them collide.
func UniqueRandom(o UniqueOptions) []float64 {
	if o.Total <= 0 {
		return nil
	}
	rnd := randx.OrGlobal(o.Rand)
	angle := math.Min(o.MinDiffAngle, 360/float64(o.Total))
	if !(angle > 0) { // also NaN
		angle = 360 / float64(o.Total)
	}
	base := o.StartHue
	if base == 0 {
		base = rnd.Float64() * 360
	}
	n := int(math.Round(360 / angle))
	slots := make([]float64, n)
	for i := range slots {
		slots[i] = math.Mod(base+float64(i)*angle, 360)
	}
	res := randx.Shuffle(slots, rnd)
	if len(res) > o.Total {
		res = res[:o.Total]
	}
	return res
}
