// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"cogentcore.org/rampensau/base/randx"
	"cogentcore.org/rampensau/colors"
	"cogentcore.org/rampensau/curve"
)

// Options are the options for generating a color ramp with [Generate].
// Use [NewOptions] to get options with default values, and then
// change the fields of interest.
type Options struct {

	// Total is the number of colors in the ramp. It is ignored
	// if HueList is not empty.
	Total int

	// HStart is the starting hue in degrees.
	HStart float64

	// HStartCenter is the point of the hue easing, in [0, 1], at which
	// the ramp passes through HStart: 0 starts the ramp at HStart, and
	// 0.5 centers the ramp on it.
	HStartCenter float64

	// HCycles is the number of times the ramp goes around the hue wheel.
	// It may be fractional, and negative values reverse the direction.
	HCycles float64

	// HEasing is the easing of the hue over the ramp; nil is linear.
	HEasing curve.Easing

	// SRange is the saturation at the start and end of the ramp.
	// It may be descending, and is not clamped to [0, 1].
	SRange [2]float64

	// SEasing is the easing of the saturation over the ramp;
	// nil is [DefaultSEasing].
	SEasing curve.Easing

	// LRange is the lightness at the start and end of the ramp.
	// It may be descending, and is not clamped to [0, 1].
	LRange [2]float64

	// LEasing is the easing of the lightness over the ramp;
	// nil is [DefaultLEasing].
	LEasing curve.Easing

	// HueList, if not empty, is a fixed list of hues used verbatim
	// (without normalization) instead of hues derived from the hue
	// options, and its length is the length of the ramp.
	HueList []float64

	// Transform, if non-nil, is applied to each color of the ramp
	// with its index, as the last step of generating it.
	Transform func(c colors.Triple, i int) colors.Triple
}

var (
	// DefaultSEasing is the default saturation easing, x².
	DefaultSEasing = curve.Power(2)

	// DefaultLEasing is the default lightness easing, x^1.5.
	DefaultLEasing = curve.Power(1.5)
)

// NewOptions returns new [Options] with default values, drawing the
// randomized defaults from the given random source (nil uses the
// global one). See [Options.Defaults].
func NewOptions(rnd randx.Rand) *Options {
	o := &Options{}
	o.Defaults(rnd)
	return o
}

// Defaults sets the default values for the options. The starting hue
// and the lightness floor are randomized using the given random source
// (nil uses the global one), so that default ramps differ every time;
// pass a seeded source or set the fields for reproducible ramps.
func (o *Options) Defaults(rnd randx.Rand) {
	rnd = randx.OrGlobal(rnd)
	o.Total = 9
	o.HStart = rnd.Float64() * 360
	o.HStartCenter = 0.5
	o.HCycles = 1
	o.HEasing = curve.Linear
	o.SRange = [2]float64{0.4, 0.35}
	o.SEasing = DefaultSEasing
	o.LRange = [2]float64{rnd.Float64() * 0.1, 0.9}
	o.LEasing = DefaultLEasing
	o.HueList = nil
	o.Transform = nil
}

// Len returns the number of colors the options generate.
func (o *Options) Len() int {
	if len(o.HueList) > 0 {
		return len(o.HueList)
	}
	return max(o.Total, 0)
}
