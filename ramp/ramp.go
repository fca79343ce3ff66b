// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ramp generates color ramps: ordered sequences of colors
// tracing a path through hue, saturation and lightness, with
// configurable easing, hue cycling, and optional fixed hues.
package ramp

import (
	"cogentcore.org/rampensau/colors"
	"cogentcore.org/rampensau/curve"
	"cogentcore.org/rampensau/hues"
)

// Generate returns the color ramp described by the given options, as
// (hue, saturation, lightness) triples (before any [Options.Transform]).
// Nil options use [NewOptions] with the global random source.
//
// For color i of n, the easings are evaluated at the relative position
// i / (n-1), or 0 for a single color ramp, with the fractional step 1/n.
// Hues derived from the hue options are normalized to [0, 360); fixed
// hues and the saturation and lightness are not clamped, and non-finite
// easing results pass through unchanged.
func Generate(o *Options) []colors.Triple {
	if o == nil {
		o = NewOptions(nil)
	}
	n := o.Len()
	if n == 0 {
		return nil
	}
	hEasing := orEasing(o.HEasing, curve.Linear)
	sEasing := orEasing(o.SEasing, DefaultSEasing)
	lEasing := orEasing(o.LEasing, DefaultLEasing)
	sDiff := o.SRange[1] - o.SRange[0]
	lDiff := o.LRange[1] - o.LRange[0]
	fr := 1 / float64(n)

	res := make([]colors.Triple, n)
	for i := range res {
		rel := 0.0
		if n > 1 {
			rel = float64(i) / float64(n-1)
		}
		var hue float64
		if len(o.HueList) > 0 {
			hue = o.HueList[i]
		} else {
			hue = hues.Normalize(o.HStart + (1-hEasing(rel, fr)-o.HStartCenter)*360*o.HCycles)
		}
		c := colors.Triple{
			hue,
			o.SRange[0] + sDiff*sEasing(rel, fr),
			o.LRange[0] + lDiff*lEasing(rel, fr),
		}
		if o.Transform != nil {
			c = o.Transform(c, i)
		}
		res[i] = c
	}
	return res
}

// DefaultCurve returns the default curve for [GenerateWithCurve],
// a [curve.Lame] curve with an accent of 0.5.
func DefaultCurve() curve.Curve {
	return curve.New(curve.Lame, 0.5)
}

// GenerateWithCurve is like [Generate], but it derives the saturation
// and lightness easings from the given curve (see [curve.Easings]),
// tying them to one coherent path instead of two independent easings.
// The given options are not modified. It returns an error if the
// curve is invalid.
func GenerateWithCurve(o *Options, c curve.Curve) ([]colors.Triple, error) {
	s, l, err := curve.Easings(c)
	if err != nil {
		return nil, err
	}
	var oc Options
	if o == nil {
		oc.Defaults(nil)
	} else {
		oc = *o
	}
	oc.SEasing = s
	oc.LEasing = l
	return Generate(&oc), nil
}

func orEasing(e, def curve.Easing) curve.Easing {
	if e == nil {
		return def
	}
	return e
}
