// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve maps a normalized progress value onto a point on one of
// several parametric curve families, so that two easing functions can be
// derived from the same curve (see [Easings]). Saturation and lightness
// then move together along one visually coherent path instead of
// independently.
package curve

import (
	"math"

	"cogentcore.org/rampensau/base/errors"
)

// Point is a point on a curve.
type Point struct {
	X, Y float64
}

// Func is a caller-supplied curve, returning the point
// at progress t for the given accent.
type Func func(t, accent float64) (x, y float64)

// PointFunc returns the point on a curve at progress t, which
// is expected to be in [0, 1].
type PointFunc func(t float64) Point

// Curve describes a parametric curve: one of the named [Methods]
// bent by Accent, or a custom [Func] when Method is [Custom].
type Curve struct {

	// Method is the curve family.
	Method Methods

	// Accent controls how strongly the curve bends away from its
	// baseline. It is conventionally in [0, 1] for the lamé and pow
	// families, and a phase shift in radians for [Arc].
	Accent float64

	// Func is the curve used when Method is [Custom].
	Func Func
}

// New returns a new [Curve] of the given named method and accent.
func New(method Methods, accent float64) Curve {
	return Curve{Method: method, Accent: accent}
}

// NewCustom returns a new [Custom] curve evaluating the given function.
func NewCustom(fun Func, accent float64) Curve {
	return Curve{Method: Custom, Accent: accent, Func: fun}
}

// Validate returns an error wrapping [errors.ErrInvalidArgument]
// if the curve can not be evaluated.
func (c Curve) Validate() error {
	if !c.Method.IsValid() {
		return errors.InvalidArgument("curve method is expected to be %s or a function but %s given", methodsList(), c.Method)
	}
	if c.Method == Custom && c.Func == nil {
		return errors.InvalidArgument("custom curve method given without a function")
	}
	return nil
}

// PointOn returns a function evaluating the given curve at progress t.
// It returns an error if the curve is invalid (see [Curve.Validate]);
// this is checked once here, not on every evaluation.
func PointOn(c Curve) (PointFunc, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	accent := c.Accent
	switch c.Method {
	case Lame:
		exp := 2 / (2 + 20*accent)
		return func(t float64) Point {
			sin, cos := math.Sincos(t * math.Pi / 2)
			return Point{signPow(cos, exp), signPow(sin, exp)}
		}, nil
	case Arc:
		return func(t float64) Point {
			return Point{
				X: math.Sin(math.Pi/2 + t*math.Pi/2 - accent),
				Y: math.Cos(-math.Pi/2 + t*math.Pi/2 + accent),
			}
		}, nil
	case Pow:
		return func(t float64) Point {
			return Point{math.Pow(1-t, 1-accent), math.Pow(t, 1-accent)}
		}, nil
	case PowY:
		return func(t float64) Point {
			return Point{math.Pow(1-t, accent), math.Pow(t, 1-accent)}
		}, nil
	case PowX:
		return func(t float64) Point {
			return Point{math.Pow(t, accent), math.Pow(t, 1-accent)}
		}, nil
	default: // Custom
		fun := c.Func
		return func(t float64) Point {
			x, y := fun(t, accent)
			return Point{x, y}
		}, nil
	}
}

// MustPointOn is like [PointOn] but panics on an invalid curve.
func MustPointOn(c Curve) PointFunc {
	return errors.Must1(PointOn(c))
}

// Easings returns two easing functions derived from the given curve:
// s returns the X coordinate of the point at t, and l the Y coordinate.
// They are named for their use as saturation and lightness easings
// in a color ramp, where they stay correlated through the shared curve.
func Easings(c Curve) (s, l Easing, err error) {
	point, err := PointOn(c)
	if err != nil {
		return nil, nil, err
	}
	s = func(t, _ float64) float64 { return point(t).X }
	l = func(t, _ float64) float64 { return point(t).Y }
	return s, l, nil
}

// MustEasings is like [Easings] but panics on an invalid curve.
func MustEasings(c Curve) (s, l Easing) {
	s, l, err := Easings(c)
	errors.Must(err)
	return s, l
}

// signPow returns sign(v) * |v|^exp, with a sign of 0 for 0.
func signPow(v, exp float64) float64 {
	switch {
	case v > 0:
		return math.Pow(v, exp)
	case v < 0:
		return -math.Pow(-v, exp)
	}
	return 0
}
