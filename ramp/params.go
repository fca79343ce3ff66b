// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"math"

	"cogentcore.org/rampensau/base/randx"
	"cogentcore.org/rampensau/curve"
)

// Param describes a numeric ramp parameter: its default value and
// the sane range and step for editing or randomizing it.
type Param struct {
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

// Clamp returns v clamped to [Param.Min, Param.Max] and
// rounded to the nearest step from Min.
func (p Param) Clamp(v float64) float64 {
	v = min(max(v, p.Min), p.Max)
	if p.Step > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
		v = min(v, p.Max)
	}
	return v
}

// Random returns a random value in the range of the parameter,
// rounded to its step, using the given random source
// (nil uses the global one).
func (p Param) Random(rnd randx.Rand) float64 {
	rnd = randx.OrGlobal(rnd)
	return p.Clamp(p.Min + rnd.Float64()*(p.Max-p.Min))
}

// Params is the table of ramp parameters with their defaults and sane
// ranges, for building editors and coming up with random ramps.
type Params struct {
	Total         Param
	HStart        Param
	HCycles       Param
	HStartCenter  Param
	MinLight      Param
	MaxLight      Param
	MinSaturation Param
	MaxSaturation Param
	CurveAccent   Param

	// CurveMethod is the default curve method.
	CurveMethod curve.Methods

	// CurveMethods are the curve methods to choose from.
	CurveMethods []curve.Methods

	// CurveWeights are the relative weights of CurveMethods
	// for [RandomOptions].
	CurveWeights []float64
}

// NewParams returns the parameter table. The lightness and saturation
// defaults are randomized using the given random source (nil uses the
// global one).
func NewParams(rnd randx.Rand) *Params {
	rnd = randx.OrGlobal(rnd)
	unit := Param{Min: 0, Max: 1, Step: 0.001}
	ps := &Params{
		Total:        Param{Default: 5, Min: 4, Max: 50, Step: 1},
		HStart:       Param{Default: 0, Min: 0, Max: 360, Step: 0.1},
		HCycles:      Param{Default: 1, Min: -2, Max: 2, Step: 0.001},
		HStartCenter: Param{Default: 0.5, Min: 0, Max: 1, Step: 0.001},
		CurveAccent:  Param{Default: 0.5, Min: 0, Max: 5, Step: 0.01},
		CurveMethod:  curve.Lame,
		CurveMethods: curve.NamedMethods(),
		CurveWeights: []float64{4, 1, 2, 1, 1},
	}
	ps.MinLight, ps.MaxLight = unit, unit
	ps.MinSaturation, ps.MaxSaturation = unit, unit
	ps.MinLight.Default = rnd.Float64() * 0.2
	ps.MaxLight.Default = 0.89 + rnd.Float64()*0.11
	if rnd.Float64() < 0.5 {
		ps.MinSaturation.Default = 0.4
	} else {
		ps.MinSaturation.Default = 0.8 + rnd.Float64()*0.2
	}
	if rnd.Float64() < 0.5 {
		ps.MaxSaturation.Default = 0.35
	} else {
		ps.MaxSaturation.Default = 0.9 + rnd.Float64()*0.1
	}
	return ps
}

// RandomOptions returns random "inspire me" options and curve for
// [GenerateWithCurve], using the given random source (nil uses the
// global one). The starting hue is random, the curve method is chosen
// according to [Params.CurveWeights], and the lightness and saturation
// ranges are the randomized defaults of [NewParams].
func RandomOptions(rnd randx.Rand) (*Options, curve.Curve) {
	rnd = randx.OrGlobal(rnd)
	ps := NewParams(rnd)
	o := NewOptions(rnd)
	o.Total = int(ps.Total.Default)
	o.HStart = ps.HStart.Random(rnd)
	o.HCycles = ps.HCycles.Default
	o.HStartCenter = ps.HStartCenter.Default
	o.LRange = [2]float64{ps.MinLight.Default, ps.MaxLight.Default}
	o.SRange = [2]float64{ps.MinSaturation.Default, ps.MaxSaturation.Default}
	method := ps.CurveMethod
	if i := randx.PChoose(ps.CurveWeights, rnd); i >= 0 {
		method = ps.CurveMethods[i]
	}
	return o, curve.New(method, ps.CurveAccent.Default)
}
