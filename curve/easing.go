// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/rampensau/base/errors"
	"github.com/fogleman/ease"
)

// Easing reshapes a linear progress value x, expected in [0, 1],
// into a non-linear one. fr is the fractional step of the sequence
// being eased (1 / number of steps), which easings may use to adapt
// to the density of the sequence; most ignore it.
// Easings must be pure functions.
type Easing func(x, fr float64) float64

// Linear is the identity easing.
func Linear(x, _ float64) float64 {
	return x
}

// Power returns an easing raising x to the given exponent.
func Power(exp float64) Easing {
	return func(x, _ float64) float64 {
		return math.Pow(x, exp)
	}
}

// FromFunc returns an easing calling the given unary function,
// such as one of the functions of github.com/fogleman/ease.
func FromFunc(fun func(x float64) float64) Easing {
	return func(x, _ float64) float64 {
		return fun(x)
	}
}

// namedEasings are the easings available through [ByName].
var namedEasings = map[string]func(float64) float64{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inquart":    ease.InQuart,
	"outquart":   ease.OutQuart,
	"inoutquart": ease.InOutQuart,
	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"inoutquint": ease.InOutQuint,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
	"incirc":     ease.InCirc,
	"outcirc":    ease.OutCirc,
	"inoutcirc":  ease.InOutCirc,
}

// EasingNames returns the sorted names accepted by [ByName],
// not including the parameterized "pow:EXP" form.
func EasingNames() []string {
	nms := make([]string, 0, len(namedEasings))
	for nm := range namedEasings {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// ByName returns the easing with the given name. Names are the
// Penner easings in lower camel case ("inOutSine", "outCubic", ...)
// matched case-insensitively, "linear", or "pow:EXP" for [Power]
// with the given exponent (for example "pow:1.5").
func ByName(name string) (Easing, error) {
	lnm := strings.ToLower(strings.TrimSpace(name))
	if exps, ok := strings.CutPrefix(lnm, "pow:"); ok {
		exp, err := strconv.ParseFloat(exps, 64)
		if err != nil {
			return nil, errors.InvalidArgument("invalid exponent in easing %q: %v", name, err)
		}
		return Power(exp), nil
	}
	fun, ok := namedEasings[lnm]
	if !ok {
		return nil, errors.InvalidArgument("unknown easing %q", name)
	}
	if lnm == "linear" {
		return Linear, nil
	}
	return FromFunc(fun), nil
}
