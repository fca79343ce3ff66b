// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"math"
	"testing"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/randx"
	"cogentcore.org/rampensau/base/tolassert"
	"cogentcore.org/rampensau/colors"
	"cogentcore.org/rampensau/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearOptions returns deterministic options with linear easings.
func linearOptions(total int) *Options {
	o := NewOptions(randx.Sequence(0.5, 0.2))
	o.Total = total
	o.HEasing = curve.Linear
	o.SEasing = curve.Linear
	o.LEasing = curve.Linear
	return o
}

func TestNewOptions(t *testing.T) {
	o := NewOptions(randx.Sequence(0.5, 0.2))
	assert.Equal(t, 9, o.Total)
	tolassert.Equal(t, 180, o.HStart)
	assert.Equal(t, 0.5, o.HStartCenter)
	assert.Equal(t, 1.0, o.HCycles)
	assert.Equal(t, [2]float64{0.4, 0.35}, o.SRange)
	tolassert.Equal(t, 0.02, o.LRange[0])
	assert.Equal(t, 0.9, o.LRange[1])
	assert.Nil(t, o.HueList)
	assert.Nil(t, o.Transform)
	assert.Equal(t, 9, o.Len())

	o.HueList = []float64{1, 2}
	assert.Equal(t, 2, o.Len())
}

func TestGenerateLength(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		o := NewOptions(randx.NewSysRand(seed))
		o.Total = 5
		cs := Generate(o)
		require.Len(t, cs, 5)
		for _, c := range cs {
			assert.GreaterOrEqual(t, c[0], 0.0)
			assert.Less(t, c[0], 360.0)
		}
	}
	assert.Len(t, Generate(nil), 9)
}

func TestGenerateHueList(t *testing.T) {
	o := NewOptions(nil)
	o.Total = 7
	o.HueList = []float64{0, 120, 240}
	cs := Generate(o)
	require.Len(t, cs, 3)
	for i, h := range o.HueList {
		assert.Equal(t, h, cs[i][0])
	}

	o.HueList = []float64{-30, 400}
	cs = Generate(o)
	assert.Equal(t, -30.0, cs[0][0])
	assert.Equal(t, 400.0, cs[1][0])
}

func TestGenerateHStart(t *testing.T) {
	o := NewOptions(nil)
	o.Total = 5
	o.HStart = 180
	o.HStartCenter = 0
	tolassert.Equal(t, 180, Generate(o)[0][0])
}

func TestGenerateClosedCycle(t *testing.T) {
	o := linearOptions(5)
	o.HStart = 0
	o.HStartCenter = 0
	o.HCycles = 1
	cs := Generate(o)
	first, last := cs[0][0], cs[len(cs)-1][0]
	d := math.Abs(first - last)
	assert.True(t, d < 1e-9 || math.Abs(d-360) < 1e-9, "first %v last %v", first, last)
}

func TestGenerateHueSteps(t *testing.T) {
	o := linearOptions(5)
	o.HStart = 0
	o.HStartCenter = 0
	o.HCycles = 0.5
	hs := make([]float64, 5)
	for i, c := range Generate(o) {
		hs[i] = c[0]
	}
	tolassert.EqualTolSlice(t, []float64{180, 135, 90, 45, 0}, hs, 1e-9)

	o.HCycles = -0.5
	for i, c := range Generate(o) {
		hs[i] = c[0]
	}
	tolassert.EqualTolSlice(t, []float64{180, 225, 270, 315, 0}, hs, 1e-9)
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(linearOptions(0)))
	assert.Empty(t, Generate(linearOptions(-3)))
}

func TestGenerateSingle(t *testing.T) {
	o := linearOptions(1)
	o.HStart = 10
	o.SRange = [2]float64{0.3, 0.8}
	o.LRange = [2]float64{0.1, 0.9}
	cs := Generate(o)
	require.Len(t, cs, 1)
	tolassert.Equal(t, 190, cs[0][0])
	assert.Equal(t, 0.3, cs[0][1])
	assert.Equal(t, 0.1, cs[0][2])
	assert.False(t, math.IsNaN(cs[0][0]))
}

func TestGenerateRanges(t *testing.T) {
	o := linearOptions(5)
	o.SRange = [2]float64{0, 1}
	o.LRange = [2]float64{1, 0}
	cs := Generate(o)
	for i, c := range cs {
		tolassert.Equal(t, float64(i)/4, c[1])
		tolassert.Equal(t, 1-float64(i)/4, c[2])
	}

	o.SRange = [2]float64{-0.5, 2}
	cs = Generate(o)
	assert.Equal(t, -0.5, cs[0][1])
	assert.Equal(t, 2.0, cs[4][1])
}

func TestGenerateDefaultEasings(t *testing.T) {
	o := linearOptions(3)
	o.HEasing, o.SEasing, o.LEasing = nil, nil, nil
	o.SRange = [2]float64{0, 1}
	o.LRange = [2]float64{0, 1}
	cs := Generate(o)
	tolassert.Equal(t, 0.25, cs[1][1])
	tolassert.Equal(t, math.Pow(0.5, 1.5), cs[1][2])
}

func TestGenerateEasingArgs(t *testing.T) {
	var xs, frs []float64
	o := linearOptions(4)
	o.SEasing = func(x, fr float64) float64 {
		xs = append(xs, x)
		frs = append(frs, fr)
		return x
	}
	Generate(o)
	tolassert.EqualTolSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, xs, 1e-12)
	tolassert.EqualTolSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, frs, 1e-12)
}

func TestGenerateNonFinite(t *testing.T) {
	o := linearOptions(3)
	o.SEasing = func(x, fr float64) float64 { return math.NaN() }
	o.LEasing = func(x, fr float64) float64 { return math.Inf(1) }
	for _, c := range Generate(o) {
		assert.True(t, math.IsNaN(c[1]))
		assert.True(t, math.IsInf(c[2], 1))
	}
}

func TestGenerateTransform(t *testing.T) {
	o := linearOptions(4)
	o.Transform = func(c colors.Triple, i int) colors.Triple {
		return colors.Triple{float64(i), c[1], c[2] * 2}
	}
	cs := Generate(o)
	for i, c := range cs {
		assert.Equal(t, float64(i), c[0])
	}
	tolassert.Equal(t, 2*o.LRange[1], cs[3][2])
}

func TestDefaultCurve(t *testing.T) {
	c := DefaultCurve()
	assert.Equal(t, curve.Lame, c.Method)
	assert.Equal(t, 0.5, c.Accent)
}

func TestGenerateWithCurve(t *testing.T) {
	o := linearOptions(3)
	o.SRange = [2]float64{0, 1}
	o.LRange = [2]float64{0, 1}
	cs, err := GenerateWithCurve(o, curve.New(curve.PowX, 0))
	require.NoError(t, err)
	require.Len(t, cs, 3)
	tolassert.Equal(t, 1, cs[1][1])
	tolassert.Equal(t, 0.5, cs[1][2])
	// the options are not modified
	tolassert.Equal(t, 0.5, o.SEasing(0.5, 0))

	for seed := int64(0); seed < 10; seed++ {
		o := NewOptions(randx.NewSysRand(seed))
		o.SRange = [2]float64{0, 1}
		o.LRange = [2]float64{0, 1}
		cs, err := GenerateWithCurve(o, DefaultCurve())
		require.NoError(t, err)
		for _, c := range cs {
			assert.True(t, c[1] >= -1e-9 && c[1] <= 1+1e-9, "saturation %v", c[1])
			assert.True(t, c[2] >= -1e-9 && c[2] <= 1+1e-9, "lightness %v", c[2])
		}
	}

	_, err = GenerateWithCurve(o, curve.Curve{Method: curve.Custom})
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = GenerateWithCurve(o, curve.Curve{Method: curve.Methods(42)})
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}
