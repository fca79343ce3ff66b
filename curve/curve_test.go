// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"testing"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointOnLame(t *testing.T) {
	p, err := PointOn(New(Lame, 0.5))
	require.NoError(t, err)
	pt := p(0.5)
	assert.GreaterOrEqual(t, pt.X, 0.0)
	assert.LessOrEqual(t, pt.X, 1.0)
	assert.GreaterOrEqual(t, pt.Y, 0.0)
	assert.LessOrEqual(t, pt.Y, 1.0)
	tolassert.EqualTol(t, math.Pow(math.Sqrt2/2, 1.0/6), pt.X, 1e-12)
	tolassert.EqualTol(t, pt.X, pt.Y, 1e-12)

	start := p(0)
	assert.Equal(t, Point{1, 0}, start)
}

func TestLameAccentZeroIsCircle(t *testing.T) {
	p := MustPointOn(New(Lame, 0))
	for _, tv := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		pt := p(tv)
		tolassert.EqualTol(t, 1, pt.X*pt.X+pt.Y*pt.Y, 1e-12)
	}
}

func TestPointOnArc(t *testing.T) {
	p := MustPointOn(New(Arc, 0.1))
	pt := p(0.2)
	assert.GreaterOrEqual(t, pt.X, 0.0)
	assert.LessOrEqual(t, pt.X, 1.0)
	assert.GreaterOrEqual(t, pt.Y, 0.0)
	assert.LessOrEqual(t, pt.Y, 1.0)
	tolassert.EqualTol(t, math.Sin(math.Pi/2+0.2*math.Pi/2-0.1), pt.X, 1e-12)
	tolassert.EqualTol(t, math.Cos(-math.Pi/2+0.2*math.Pi/2+0.1), pt.Y, 1e-12)
}

func TestPointOnPowFamily(t *testing.T) {
	tests := []struct {
		method Methods
		accent float64
		t      float64
		want   Point
	}{
		{Pow, 0.5, 0.25, Point{math.Sqrt(0.75), 0.5}},
		{Pow, 0, 0.25, Point{0.75, 0.25}},
		{PowY, 0.5, 0.25, Point{math.Sqrt(0.75), 0.5}},
		{PowY, 1, 0.25, Point{0.75, 1}},
		{PowX, 0.25, 0.25, Point{math.Pow(0.25, 0.25), math.Pow(0.25, 0.75)}},
	}
	for _, tt := range tests {
		pt := MustPointOn(New(tt.method, tt.accent))(tt.t)
		tolassert.EqualTol(t, tt.want.X, pt.X, 1e-12, "%s x", tt.method)
		tolassert.EqualTol(t, tt.want.Y, pt.Y, 1e-12, "%s y", tt.method)
	}
}

func TestPointOnCustom(t *testing.T) {
	var gotAccent float64
	c := NewCustom(func(t, accent float64) (float64, float64) {
		gotAccent = accent
		return 1 - t, t * t
	}, 0.7)
	pt := MustPointOn(c)(0.5)
	assert.Equal(t, Point{0.5, 0.25}, pt)
	assert.Equal(t, 0.7, gotAccent)
}

func TestPointOnInvalid(t *testing.T) {
	_, err := PointOn(New(Methods(42), 0.5))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Methods(42)")

	_, err = PointOn(Curve{Method: Custom})
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, _, err = Easings(New(Methods(-1), 0))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	assert.Panics(t, func() { MustPointOn(New(Methods(9), 0)) })
	assert.Panics(t, func() { MustEasings(Curve{Method: Custom}) })
}

func TestLameEasingsInUnitRange(t *testing.T) {
	for accent := 0.0; accent <= 1; accent += 0.05 {
		s, l := MustEasings(New(Lame, accent))
		for i := 0; i <= 100; i++ {
			tv := float64(i) / 100
			sv, lv := s(tv, 0.1), l(tv, 0.1)
			assert.GreaterOrEqual(t, sv, 0.0, "s(%g) accent %g", tv, accent)
			assert.LessOrEqual(t, sv, 1.0, "s(%g) accent %g", tv, accent)
			assert.GreaterOrEqual(t, lv, 0.0, "l(%g) accent %g", tv, accent)
			assert.LessOrEqual(t, lv, 1.0, "l(%g) accent %g", tv, accent)
		}
	}
}

func TestEasingsMatchPoint(t *testing.T) {
	for _, m := range NamedMethods() {
		c := New(m, 0.3)
		s, l := MustEasings(c)
		p := MustPointOn(c)
		for _, tv := range []float64{0, 0.2, 0.5, 0.8, 1} {
			pt := p(tv)
			assert.Equal(t, pt.X, s(tv, 0.5), "%s", m)
			assert.Equal(t, pt.Y, l(tv, 0.5), "%s", m)
		}
	}
}

func TestMethodsString(t *testing.T) {
	assert.Equal(t, "lamé", Lame.String())
	assert.Equal(t, "powY", PowY.String())
	for _, nm := range []string{"lamé", "lame", "LAME", "arc", "pow", "powy", "powX", "custom"} {
		_, err := ParseMethod(nm)
		assert.NoError(t, err, nm)
	}
	m, err := ParseMethod("powY")
	assert.NoError(t, err)
	assert.Equal(t, PowY, m)

	_, err = ParseMethod("sine")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"sine"`)

	b, err := Arc.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "arc", string(b))
	assert.NoError(t, m.UnmarshalText([]byte("pow")))
	assert.Equal(t, Pow, m)
	assert.Len(t, MethodsValues(), 6)
	assert.False(t, Methods(6).IsValid())
}
