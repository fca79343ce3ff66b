// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolator(t *testing.T) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	mid := Interpolator(RGB)(0.5, black, white)
	assert.Equal(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, mid)

	for i := range blendNames {
		bt := BlendTypes(i)
		in := Interpolator(bt)
		start := in(0, black, white)
		end := in(1, black, white)
		// blends through Lab-like spaces do not round-trip exactly
		tolassert.EqualTol(t, 0, start.R, 1e-4, bt.String())
		tolassert.EqualTol(t, 1, end.G, 1e-4, bt.String())
		assert.Equal(t, "#ffffff", end.Clamped().Hex(), bt.String())
	}
}

func TestSpreadColors(t *testing.T) {
	cs, err := FromStrings("red", "blue")
	require.NoError(t, err)
	res, err := Spread(cs, 3, 0, RGB)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, cs[0], res[0])
	assert.Equal(t, colorful.Color{R: 0.5, G: 0, B: 0.5}, res[1])
	assert.Equal(t, cs[1], res[2])

	res, err = Spread(cs, 5, 0.1, OKLCHBlend)
	require.NoError(t, err)
	assert.Len(t, res, 5)
	assert.NotEqual(t, cs[0], res[0])

	_, err = Spread(cs, 5, 0, BlendTypes(99))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = Spread(cs[:1], 5, 0, RGB)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestBlendTypesString(t *testing.T) {
	assert.Equal(t, "OKLCH", OKLCHBlend.String())
	var b BlendTypes
	assert.NoError(t, b.SetString("linearrgb"))
	assert.Equal(t, LinearRGB, b)
	assert.ErrorIs(t, b.SetString("cmyk"), errors.ErrInvalidArgument)
}
