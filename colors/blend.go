// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/spread"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendTypes are the color spaces concrete colors can be blended in.
type BlendTypes int32 //enums:enum

const (
	// RGB blends in the sRGB color space.
	RGB BlendTypes = iota

	// LinearRGB blends in the linear RGB color space, which
	// avoids the darkening around the middle of sRGB blends.
	LinearRGB

	// Lab blends in the CIE L*a*b* color space.
	Lab

	// Luv blends in the CIE L*u*v* color space.
	Luv

	// HCL blends in the CIE LCh color space, taking the shortest hue path.
	HCL

	// OKLab blends in the OKLab color space.
	OKLab

	// OKLCHBlend blends in the OKLCH color space, taking the shortest hue path.
	OKLCHBlend

	// HSVBlend blends in the HSV color space, taking the shortest hue path.
	HSVBlend
)

var blendNames = [...]string{
	RGB:        "RGB",
	LinearRGB:  "LinearRGB",
	Lab:        "Lab",
	Luv:        "Luv",
	HCL:        "HCL",
	OKLab:      "OKLab",
	OKLCHBlend: "OKLCH",
	HSVBlend:   "HSV",
}

// IsValid returns whether the value is a valid option for type [BlendTypes].
func (b BlendTypes) IsValid() bool {
	return b >= 0 && int(b) < len(blendNames)
}

// String returns the string representation of this BlendTypes value.
func (b BlendTypes) String() string {
	if !b.IsValid() {
		return fmt.Sprintf("BlendTypes(%d)", int32(b))
	}
	return blendNames[b]
}

// SetString sets the BlendTypes value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (b *BlendTypes) SetString(s string) error {
	for i, nm := range blendNames {
		if strings.EqualFold(nm, s) {
			*b = BlendTypes(i)
			return nil
		}
	}
	return errors.InvalidArgument("%q is not a valid value for type BlendTypes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (b BlendTypes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (b *BlendTypes) UnmarshalText(text []byte) error {
	return b.SetString(string(text))
}

// Interpolator returns a [spread.Interpolator] blending concrete
// colors in the given color space. Invalid blend types blend in [RGB].
func Interpolator(bt BlendTypes) spread.Interpolator[colorful.Color] {
	return func(amt float64, from, to colorful.Color) colorful.Color {
		switch bt {
		case LinearRGB:
			return from.BlendLinearRgb(to, amt)
		case Lab:
			return from.BlendLab(to, amt)
		case Luv:
			return from.BlendLuv(to, amt)
		case HCL:
			return from.BlendHcl(to, amt)
		case OKLab:
			return from.BlendOkLab(to, amt)
		case OKLCHBlend:
			return from.BlendOkLch(to, amt)
		case HSVBlend:
			return from.BlendHsv(to, amt)
		default:
			return from.BlendRgb(to, amt)
		}
	}
}

// Spread resamples the given colors to the given size by blending them
// in the given color space. See [spread.Spread] for the meaning of
// size and padding.
func Spread(cs []colorful.Color, size int, padding float64, bt BlendTypes) ([]colorful.Color, error) {
	if !bt.IsValid() {
		return nil, errors.InvalidArgument("invalid blend type %s", bt)
	}
	return spread.Spread(cs, size, padding, Interpolator(bt))
}
