// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hues

import (
	"fmt"
	"strings"

	"cogentcore.org/rampensau/base/errors"
)

// Harmonies are the classic color harmonies, each of which
// derives a list of related hues from one base hue.
type Harmonies int32 //enums:enum -transform lower-camel

const (
	// Complementary is the base hue and its opposite.
	Complementary Harmonies = iota

	// SplitComplementary is the base hue and the two hues
	// adjacent to its opposite.
	SplitComplementary

	// Triadic is three hues evenly spaced around the wheel.
	Triadic

	// Tetradic is four hues evenly spaced around the wheel.
	Tetradic

	// Monochromatic is the base hue twice, which is the
	// minimum number of hues for a ramp.
	Monochromatic

	// DoubleComplementary is two adjacent hues and their opposites.
	DoubleComplementary

	// Compound is the base hue, its opposite, and a pair
	// of hues offset by 60 degrees.
	Compound

	// Analogous is six hues in steps of 30 degrees.
	Analogous
)

var harmonyOffsets = [...][]float64{
	Complementary:       {0, 180},
	SplitComplementary:  {0, 150, -150},
	Triadic:             {0, 120, 240},
	Tetradic:            {0, 90, 180, 270},
	Monochromatic:       {0, 0},
	DoubleComplementary: {0, 180, 30, 210},
	Compound:            {0, 180, 60, 240},
	Analogous:           {0, 30, 60, 90, 120, 150},
}

var harmonyNames = [...]string{
	Complementary:       "complementary",
	SplitComplementary:  "splitComplementary",
	Triadic:             "triadic",
	Tetradic:            "tetradic",
	Monochromatic:       "monochromatic",
	DoubleComplementary: "doubleComplementary",
	Compound:            "compound",
	Analogous:           "analogous",
}

// Hues returns the normalized hues of the harmony for the given base hue.
// It returns nil for an invalid harmony.
func (h Harmonies) Hues(base float64) []float64 {
	if !h.IsValid() {
		return nil
	}
	offs := harmonyOffsets[h]
	res := make([]float64, len(offs))
	for i, off := range offs {
		res[i] = Normalize(base + off)
	}
	return res
}

// IsValid returns whether the value is a valid option for type [Harmonies].
func (h Harmonies) IsValid() bool {
	return h >= 0 && int(h) < len(harmonyNames)
}

// String returns the string representation of this Harmonies value.
func (h Harmonies) String() string {
	if !h.IsValid() {
		return fmt.Sprintf("Harmonies(%d)", int32(h))
	}
	return harmonyNames[h]
}

// SetString sets the Harmonies value from its string representation,
// case-insensitively, and returns an error if the string is invalid.
func (h *Harmonies) SetString(s string) error {
	for i, nm := range harmonyNames {
		if strings.EqualFold(nm, s) {
			*h = Harmonies(i)
			return nil
		}
	}
	return errors.InvalidArgument("%q is not a valid value for type Harmonies", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (h Harmonies) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (h *Harmonies) UnmarshalText(text []byte) error {
	return h.SetString(string(text))
}

// HarmoniesValues returns all possible values for the type Harmonies.
func HarmoniesValues() []Harmonies {
	res := make([]Harmonies, len(harmonyNames))
	for i := range res {
		res[i] = Harmonies(i)
	}
	return res
}
