// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/rampensau/base/errors"
)

// Modes are the ways a [Triple] can be interpreted.
type Modes int32 //enums:enum -transform lower

const (
	// OKLCH interprets a triple as (hue, chroma, lightness) in the
	// OKLCH color space, with chroma 1 mapping to 0.4 (CSS 100%).
	OKLCH Modes = iota

	// LCH interprets a triple as (hue, chroma, lightness) in the
	// CIE LCh color space, with chroma 1 mapping to 150 (CSS 100%).
	LCH

	// HSL interprets a triple as (hue, saturation, lightness).
	HSL

	// HSV interprets a triple as (hue, saturation, value).
	HSV
)

var modeNames = [...]string{
	OKLCH: "oklch",
	LCH:   "lch",
	HSL:   "hsl",
	HSV:   "hsv",
}

// IsValid returns whether the value is a valid option for type [Modes].
func (m Modes) IsValid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

// String returns the string representation of this Modes value.
func (m Modes) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

// SetString sets the Modes value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (m *Modes) SetString(s string) error {
	for i, nm := range modeNames {
		if strings.EqualFold(nm, s) {
			*m = Modes(i)
			return nil
		}
	}
	return errors.InvalidArgument("%q is not a valid value for type Modes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Modes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Modes) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}

// ModesValues returns all possible values for the type Modes.
func ModesValues() []Modes {
	return []Modes{OKLCH, LCH, HSL, HSV}
}
