// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"strings"

	"cogentcore.org/rampensau/base/errors"
)

// Methods are the parametric curve families a [Curve] can follow.
type Methods int32 //enums:enum

const (
	// Lame is a quarter superellipse (Lamé curve). An accent of 0 gives
	// a quarter circle; larger accents flatten it toward a square corner.
	Lame Methods = iota

	// Arc is a quarter circle phase shifted by the accent.
	Arc

	// Pow is x = (1-t)^(1-accent), y = t^(1-accent).
	Pow

	// PowY is x = (1-t)^accent, y = t^(1-accent).
	PowY

	// PowX is x = t^accent, y = t^(1-accent).
	PowX

	// Custom evaluates the [Curve.Func] of the curve.
	Custom
)

var methodNames = [...]string{
	Lame:   "lamé",
	Arc:    "arc",
	Pow:    "pow",
	PowY:   "powY",
	PowX:   "powX",
	Custom: "custom",
}

// IsValid returns whether the value is a valid option for type [Methods].
func (m Methods) IsValid() bool {
	return m >= 0 && int(m) < len(methodNames)
}

// String returns the string representation of this Methods value.
func (m Methods) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Methods(%d)", int32(m))
	}
	return methodNames[m]
}

// SetString sets the Methods value from its string representation,
// and returns an error if the string is invalid. Matching is
// case-insensitive, and "lame" is accepted for [Lame].
func (m *Methods) SetString(s string) error {
	if strings.EqualFold(s, "lame") {
		*m = Lame
		return nil
	}
	for i, nm := range methodNames {
		if strings.EqualFold(nm, s) {
			*m = Methods(i)
			return nil
		}
	}
	return errors.InvalidArgument("curve method is expected to be %s or a function but %q given", methodsList(), s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Methods) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Methods) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}

// ParseMethod returns the [Methods] value with the given name.
func ParseMethod(s string) (Methods, error) {
	var m Methods
	err := m.SetString(s)
	return m, err
}

// MethodsValues returns all possible values for the type Methods.
func MethodsValues() []Methods {
	return []Methods{Lame, Arc, Pow, PowY, PowX, Custom}
}

// NamedMethods returns the methods that do not need a custom function.
func NamedMethods() []Methods {
	return []Methods{Lame, Arc, Pow, PowY, PowX}
}

// methodsList returns the named methods as a quoted list for error messages.
func methodsList() string {
	nms := make([]string, 0, len(methodNames))
	for _, m := range NamedMethods() {
		nms = append(nms, fmt.Sprintf("%q", m.String()))
	}
	return strings.Join(nms, " | ")
}
