// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/rampensau/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// FromString returns the color specified by the given string,
// which can be a CSS standard color name like "rebeccapurple"
// or a hex value like "#f80" or "#ff8800".
func FromString(str string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return colorful.Color{}, errors.InvalidArgument("colors.FromString: empty color string")
	}
	if s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, errors.InvalidArgument("colors.FromString: invalid hex color %q: %v", str, err)
		}
		return c, nil
	}
	rgba, ok := colornames.Map[s]
	if !ok {
		return colorful.Color{}, errors.InvalidArgument("colors.FromString: name not found: %q", str)
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}

// MustFromString is like [FromString] but panics on an invalid string.
func MustFromString(str string) colorful.Color {
	return errors.Must1(FromString(str))
}

// FromStrings returns [FromString] of each of the given strings,
// failing on the first invalid one.
func FromStrings(strs ...string) ([]colorful.Color, error) {
	res := make([]colorful.Color, len(strs))
	for i, s := range strs {
		c, err := FromString(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		res[i] = c
	}
	return res, nil
}
