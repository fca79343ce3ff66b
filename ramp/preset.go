// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/iox/tomlx"
	"cogentcore.org/rampensau/base/iox/yamlx"
	"cogentcore.org/rampensau/base/randx"
	"cogentcore.org/rampensau/colors"
	"cogentcore.org/rampensau/curve"
	"github.com/jinzhu/copier"
)

// Formats are the supported preset encodings.
type Formats int32 //enums:enum

const (
	// TOML is the TOML preset format.
	TOML Formats = iota

	// YAML is the YAML preset format.
	YAML
)

var formatNames = [...]string{TOML: "toml", YAML: "yaml"}

// IsValid returns whether the value is a valid option for type [Formats].
func (f Formats) IsValid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

// String returns the string representation of this Formats value.
func (f Formats) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// FormatFromExt returns the preset format for the extension of
// the given file name (.toml, .yaml or .yml).
func FormatFromExt(filename string) (Formats, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, errors.InvalidArgument("unknown preset format for file %q", filename)
}

// Preset is a named, serializable ramp configuration. Absent keys keep
// the defaults of [NewPreset], except that an absent hStart and lRange
// are randomized when the preset is turned into [Options].
type Preset struct {

	// Name is the name of the preset.
	Name string `toml:"name" yaml:"name"`

	// Total is the number of colors, ignored if HueList is set.
	Total int `toml:"total" yaml:"total"`

	// StartHue is the starting hue; nil is random.
	StartHue *float64 `toml:"hStart" yaml:"hStart"`

	HStartCenter float64 `toml:"hStartCenter" yaml:"hStartCenter"`

	HCycles float64 `toml:"hCycles" yaml:"hCycles"`

	SRange [2]float64 `toml:"sRange" yaml:"sRange"`

	// LightRange is the lightness range; nil has a random floor.
	LightRange *[2]float64 `toml:"lRange" yaml:"lRange"`

	HueList []float64 `toml:"hueList" yaml:"hueList"`

	// HueEasing is the name of the hue easing (see [curve.ByName]).
	HueEasing string `toml:"hEasing" yaml:"hEasing"`

	// SatEasing is the name of the saturation easing.
	SatEasing string `toml:"sEasing" yaml:"sEasing"`

	// LightEasing is the name of the lightness easing.
	LightEasing string `toml:"lEasing" yaml:"lEasing"`

	// Curve is the name of the curve method (see [curve.ParseMethod])
	// from which the saturation and lightness easings are derived.
	// It can not be combined with SatEasing or LightEasing.
	Curve string `toml:"curve" yaml:"curve"`

	// CurveAccent is the accent of the curve.
	CurveAccent float64 `toml:"curveAccent" yaml:"curveAccent"`

	// Mode is the color model for converting the ramp to CSS and colors.
	Mode colors.Modes `toml:"mode" yaml:"mode"`
}

// NewPreset returns a new preset with the default values of [Options]
// for all non-random fields.
func NewPreset() *Preset {
	return &Preset{
		Total:        9,
		HStartCenter: 0.5,
		HCycles:      1,
		SRange:       [2]float64{0.4, 0.35},
		CurveAccent:  0.5,
	}
}

// DecodePreset decodes a preset in the given format from the given bytes,
// on top of the defaults of [NewPreset]. Unknown keys are an error.
// The easing and curve names are checked by [Preset.Validate].
func DecodePreset(data []byte, format Formats) (*Preset, error) {
	return decodePreset(format,
		func(p *Preset) error { return tomlx.ReadBytes(p, data) },
		func(p *Preset) error { return yamlx.ReadBytes(p, data) })
}

// ReadPreset is like [DecodePreset], reading from the given reader.
func ReadPreset(r io.Reader, format Formats) (*Preset, error) {
	return decodePreset(format,
		func(p *Preset) error { return tomlx.Read(p, r) },
		func(p *Preset) error { return yamlx.Read(p, r) })
}

// decodePreset decodes a new preset with the decode function for
// the given format, and validates it. Errors of the underlying reader
// or file system are returned as they are.
func decodePreset(format Formats, fromTOML, fromYAML func(p *Preset) error) (*Preset, error) {
	p := NewPreset()
	var err error
	switch format {
	case TOML:
		err = fromTOML(p)
	case YAML:
		err = fromYAML(p)
	default:
		return nil, errors.InvalidArgument("unknown preset format %s", format)
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return nil, err
	}
	if err != nil {
		return nil, errors.InvalidArgument("decoding %s preset: %v", format, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate returns an error if the easing or curve names of the
// preset are unknown, or if the curve is combined with easings.
func (p *Preset) Validate() error {
	_, _, _, err := p.easings()
	return err
}

// easings returns the hue, saturation and lightness easings of the
// preset, with nil for the defaults.
func (p *Preset) easings() (h, s, l curve.Easing, err error) {
	byName := func(nm string) curve.Easing {
		if nm == "" || err != nil {
			return nil
		}
		var e curve.Easing
		e, err = curve.ByName(nm)
		return e
	}
	h, s, l = byName(p.HueEasing), byName(p.SatEasing), byName(p.LightEasing)
	if err != nil || p.Curve == "" {
		return
	}
	if p.SatEasing != "" || p.LightEasing != "" {
		err = errors.InvalidArgument("preset %q combines curve %q with saturation or lightness easings", p.Name, p.Curve)
		return
	}
	var m curve.Methods
	if m, err = curve.ParseMethod(p.Curve); err != nil {
		return
	}
	s, l, err = curve.Easings(curve.New(m, p.CurveAccent))
	return
}

// Options returns the ramp options for the preset, drawing the
// random hue start and lightness floor, if not set in the preset,
// from the given random source (nil uses the global one).
func (p *Preset) Options(rnd randx.Rand) (*Options, error) {
	h, s, l, err := p.easings()
	if err != nil {
		return nil, err
	}
	o := NewOptions(rnd)
	if err := copier.CopyWithOption(o, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if p.StartHue != nil {
		o.HStart = *p.StartHue
	}
	if p.LightRange != nil {
		o.LRange = *p.LightRange
	}
	if h != nil {
		o.HEasing = h
	}
	if s != nil {
		o.SEasing = s
	}
	if l != nil {
		o.LEasing = l
	}
	return o, nil
}

// Generate returns the color ramp of the preset. See [Preset.Options].
func (p *Preset) Generate(rnd randx.Rand) ([]colors.Triple, error) {
	o, err := p.Options(rnd)
	if err != nil {
		return nil, err
	}
	return Generate(o), nil
}

// CSS returns the color ramp of the preset as CSS color strings
// in the color model of the preset.
func (p *Preset) CSS(rnd randx.Rand) ([]string, error) {
	cs, err := p.Generate(rnd)
	if err != nil {
		return nil, err
	}
	return colors.ToCSSAll(cs, p.Mode), nil
}
