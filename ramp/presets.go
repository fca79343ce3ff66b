// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/iox/tomlx"
	"cogentcore.org/rampensau/base/iox/yamlx"
)

//go:embed presets
var presetsFS embed.FS

// Presets is the file system of the built-in presets,
// one TOML or YAML file per preset in the presets directory.
var Presets fs.FS = errors.Must1(fs.Sub(presetsFS, "presets"))

// PresetNames returns the sorted names of the built-in presets.
func PresetNames() []string {
	var nms []string
	ents, err := fs.ReadDir(Presets, ".")
	if errors.Log(err) != nil {
		return nil
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFromExt(e.Name()); err != nil {
			continue
		}
		nms = append(nms, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(nms)
	return nms
}

// LoadPreset returns the built-in preset with the given name.
func LoadPreset(name string) (*Preset, error) {
	return OpenPresetFS(Presets, name)
}

// MustLoadPreset is like [LoadPreset] but panics on error.
func MustLoadPreset(name string) *Preset {
	return errors.Must1(LoadPreset(name))
}

// LogLoadPreset is like [LoadPreset] but logs any error
// and returns nil in that case.
func LogLoadPreset(name string) *Preset {
	return errors.Log1(LoadPreset(name))
}

// OpenPresetFS returns the preset with the given name from the given
// file system, in the first of name.toml, name.yaml or name.yml that
// exists. A name with one of these extensions is opened directly.
func OpenPresetFS(fsys fs.FS, name string) (*Preset, error) {
	fnames := []string{name}
	if _, err := FormatFromExt(name); err != nil {
		fnames = []string{name + ".toml", name + ".yaml", name + ".yml"}
	}
	for _, fn := range fnames {
		format, _ := FormatFromExt(fn)
		p, err := decodePreset(format,
			func(p *Preset) error { return tomlx.OpenFS(p, fsys, fn) },
			func(p *Preset) error { return yamlx.OpenFS(p, fsys, fn) })
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", fn, err)
		}
		return p, nil
	}
	return nil, errors.InvalidArgument("unknown preset %q", name)
}
