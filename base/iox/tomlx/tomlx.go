// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides strict TOML decoding, rejecting keys
// that do not correspond to a field of the target.
package tomlx

import (
	"io"
	"io/fs"

	"cogentcore.org/rampensau/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a new TOML decoder that rejects unknown keys.
func NewDecoder(r io.Reader) *toml.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// OpenFS reads the given object from the given filename in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}
