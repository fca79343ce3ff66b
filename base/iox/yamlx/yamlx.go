// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides strict YAML decoding, rejecting keys
// that do not correspond to a field of the target.
package yamlx

import (
	"io"
	"io/fs"

	"cogentcore.org/rampensau/base/errors"
	"cogentcore.org/rampensau/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new YAML decoder that rejects unknown keys.
func NewDecoder(r io.Reader) *yaml.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// OpenFS reads the given object from the given filename in the given filesystem.
// An empty document leaves the object unchanged.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return emptyOK(iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(NewDecoder)))
}

// Read reads the given object from the given reader.
// An empty document leaves the object unchanged.
func Read(v any, reader io.Reader) error {
	return emptyOK(iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder)))
}

// ReadBytes reads the given object from the given bytes.
// An empty document leaves the object unchanged.
func ReadBytes(v any, data []byte) error {
	return emptyOK(iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder)))
}

// emptyOK treats the [io.EOF] of an empty document as success.
func emptyOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
