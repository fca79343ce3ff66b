// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

// ErrInvalidArgument is the error wrapped by all errors reporting a
// configuration value that cannot be used, such as an unknown curve
// method or a resampling target that is too small. These errors are
// detected at call entry and are never worth retrying.
var ErrInvalidArgument = New("invalid argument")

// InvalidArgument returns a new error wrapping [ErrInvalidArgument]
// with the given formatted context.
func InvalidArgument(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}
