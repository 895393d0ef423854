/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"errors"
	"fmt"
)

// Sentinel errors for scalar conversion.
var (
	// ErrInvalidTime indicates a time token is not in HHMMSS.ss form.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidCreationDate indicates no creation date variant matched.
	ErrInvalidCreationDate = errors.New("invalid creation date format")

	// ErrInvalidCoordinate indicates a packed coordinate is not a number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// FormatError reports a token that could not be converted.
// It unwraps to one of the sentinel errors above.
type FormatError struct {
	Kind  error
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}
