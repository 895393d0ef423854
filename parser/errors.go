/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"

	"bennypowers.dev/vbo/parser/common"
)

// Sections reported by StructuralError.
const (
	SectionFormat = "format"
	SectionHeader = "header"
	SectionData   = "data"
)

// Sentinel errors for structural failures.
var (
	// ErrMissingDataSection indicates the input does not contain exactly one [data] marker.
	ErrMissingDataSection = errors.New("invalid VBO file format: missing [data] section")

	// ErrMissingColumnNames indicates the header has no recoverable column schema.
	ErrMissingColumnNames = errors.New("missing column names in header")

	// ErrColumnCountMismatch indicates a data row does not match the column schema.
	ErrColumnCountMismatch = errors.New("column count mismatch")
)

// FormatError is a token conversion failure, such as a malformed time or creation date.
type FormatError = common.FormatError

// StructuralError reports input that is not a usable VBO file.
// Structural errors abort the whole parse.
type StructuralError struct {
	// Section is one of SectionFormat, SectionHeader or SectionData.
	Section string

	// Message describes the failure.
	Message string

	// Line is the 1-based line number of the offending line, or 0.
	Line int

	err error
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (section: %s, line %d)", e.Message, e.Section, e.Line)
	}
	return fmt.Sprintf("%s (section: %s)", e.Message, e.Section)
}

func (e *StructuralError) Unwrap() error {
	return e.err
}

// IsStructural reports whether err is a StructuralError for any of the given
// sections, or for any section when none are given.
func IsStructural(err error, sections ...string) bool {
	var se *StructuralError
	if !errors.As(err, &se) {
		return false
	}
	if len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if se.Section == s {
			return true
		}
	}
	return false
}

func missingDataSection() error {
	return &StructuralError{
		Section: SectionFormat,
		Message: ErrMissingDataSection.Error(),
		err:     ErrMissingDataSection,
	}
}

func missingColumnNames() error {
	return &StructuralError{
		Section: SectionHeader,
		Message: ErrMissingColumnNames.Error(),
		err:     ErrMissingColumnNames,
	}
}

func columnCountMismatch(got, want int) error {
	return &StructuralError{
		Section: SectionData,
		Message: fmt.Sprintf("data row has %d columns but expected %d", got, want),
		err:     ErrColumnCountMismatch,
	}
}
