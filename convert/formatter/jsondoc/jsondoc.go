/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsondoc renders a parsed VBO file as an indented JSON document.
package jsondoc

import (
	"encoding/json"

	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/record"
)

// Formatter outputs the whole file, header and rows, as JSON.
type Formatter struct{}

// New creates a new JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts file to JSON.
func (f *Formatter) Format(file *record.File, _ formatter.Options) ([]byte, error) {
	out, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
