/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yamldoc renders a parsed VBO file as a YAML document.
package yamldoc

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/record"
)

// Formatter outputs the whole file, header and rows, as YAML.
type Formatter struct{}

// New creates a new YAML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts file to YAML with two-space indentation.
func (f *Formatter) Format(file *record.File, _ formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
