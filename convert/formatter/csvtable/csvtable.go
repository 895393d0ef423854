/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package csvtable renders VBO data rows as CSV.
package csvtable

import (
	"bytes"
	"encoding/csv"

	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/record"
)

// Formatter outputs one record per data row, columns in schema order.
// The header section is not included.
type Formatter struct{}

// New creates a new CSV formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts the data rows of file to CSV, preceded by a heading row.
func (f *Formatter) Format(file *record.File, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if opts.Comma != 0 {
		w.Comma = opts.Comma
	}

	columns := file.Header.ColumnNames
	heading := make([]string, len(columns))
	for i, name := range columns {
		if opts.TitleColumns {
			heading[i] = formatter.ColumnTitle(name)
		} else {
			heading[i] = name
		}
	}
	if err := w.Write(heading); err != nil {
		return nil, err
	}

	fields := make([]string, len(columns))
	for i := range file.Data {
		row := &file.Data[i]
		for j, name := range columns {
			fields[j] = formatter.CellValue(row, name)
		}
		if err := w.Write(fields); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
