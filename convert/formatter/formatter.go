/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for output formatters.
package formatter

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/vbo/record"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders a parsed file in the target format.
	Format(file *record.File, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Comma is the field separator for tabular output. Zero means ','.
	Comma rune

	// TitleColumns renders column headings as display titles
	// ("Vertical Velocity") instead of schema names ("vertvel").
	TitleColumns bool

	// DecimalDegrees reports that lat/long hold signed decimal degrees.
	DecimalDegrees bool
}

// columnTitles are display names for the recognized columns.
var columnTitles = map[string]string{
	"sats":     "Satellites",
	"time":     "Time",
	"lat":      "Latitude",
	"long":     "Longitude",
	"velocity": "Velocity",
	"heading":  "Heading",
	"height":   "Height",
	"vertvel":  "Vertical Velocity",
	"event1":   "Trigger Event Time",
}

var titleCaser = cases.Title(language.English)

// ColumnTitle returns a display title for a column name.
// Unrecognized channels are title-cased with underscores read as spaces.
func ColumnTitle(name string) string {
	if title, ok := columnTitles[strings.ToLower(name)]; ok {
		return title
	}
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// CellValue renders the value of column in row as text.
// Satellites render as the satellite count. A missing channel renders empty.
func CellValue(row *record.DataRow, column string) string {
	switch strings.ToLower(column) {
	case "sats":
		return strconv.Itoa(row.Satellites.Count)
	case "time":
		return row.Time
	case "lat":
		return row.Latitude.String()
	case "long":
		return row.Longitude.String()
	case "velocity":
		return row.Velocity.String()
	case "heading":
		return row.Heading.String()
	case "height":
		return row.Height.String()
	case "vertvel":
		return row.VerticalVelocity.String()
	case "event1":
		return row.TriggerEventTime.String()
	default:
		if v, ok := row.Channel(column); ok {
			return v.String()
		}
		return ""
	}
}
