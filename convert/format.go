/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders parsed VBO files in interchange formats.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/convert/formatter/csvtable"
	"bennypowers.dev/vbo/convert/formatter/jsondoc"
	"bennypowers.dev/vbo/convert/formatter/nmealog"
	"bennypowers.dev/vbo/convert/formatter/yamldoc"
	"bennypowers.dev/vbo/record"
)

// Format represents an output format for a parsed file.
type Format string

const (
	// FormatJSON outputs the full file as indented JSON (default).
	FormatJSON Format = "json"

	// FormatYAML outputs the full file as YAML.
	FormatYAML Format = "yaml"

	// FormatCSV outputs the data rows as CSV in schema order.
	FormatCSV Format = "csv"

	// FormatNMEA outputs one NMEA RMC sentence per data row.
	FormatNMEA Format = "nmea"
)

// Options configures rendering.
type Options struct {
	// Comma is the CSV field separator. Zero means ','.
	Comma rune

	// TitleColumns uses display titles for CSV column headings.
	TitleColumns bool

	// DecimalDegrees reports that lat/long were converted; required for NMEA.
	DecimalDegrees bool
}

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatCSV),
		string(FormatNMEA),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "nmea":
		return FormatNMEA, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Render converts file to the specified output format.
func Render(file *record.File, format Format, opts Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatJSON:
		f = jsondoc.New()
	case FormatYAML:
		f = yamldoc.New()
	case FormatCSV:
		f = csvtable.New()
	case FormatNMEA:
		f = nmealog.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(file, formatter.Options{
		Comma:          opts.Comma,
		TitleColumns:   opts.TitleColumns,
		DecimalDegrees: opts.DecimalDegrees,
	})
}
