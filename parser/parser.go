/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides VBOX telemetry (.vbo) file parsing.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/internal/logger"
	"bennypowers.dev/vbo/record"
)

// dataMarker separates the header from the data table.
const dataMarker = "[data]"

// Options configures VBO parsing.
type Options struct {
	// ConvertCoordinates converts lat/long to signed decimal degrees.
	// When false, the packed token is parsed as a plain float.
	// Nil means true.
	ConvertCoordinates *bool

	// RawData keeps the original token for time, velocity, heading, height,
	// vertvel, event1 and additional channels instead of decoding them.
	RawData bool

	// Location is the zone of the creation timestamp. Nil means time.Local.
	Location *time.Location

	// Logger receives warnings for skipped rows. Nil means the package logger.
	Logger logrus.FieldLogger
}

// Bool returns a pointer to b, for Options.ConvertCoordinates.
func Bool(b bool) *bool {
	return &b
}

// DecimalDegrees reports whether parsed lat/long values are signed decimal degrees.
func (o Options) DecimalDegrees() bool {
	return o.ConvertCoordinates == nil || *o.ConvertCoordinates
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Entry()
}

// Parser parses VBO files.
type Parser interface {
	// Parse parses raw file bytes.
	Parse(data []byte, opts Options) (*record.File, error)

	// ParseString parses file content that is already text.
	ParseString(content string, opts Options) (*record.File, error)

	// ParseFile reads and parses a file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*record.File, error)
}

// VBOParser is the default Parser. It holds no state and is safe for concurrent use.
type VBOParser struct{}

// NewVBOParser creates a new VBO parser.
func NewVBOParser() *VBOParser {
	return &VBOParser{}
}

var defaultParser = NewVBOParser()

// Parse parses raw VBO file bytes with the default parser.
func Parse(data []byte, opts Options) (*record.File, error) {
	return defaultParser.Parse(data, opts)
}

// ParseString parses VBO file content with the default parser.
func ParseString(content string, opts Options) (*record.File, error) {
	return defaultParser.ParseString(content, opts)
}

// ParseString splits content on the [data] marker, parses the header, then
// decodes the data table against the header's column names.
func (p *VBOParser) ParseString(content string, opts Options) (*record.File, error) {
	sections := strings.Split(content, dataMarker)
	if len(sections) != 2 {
		return nil, missingDataSection()
	}
	headerContent, dataContent := sections[0], sections[1]

	header, err := ParseHeader(headerContent, opts)
	if err != nil {
		return nil, err
	}

	// The remainder of the [data] line is the first line of dataContent.
	firstLine := strings.Count(headerContent, "\n") + 1

	rows, skipped, err := NewDataParser(header.ColumnNames, opts).ParseData(dataContent, firstLine)
	if err != nil {
		return nil, err
	}

	return &record.File{
		Header:  header,
		Data:    rows,
		Skipped: skipped,
	}, nil
}

// Parse decodes data to text and parses it. See DecodeText.
func (p *VBOParser) Parse(data []byte, opts Options) (*record.File, error) {
	content, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	return p.ParseString(content, opts)
}

// ParseFile reads path from filesystem and parses it.
func (p *VBOParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*record.File, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	file, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}
