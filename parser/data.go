/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bennypowers.dev/vbo/parser/common"
	"bennypowers.dev/vbo/record"
)

// DataParser decodes data lines against a column schema.
// It is immutable once constructed and safe for concurrent use.
type DataParser struct {
	columns     []string
	convert     bool
	raw         bool
	log         logrus.FieldLogger
	hasChannels bool
}

// Recognized columns, matched case-insensitively.
var knownColumns = map[string]bool{
	"sats":     true,
	"time":     true,
	"lat":      true,
	"long":     true,
	"velocity": true,
	"heading":  true,
	"height":   true,
	"vertvel":  true,
	"event1":   true,
}

// NewDataParser creates a parser for rows with the given column names.
func NewDataParser(columnNames []string, opts Options) *DataParser {
	columns := make([]string, len(columnNames))
	hasChannels := false
	for i, name := range columnNames {
		columns[i] = strings.ToLower(name)
		if !knownColumns[columns[i]] {
			hasChannels = true
		}
	}
	return &DataParser{
		columns:     columns,
		convert:     opts.DecimalDegrees(),
		raw:         opts.RawData,
		log:         opts.logger(),
		hasChannels: hasChannels,
	}
}

// ParseRow decodes one data line.
// A line whose token count differs from the schema yields a *StructuralError.
func (p *DataParser) ParseRow(line string) (record.DataRow, error) {
	values := common.SplitLine(line)
	if len(values) != len(p.columns) {
		return record.DataRow{}, columnCountMismatch(len(values), len(p.columns))
	}

	var row record.DataRow
	if p.hasChannels {
		row.Channels = make(map[string]record.Value)
	}

	for i, column := range p.columns {
		if err := p.decode(&row, column, values[i]); err != nil {
			return record.DataRow{}, fmt.Errorf("column %s: %w", column, err)
		}
	}

	return row, nil
}

func (p *DataParser) decode(row *record.DataRow, column, value string) error {
	var err error
	switch column {
	case "sats":
		var n int
		n, err = strconv.Atoi(value)
		row.Satellites = common.ParseSatelliteInfo(n)
	case "time":
		if p.raw {
			row.Time = value
		} else {
			row.Time, err = common.ParseTime(value)
		}
	case "lat":
		row.Latitude, err = p.coordinate(value)
	case "long":
		row.Longitude, err = p.coordinate(value)
	case "velocity":
		row.Velocity, err = p.float(value)
	case "heading":
		row.Heading, err = p.float(value)
	case "height":
		row.Height, err = p.float(value)
	case "vertvel":
		row.VerticalVelocity, err = p.float(value)
	case "event1":
		row.TriggerEventTime, err = p.integer(value)
	default:
		row.Channels[column], err = p.channel(value)
	}
	return err
}

func (p *DataParser) coordinate(value string) (record.Value, error) {
	if !p.convert {
		f, err := strconv.ParseFloat(value, 64)
		return record.Float(f), err
	}
	mag, positive := common.SplitSign(value)
	f, err := common.ToDecimalDegrees(mag, positive)
	return record.Float(f), err
}

func (p *DataParser) float(value string) (record.Value, error) {
	if p.raw {
		return record.Raw(value), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	return record.Float(f), err
}

func (p *DataParser) integer(value string) (record.Value, error) {
	if p.raw {
		return record.Raw(value), nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	return record.Integer(n), err
}

func (p *DataParser) channel(value string) (record.Value, error) {
	if p.raw {
		return record.Raw(value), nil
	}
	if strings.Contains(value, "E") {
		f, err := common.ParseExponentialChannel(value)
		return record.Exponential(f), err
	}
	f, err := strconv.ParseFloat(value, 64)
	return record.Float(f), err
}

// ParseData decodes every data line in content. firstLine is the line number
// of content's first line in the original input, used in diagnostics.
//
// Blank lines and lines starting with '[' are ignored. A column count
// mismatch aborts with a *StructuralError. Any other decoding failure drops
// the line, records it in the returned skipped rows, and logs a warning.
func (p *DataParser) ParseData(content string, firstLine int) ([]record.DataRow, []record.SkippedRow, error) {
	lines := strings.Split(content, "\n")
	rows := make([]record.DataRow, 0, len(lines))
	var skipped []record.SkippedRow

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		lineNo := firstLine + i

		row, err := p.ParseRow(line)
		if err != nil {
			var se *StructuralError
			if errors.As(err, &se) {
				se.Line = lineNo
				return nil, nil, se
			}
			p.log.WithFields(logrus.Fields{
				"line":   lineNo,
				"reason": err.Error(),
			}).Warn("skipping malformed data row")
			skipped = append(skipped, record.SkippedRow{
				Line:   lineNo,
				Text:   line,
				Err:    err,
				Reason: err.Error(),
			})
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped, nil
}
