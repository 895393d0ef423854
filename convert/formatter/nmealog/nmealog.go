/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nmealog renders VBO data rows as NMEA 0183 RMC sentences,
// for tools that replay GPS logs.
package nmealog

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"

	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/parser/common"
	"bennypowers.dev/vbo/record"
)

// ErrPackedCoordinates is returned when lat/long were not converted to decimal degrees.
var ErrPackedCoordinates = errors.New("nmea output requires decimal coordinates")

// knotsPerKmh converts VBOX velocity (km/h) to RMC speed over ground.
const knotsPerKmh = 1 / 1.852

// Formatter outputs one $GPRMC sentence per data row.
type Formatter struct{}

// New creates a new NMEA formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts the data rows of file to RMC sentences, one per line.
//
// The sentence date is taken from the creation date and advances when the
// row time wraps past midnight. Rows without a satellite fix are marked void.
func (f *Formatter) Format(file *record.File, opts formatter.Options) ([]byte, error) {
	if !opts.DecimalDegrees {
		return nil, ErrPackedCoordinates
	}

	hasSats := file.Header.HasColumn("sats")

	var buf bytes.Buffer
	day := file.Header.CreationDate
	prev := -1.0
	for i := range file.Data {
		row := &file.Data[i]
		clock := strings.ReplaceAll(row.Time, ":", "")

		if secs, ok := common.SecondsOfDay(row.Time); ok {
			if prev >= 0 && prev-secs > 12*60*60 {
				day = day.AddDate(0, 0, 1)
			}
			prev = secs
		}

		validity := nmea.ValidRMC
		if hasSats && row.Satellites.Count == 0 {
			validity = nmea.InvalidRMC
		}

		fields := []string{
			"GPRMC",
			clock,
			validity,
			latitude(row.Latitude),
			longitude(row.Longitude),
			speed(row.Velocity),
			number(row.Heading),
			date(day),
			"", "",
		}
		body := strings.Join(fields, ",")
		fmt.Fprintf(&buf, "$%s*%s\r\n", body, nmea.Checksum(body))
	}

	return buf.Bytes(), nil
}

// latitude renders "DDMM.MMMM,N".
func latitude(v record.Value) string {
	deg, ok := v.Float64()
	if !ok {
		return ","
	}
	dir := "N"
	if deg < 0 {
		dir = "S"
	}
	return degreesMinutes(deg, 2) + "," + dir
}

// longitude renders "DDDMM.MMMM,W". Positive VBOX longitudes are west.
func longitude(v record.Value) string {
	deg, ok := v.Float64()
	if !ok {
		return ","
	}
	dir := "W"
	if deg < 0 {
		dir = "E"
	}
	return degreesMinutes(deg, 3) + "," + dir
}

func degreesMinutes(deg float64, width int) string {
	deg = math.Abs(deg)
	whole := math.Floor(deg)
	minutes := (deg - whole) * 60
	// Avoid rendering 60.0000 minutes after rounding.
	if math.Round(minutes*1e4) >= 60*1e4 {
		whole++
		minutes = 0
	}
	return fmt.Sprintf("%0*d%07.4f", width, int(whole), minutes)
}

func speed(v record.Value) string {
	kmh, ok := v.Float64()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f", kmh*knotsPerKmh)
}

func number(v record.Value) string {
	f, ok := v.Float64()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f", f)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("020106")
}
