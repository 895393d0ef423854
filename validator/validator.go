/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides consistency checks for parsed VBO logs.
//
// The parser accepts any file whose rows match the column schema. The
// checks here look for content that parses but is unlikely to be right.
package validator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"bennypowers.dev/vbo/parser/common"
	"bennypowers.dev/vbo/record"
)

// ValidationError represents a consistency problem in a parsed file.
type ValidationError struct {
	// FilePath is the path to the file containing the problem.
	FilePath string
	// Path locates the problem, e.g. "header.channelUnits" or "data[12]".
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Options configures the checks.
type Options struct {
	// FilePath is copied into every ValidationError.
	FilePath string

	// DecimalDegrees reports that lat/long hold decimal degrees, enabling range checks.
	DecimalDegrees bool
}

// midnight is the backwards step, in seconds, treated as a day rollover.
const midnight = 12 * 60 * 60

// Recognized columns; everything else is an input channel.
var standardColumns = map[string]bool{
	"sats": true, "time": true, "lat": true, "long": true, "velocity": true,
	"heading": true, "height": true, "vertvel": true, "event1": true,
}

// Check runs every consistency check on file.
// Returns:
// - Duplicate column names (later channels overwrite earlier ones)
// - A [channel units] list whose length differs from the channel count
// - Timestamps that go backwards
// - Sample spacing that disagrees with the logged rate
// - Rows without a satellite fix
// - Decimal coordinates outside -90..90 or -180..180 (advisory only)
func Check(file *record.File, opts Options) []ValidationError {
	var errors []ValidationError
	errors = append(errors, checkColumns(file.Header, opts)...)
	errors = append(errors, checkTiming(file, opts)...)
	errors = append(errors, checkFix(file, opts)...)
	if opts.DecimalDegrees {
		errors = append(errors, checkCoordinates(file, opts)...)
	}
	return errors
}

func checkColumns(h record.Header, opts Options) []ValidationError {
	var errors []ValidationError

	seen := make(map[string]bool, len(h.ColumnNames))
	channels := 0
	for _, name := range h.ColumnNames {
		key := strings.ToLower(name)
		if seen[key] {
			errors = append(errors, ValidationError{
				FilePath:   opts.FilePath,
				Path:       "header.columnNames",
				Message:    fmt.Sprintf("column %q appears more than once", name),
				Suggestion: "only the last occurrence of a channel is kept",
			})
			continue
		}
		seen[key] = true
		if !standardColumns[key] {
			channels++
		}
	}

	if n := len(h.ChannelUnits); n > 0 && n != channels {
		errors = append(errors, ValidationError{
			FilePath:   opts.FilePath,
			Path:       "header.channelUnits",
			Message:    fmt.Sprintf("%d channel units listed for %d channels", n, channels),
			Suggestion: "list one unit per input channel in [channel units]",
		})
	}

	return errors
}

func checkTiming(file *record.File, opts Options) []ValidationError {
	var errors []ValidationError

	var prev float64
	havePrev := false
	var intervals []float64
	for i := range file.Data {
		t, ok := common.SecondsOfDay(file.Data[i].Time)
		if !ok {
			// Raw or missing time column.
			return errors
		}
		if havePrev {
			delta := t - prev
			if delta < -midnight {
				delta += 24 * 60 * 60
			}
			if delta < 0 {
				errors = append(errors, ValidationError{
					FilePath: opts.FilePath,
					Path:     fmt.Sprintf("data[%d]", i),
					Message:  fmt.Sprintf("time %s is earlier than the previous row", file.Data[i].Time),
				})
			} else if delta > 0 {
				intervals = append(intervals, delta)
			}
		}
		prev, havePrev = t, true
	}

	rate := file.Header.VboxInfo.LogRate
	if rate > 0 && len(intervals) > 0 {
		observed := 1 / median(intervals)
		if math.Abs(observed-rate)/rate > 0.5 {
			errors = append(errors, ValidationError{
				FilePath:   opts.FilePath,
				Path:       "header.vboxInfo.logRate",
				Message:    fmt.Sprintf("log rate is %g Hz but rows are %.3g Hz apart", rate, observed),
				Suggestion: "the file may have been resampled or truncated",
			})
		}
	}

	return errors
}

func checkFix(file *record.File, opts Options) []ValidationError {
	if !file.Header.HasColumn("sats") {
		return nil
	}
	noFix := 0
	first := -1
	for i := range file.Data {
		if file.Data[i].Satellites.Count == 0 {
			noFix++
			if first < 0 {
				first = i
			}
		}
	}
	if noFix == 0 {
		return nil
	}
	return []ValidationError{{
		FilePath:   opts.FilePath,
		Path:       fmt.Sprintf("data[%d]", first),
		Message:    fmt.Sprintf("%d of %d rows have no satellite fix", noFix, len(file.Data)),
		Suggestion: "positions in these rows are not reliable",
	}}
}

// checkCoordinates only flags values no decimal coordinate can take. It does
// not judge whether a position is physically plausible, and the parser keeps
// every row regardless.
func checkCoordinates(file *record.File, opts Options) []ValidationError {
	var errors []ValidationError
	for i := range file.Data {
		row := &file.Data[i]
		if lat, ok := row.Latitude.Float64(); ok && math.Abs(lat) > 90 {
			errors = append(errors, ValidationError{
				FilePath: opts.FilePath,
				Path:     fmt.Sprintf("data[%d].latitude", i),
				Message:  fmt.Sprintf("latitude %g is out of range", lat),
			})
		}
		if long, ok := row.Longitude.Float64(); ok && math.Abs(long) > 180 {
			errors = append(errors, ValidationError{
				FilePath: opts.FilePath,
				Path:     fmt.Sprintf("data[%d].longitude", i),
				Message:  fmt.Sprintf("longitude %g is out of range", long),
			})
		}
	}
	return errors
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
