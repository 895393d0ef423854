/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"bennypowers.dev/vbo/record"
)

// Bits of the sats column.
const (
	satelliteCountMask = 0x3F
	brakeTriggerBit    = 0x40
	dgpsBit            = 0x80
)

// ParseSatelliteInfo decodes the sats bitfield.
func ParseSatelliteInfo(value int) record.Satellites {
	return record.Satellites{
		Count:        value & satelliteCountMask,
		BrakeTrigger: value&brakeTriggerBit != 0,
		HasDGPS:      value&dgpsBit != 0,
	}
}

// ParseTime converts a packed HHMMSS.ss token to HH:MM:SS.ss.
func ParseTime(raw string) (string, error) {
	m := TimePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", &FormatError{Kind: ErrInvalidTime, Input: raw}
	}
	return m[1] + ":" + m[2] + ":" + m[3], nil
}

// SecondsOfDay returns the offset from midnight of a decoded HH:MM:SS.ss time.
// Undecoded HHMMSS.ss tokens report false.
func SecondsOfDay(clock string) (float64, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	sec, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return float64(h*3600+m*60) + sec, true
}

// ParseExponentialChannel parses an input channel value such as +1.23456E+02.
func ParseExponentialChannel(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

// ParseCreationDate extracts the creation timestamp from a header line.
// Three historical variants are accepted, tried in this order:
//
//	DD/MM/YYYY at HH:MM:SS
//	YYYYMMDD-HHMMSS
//	DD/MM/YYYY @ HH:MM
//
// The timestamp is built in loc, or time.Local when loc is nil.
func ParseCreationDate(line string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	if m := CreationDateAtPattern.FindStringSubmatch(line); m != nil {
		return buildDate(m[3], m[2], m[1], m[4], m[5], m[6], loc), nil
	}
	if m := CreationDateCompactPattern.FindStringSubmatch(line); m != nil {
		return buildDate(m[1], m[2], m[3], m[4], m[5], m[6], loc), nil
	}
	if m := CreationDateShortPattern.FindStringSubmatch(line); m != nil {
		return buildDate(m[3], m[2], m[1], m[4], m[5], "0", loc), nil
	}

	return time.Time{}, &FormatError{Kind: ErrInvalidCreationDate, Input: line}
}

// buildDate assembles a timestamp from digit-only captures.
// time.Month is 1-based like the text, so no month offset is applied.
func buildDate(year, month, day, hour, minute, second string, loc *time.Location) time.Time {
	return time.Date(
		atoi(year),
		time.Month(atoi(month)),
		atoi(day),
		atoi(hour),
		atoi(minute),
		atoi(second),
		0,
		loc,
	)
}

// atoi parses a capture that the pattern already restricted to digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ExtractValue returns the first capture group of pattern in line.
func ExtractValue(line string, pattern *regexp.Regexp) (string, bool) {
	m := pattern.FindStringSubmatch(line)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// SplitLine trims a line and splits it on runs of Unicode whitespace.
// A blank line yields no tokens.
func SplitLine(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return strings.Fields(line)
}

// IsEmptyLine reports whether line is blank after trimming.
func IsEmptyLine(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}
