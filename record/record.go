/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package record provides the value types produced by parsing a VBO file.
package record

import (
	"strings"
	"time"
)

// File is the result of parsing one VBO file.
type File struct {
	// Header is the metadata found before the [data] marker.
	Header Header `json:"header" yaml:"header"`

	// Data holds one row per decoded data line, in file order.
	Data []DataRow `json:"data" yaml:"data"`

	// Skipped lists data lines that were dropped because a value failed to decode.
	Skipped []SkippedRow `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Header represents the metadata section of a VBO file.
type Header struct {
	// CreationDate is the "File created on" timestamp. Zero if the file has none.
	CreationDate time.Time `json:"creationDate" yaml:"creationDate"`

	// VboxInfo describes the logging device.
	VboxInfo VboxInfo `json:"vboxInfo" yaml:"vboxInfo"`

	// ColumnNames is the ordered data schema. Never empty after a successful parse.
	ColumnNames []string `json:"columnNames" yaml:"columnNames"`

	// ChannelUnits are the [channel units] lines, verbatim.
	ChannelUnits []string `json:"channelUnits" yaml:"channelUnits"`

	// Comments are the [comments] lines not recognized as device info.
	Comments []string `json:"comments" yaml:"comments"`

	// SecurityCode is the device security code. Empty if absent.
	SecurityCode string `json:"securityCode,omitempty" yaml:"securityCode,omitempty"`

	// LapTiming holds the [laptiming] start/finish markers.
	LapTiming []LapTimingPoint `json:"lapTiming" yaml:"lapTiming"`
}

// HasColumn reports whether name is in the schema, ignoring case.
func (h Header) HasColumn(name string) bool {
	for _, c := range h.ColumnNames {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// VboxInfo is the device information extracted from the [comments] section.
type VboxInfo struct {
	Version      string  `json:"version" yaml:"version"`
	GPSType      string  `json:"gpsType" yaml:"gpsType"`
	SerialNumber string  `json:"serialNumber" yaml:"serialNumber"`
	CFVersion    string  `json:"cfVersion" yaml:"cfVersion"`
	LogRate      float64 `json:"logRate" yaml:"logRate"`

	// SoftwareVersion is empty if the file does not name one.
	SoftwareVersion string `json:"softwareVersion,omitempty" yaml:"softwareVersion,omitempty"`
}

// Coordinates is a latitude/longitude pair rendered for display,
// such as 45°0'35.13"N.
type Coordinates struct {
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
}

// LapTimingPoint is a named start/end line on a track.
type LapTimingPoint struct {
	Label string      `json:"label" yaml:"label"`
	Start Coordinates `json:"startCoordinates" yaml:"startCoordinates"`
	End   Coordinates `json:"endCoordinates" yaml:"endCoordinates"`

	// Description is empty if the line carried none.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Satellites is the decoded sats column.
type Satellites struct {
	// Count is the number of satellites in use (0-63).
	Count        int  `json:"count" yaml:"count"`
	HasDGPS      bool `json:"hasDGPS" yaml:"hasDGPS"`
	BrakeTrigger bool `json:"brakeTrigger" yaml:"brakeTrigger"`
}

// DataRow is one decoded line of the data section.
type DataRow struct {
	Satellites       Satellites `json:"satellites" yaml:"satellites"`
	Time             string     `json:"time" yaml:"time"`
	Latitude         Value      `json:"latitude" yaml:"latitude"`
	Longitude        Value      `json:"longitude" yaml:"longitude"`
	Velocity         Value      `json:"velocity" yaml:"velocity"`
	Heading          Value      `json:"heading" yaml:"heading"`
	Height           Value      `json:"height" yaml:"height"`
	VerticalVelocity Value      `json:"verticalVelocity" yaml:"verticalVelocity"`
	TriggerEventTime Value      `json:"triggerEventTime" yaml:"triggerEventTime"`

	// Channels holds every column outside the recognized set,
	// keyed by lower-cased column name.
	Channels map[string]Value `json:"channels,omitempty" yaml:"channels,omitempty"`
}

// Channel returns the value of an additional input channel.
// The name is matched case-insensitively against the schema.
func (r *DataRow) Channel(name string) (Value, bool) {
	v, ok := r.Channels[lower(name)]
	return v, ok
}

// SkippedRow reports a data line that was dropped during parsing.
type SkippedRow struct {
	// Line is the 1-based line number in the parsed input.
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
	Err  error  `json:"-" yaml:"-"`

	// Reason is Err rendered as text, kept for serialization.
	Reason string `json:"reason" yaml:"reason"`
}
