/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides the scalar converters shared by the VBO header and data parsers.
package common

import "regexp"

// Shared regex patterns for VBO header and data tokens.

// TimePattern matches a packed HHMMSS.ss time token at the start of the input.
var TimePattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2}\.\d+)`)

// CreationDateAtPattern matches "DD/MM/YYYY at HH:MM:SS".
var CreationDateAtPattern = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+at\s+(\d{2}):(\d{2}):(\d{2})`)

// CreationDateCompactPattern matches "YYYYMMDD-HHMMSS".
var CreationDateCompactPattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})-(\d{2})(\d{2})(\d{2})`)

// CreationDateShortPattern matches "DD/MM/YYYY @ HH:MM".
var CreationDateShortPattern = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+@\s+(\d{2}):(\d{2})`)

// Device info patterns for the [comments] section.
var (
	VersionPattern         = regexp.MustCompile(`Version\s+(.+)`)
	GPSPattern             = regexp.MustCompile(`GPS\s*:\s*(.+)`)
	SerialNumberPattern    = regexp.MustCompile(`Serial Number\s*:\s*(.+)`)
	CFVersionPattern       = regexp.MustCompile(`CF Version\s+(.+)`)
	LogRatePattern         = regexp.MustCompile(`Log Rate \(Hz\)\s*:\s*(.+)`)
	SoftwareVersionPattern = regexp.MustCompile(`Software Version\s*:\s*(.+)`)
)

