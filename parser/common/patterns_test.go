/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"regexp"
	"testing"

	"bennypowers.dev/vbo/parser/common"
)

func TestDeviceInfoPatterns(t *testing.T) {
	tests := []struct {
		name     string
		pattern  *regexp.Regexp
		line     string
		expected string
	}{
		{"version", common.VersionPattern, "VBox II Version 4.5a", "4.5a"},
		{"gps", common.GPSPattern, "GPS : SSX2g", "SSX2g"},
		{"gps without spaces", common.GPSPattern, "GPS:SSX3g", "SSX3g"},
		{"serial number", common.SerialNumberPattern, "Serial Number : 005201", "005201"},
		{"cf version", common.CFVersionPattern, "CF Version 2.1d", "2.1d"},
		{"log rate", common.LogRatePattern, "Log Rate (Hz) : 02.00", "02.00"},
		{"software version", common.SoftwareVersionPattern, "Software Version : 1.4.5 (Build 005)", "1.4.5 (Build 005)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := common.ExtractValue(tt.line, tt.pattern)
			if !ok {
				t.Fatalf("no match for %q", tt.line)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractValue_NoMatch(t *testing.T) {
	if v, ok := common.ExtractValue("Log Rate : 10", common.LogRatePattern); ok {
		t.Errorf("expected no match, got %q", v)
	}
}

func TestTimePattern_Anchored(t *testing.T) {
	if common.TimePattern.MatchString("x162235.40") {
		t.Error("time pattern should only match at the start of the token")
	}
	if !common.TimePattern.MatchString("162235.40") {
		t.Error("time pattern should match a packed time")
	}
}
