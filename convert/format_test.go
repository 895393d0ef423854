/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/vbo/convert"
	"bennypowers.dev/vbo/parser"
	"bennypowers.dev/vbo/record"
	"bennypowers.dev/vbo/testutil"
)

func loadTestFile(t *testing.T, fixture string, opts parser.Options) *record.File {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	opts.Location = time.UTC
	opts.Logger = log

	file, err := parser.Parse(testutil.LoadFixtureFile(t, fixture), opts)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", fixture, err)
	}
	return file
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"json", convert.FormatJSON, false},
		{"", convert.FormatJSON, false},
		{"JSON", convert.FormatJSON, false},
		{"yaml", convert.FormatYAML, false},
		{"yml", convert.FormatYAML, false},
		{"csv", convert.FormatCSV, false},
		{"NMEA", convert.FormatNMEA, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range convert.ValidFormats() {
		if _, err := convert.ParseFormat(f); err != nil {
			t.Errorf("valid format %q failed to parse: %v", f, err)
		}
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/sample.vbo", parser.Options{})
	if _, err := convert.Render(file, convert.Format("xml"), convert.Options{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRender_CSV(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/sample.vbo", parser.Options{ConvertCoordinates: parser.Bool(false)})

	out, err := convert.Render(file, convert.FormatCSV, convert.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.CompareGolden(t, "fixtures/golden/sample.csv", out)
}

func TestRender_CSVTitlesAndChannels(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/racebox.vbo", parser.Options{})

	out, err := convert.Render(file, convert.FormatCSV, convert.Options{Comma: ';', TitleColumns: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}

	expectedHeading := "Satellites;Time;Latitude;Longitude;Velocity;Heading;Height;Vertical Velocity;Trigger Event Time;Rpm;Throttle"
	if lines[0] != expectedHeading {
		t.Errorf("heading = %q, want %q", lines[0], expectedHeading)
	}
	if !strings.HasSuffix(lines[1], ";3500;12.5") {
		t.Errorf("expected channel values at end of row, got %q", lines[1])
	}
}

func TestRender_JSON(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/sample.vbo", parser.Options{})

	out, err := convert.Render(file, convert.FormatJSON, convert.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Header struct {
			CreationDate time.Time `json:"creationDate"`
			VboxInfo     struct {
				SerialNumber string  `json:"serialNumber"`
				LogRate      float64 `json:"logRate"`
			} `json:"vboxInfo"`
			LapTiming []any `json:"lapTiming"`
		} `json:"header"`
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if doc.Header.VboxInfo.SerialNumber != "005201" {
		t.Errorf("expected serial number '005201', got %q", doc.Header.VboxInfo.SerialNumber)
	}
	if doc.Header.VboxInfo.LogRate != 2 {
		t.Errorf("expected log rate 2, got %v", doc.Header.VboxInfo.LogRate)
	}
	if !doc.Header.CreationDate.Equal(time.Date(2006, time.July, 31, 9, 55, 20, 0, time.UTC)) {
		t.Errorf("unexpected creation date %v", doc.Header.CreationDate)
	}
	if doc.Header.LapTiming == nil {
		t.Error("expected lapTiming to be an empty array, not null")
	}
	if len(doc.Data) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(doc.Data))
	}
	if v, ok := doc.Data[0]["velocity"].(float64); !ok || v != 0.14 {
		t.Errorf("expected numeric velocity 0.14, got %#v", doc.Data[0]["velocity"])
	}
	if _, ok := doc.Data[0]["channels"]; ok {
		t.Error("expected channels to be omitted when the schema has none")
	}
}

func TestRender_JSONRaw(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/sample.vbo", parser.Options{RawData: true})

	out, err := convert.Render(file, convert.FormatJSON, convert.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"velocity": "000.140"`) {
		t.Errorf("expected raw velocity string in output:\n%s", out)
	}
}

func TestRender_YAML(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/racebox.vbo", parser.Options{})

	out, err := convert.Render(file, convert.FormatYAML, convert.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Header struct {
			LapTiming []struct {
				Label string `yaml:"label"`
				Start struct {
					Latitude string `yaml:"latitude"`
				} `yaml:"startCoordinates"`
				Description string `yaml:"description"`
			} `yaml:"lapTiming"`
		} `yaml:"header"`
		Data []struct {
			Channels map[string]float64 `yaml:"channels"`
		} `yaml:"data"`
	}
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	if len(doc.Header.LapTiming) != 1 {
		t.Fatalf("expected 1 lap timing point, got %d", len(doc.Header.LapTiming))
	}
	lap := doc.Header.LapTiming[0]
	if lap.Label != "Start" || lap.Description != "Start / Finish" {
		t.Errorf("unexpected lap timing point %+v", lap)
	}
	if lap.Start.Latitude != `45°0'35.13"N` {
		t.Errorf("unexpected start latitude %q", lap.Start.Latitude)
	}
	if len(doc.Data) != 2 || doc.Data[0].Channels["rpm"] != 3500 {
		t.Errorf("unexpected data rows %+v", doc.Data)
	}
}

func TestRender_NMEA(t *testing.T) {
	file := loadTestFile(t, "fixtures/vbo/sample.vbo", parser.Options{})

	if _, err := convert.Render(file, convert.FormatNMEA, convert.Options{}); err == nil {
		t.Error("expected error when coordinates are not known to be decimal")
	}

	out, err := convert.Render(file, convert.FormatNMEA, convert.Options{DecimalDegrees: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(string(out), "$GPRMC,"); got != 3 {
		t.Errorf("expected 3 RMC sentences, got %d:\n%s", got, out)
	}
}
