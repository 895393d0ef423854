/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package record_test

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/vbo/record"
)

func TestValue_Accessors(t *testing.T) {
	tests := []struct {
		name    string
		value   record.Value
		kind    record.Kind
		float   float64
		integer int64
		ok      bool
		str     string
	}{
		{"float", record.Float(12.5), record.KindFloat, 12.5, 12, true, "12.5"},
		{"integer", record.Integer(42), record.KindInteger, 42, 42, true, "42"},
		{"exponential", record.Exponential(3500), record.KindExponential, 3500, 3500, true, "3500"},
		{"raw", record.Raw("+3.50000E+03"), record.KindRaw, 0, 0, false, "+3.50000E+03"},
		{"zero", record.Value{}, record.KindFloat, 0, 0, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.value.IsRaw(); got != (tt.kind == record.KindRaw) {
				t.Errorf("IsRaw() = %v", got)
			}
			f, ok := tt.value.Float64()
			if ok != tt.ok || f != tt.float {
				t.Errorf("Float64() = %v, %v; want %v, %v", f, ok, tt.float, tt.ok)
			}
			i, ok := tt.value.Int64()
			if ok != tt.ok || i != tt.integer {
				t.Errorf("Int64() = %v, %v; want %v, %v", i, ok, tt.integer, tt.ok)
			}
			if got := tt.value.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestValue_Comparable(t *testing.T) {
	if record.Float(1) != record.Float(1) {
		t.Error("expected equal floats to compare equal")
	}
	if record.Float(1) == record.Exponential(1) {
		t.Error("expected kinds to distinguish values")
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		value    record.Value
		expected string
	}{
		{record.Float(0.14), `0.14`},
		{record.Integer(12), `12`},
		{record.Exponential(3500), `3500`},
		{record.Raw("000.140"), `"000.140"`},
		{record.Float(math.Inf(1)), `"+Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, data)
			}
		})
	}
}

func TestValue_MarshalYAML(t *testing.T) {
	row := record.DataRow{
		Time:     "16:22:35.40",
		Velocity: record.Raw("000.140"),
		Channels: map[string]record.Value{"rpm": record.Exponential(3500)},
	}
	data, err := yaml.Marshal(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Velocity string             `yaml:"velocity"`
		Channels map[string]float64 `yaml:"channels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, data)
	}
	if doc.Velocity != "000.140" {
		t.Errorf("expected raw velocity string, got %q", doc.Velocity)
	}
	if doc.Channels["rpm"] != 3500 {
		t.Errorf("expected rpm 3500, got %v", doc.Channels["rpm"])
	}
}

func TestDataRow_Channel(t *testing.T) {
	row := record.DataRow{Channels: map[string]record.Value{"rpm": record.Float(3500)}}

	if v, ok := row.Channel("RPM"); !ok || v != record.Float(3500) {
		t.Errorf("expected case-insensitive lookup, got %v, %v", v, ok)
	}
	if _, ok := row.Channel("throttle"); ok {
		t.Error("expected missing channel to report false")
	}
}

func TestHeader_HasColumn(t *testing.T) {
	h := record.Header{ColumnNames: []string{"sats", "time", "Lat"}}

	if !h.HasColumn("SATS") || !h.HasColumn("lat") {
		t.Error("expected case-insensitive column match")
	}
	if h.HasColumn("velocity") {
		t.Error("expected missing column to report false")
	}
	if (record.Header{}).HasColumn("sats") {
		t.Error("expected empty schema to have no columns")
	}
}

func TestKind_String(t *testing.T) {
	if got := record.KindExponential.String(); got != "exponential" {
		t.Errorf("expected 'exponential', got %q", got)
	}
	if got := record.Kind(99).String(); got != "unknown" {
		t.Errorf("expected 'unknown', got %q", got)
	}
}
