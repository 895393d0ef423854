/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindFloat is a plainly parsed decimal number. The zero Value is a float 0.
	KindFloat Kind = iota

	// KindInteger is a whole number, such as the event1 clock count.
	KindInteger

	// KindExponential is a float parsed from scientific notation (+1.23456E+02).
	KindExponential

	// KindRaw is the original token, kept when raw data is requested.
	KindRaw
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindExponential:
		return "exponential"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Value is a decoded data cell. Values are immutable and comparable.
type Value struct {
	kind Kind
	f    float64
	i    int64
	raw  string
}

// Float returns a KindFloat value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Integer returns a KindInteger value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Exponential returns a KindExponential value.
func Exponential(f float64) Value {
	return Value{kind: KindExponential, f: f}
}

// Raw returns a KindRaw value holding the token unchanged.
func Raw(s string) Value {
	return Value{kind: KindRaw, raw: s}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsRaw reports whether v holds an undecoded token.
func (v Value) IsRaw() bool {
	return v.kind == KindRaw
}

// Float64 returns v as a float. It reports false for raw values.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat, KindExponential:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Int64 returns v as an integer. Floats are truncated. It reports false for raw values.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.i, true
	case KindFloat, KindExponential:
		return int64(v.f), true
	default:
		return 0, false
	}
}

// String renders v. Raw values render as the original token.
func (v Value) String() string {
	switch v.kind {
	case KindRaw:
		return v.raw
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	default:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
}

// MarshalJSON encodes numbers as JSON numbers and raw tokens as strings.
// NaN and infinities have no JSON number form and are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindRaw:
		return json.Marshal(v.raw)
	case KindInteger:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	default:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return json.Marshal(v.String())
		}
		return json.Marshal(v.f)
	}
}

// MarshalYAML encodes v as its natural scalar.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindRaw:
		return v.raw, nil
	case KindInteger:
		return v.i, nil
	default:
		return v.f, nil
	}
}

func lower(s string) string {
	return strings.ToLower(s)
}
