/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decompose splits a packed VBOX coordinate into whole degrees and remaining minutes.
// The packed form is total minutes, DDDMM.MMMMM, so degrees = floor(v/60).
func decompose(raw string) (degrees, minutes float64, err error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, &FormatError{Kind: ErrInvalidCoordinate, Input: raw}
	}
	v = math.Abs(v)
	return math.Floor(v / 60), math.Mod(v, 60), nil
}

// ConvertCoordinate renders a packed coordinate as degrees, minutes and seconds,
// e.g. 39°21'36.02"N.
//
// Latitude direction is N when positive and S when negative.
// Longitude direction is W when positive and E when negative, which is how
// VBOX files sign longitude.
func ConvertCoordinate(raw string, isPositive, isLatitude bool) (string, error) {
	degrees, remaining, err := decompose(raw)
	if err != nil {
		return "", err
	}
	minutes := math.Floor(remaining)
	seconds := (remaining - minutes) * 60

	var dir string
	switch {
	case isLatitude && isPositive:
		dir = "N"
	case isLatitude:
		dir = "S"
	case isPositive:
		dir = "W"
	default:
		dir = "E"
	}

	return fmt.Sprintf("%d°%d'%.2f\"%s", int64(degrees), int64(minutes), seconds, dir), nil
}

// ToDecimalDegrees converts a packed coordinate to signed decimal degrees.
func ToDecimalDegrees(raw string, isPositive bool) (float64, error) {
	degrees, remaining, err := decompose(raw)
	if err != nil {
		return 0, err
	}
	dec := degrees + remaining/60
	if !isPositive {
		dec = -dec
	}
	return dec, nil
}

// SplitSign separates a leading '+' or '-' from a coordinate token.
// Tokens without a sign character are returned whole and reported as not positive.
func SplitSign(token string) (magnitude string, isPositive bool) {
	switch {
	case strings.HasPrefix(token, "+"):
		return token[1:], true
	case strings.HasPrefix(token, "-"):
		return token[1:], false
	default:
		return token, false
	}
}
