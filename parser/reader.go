/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeText converts raw VBO bytes to a string.
//
// Valid UTF-8 is used as is, minus a leading byte order mark. Anything else is
// decoded as Windows-1252, the code page older VBOX Tools releases write the
// degree and not signs in.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		b, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode UTF-8: %w", err)
		}
		return string(b), nil
	}

	b, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode Windows-1252: %w", err)
	}
	return string(b), nil
}
