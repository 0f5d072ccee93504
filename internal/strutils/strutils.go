/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package strutils provides string decoding helpers for font string data.
package strutils

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/fontmill/glyph2d/common"
)

var utf16Dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

// UTF16ToString decodes the UTF-16BE encoded byte slice `b` to a string.
func UTF16ToString(b []byte) string {
	decoded, err := utf16Dec.Bytes(b)
	if err != nil {
		common.Log.Debug("UTF16ToString decode error: %v", err)
		return ""
	}
	return string(decoded)
}
