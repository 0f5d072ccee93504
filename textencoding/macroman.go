/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"golang.org/x/text/encoding/charmap"
)

// macRomanByRune is the reverse of the Macintosh Roman charmap, built once at
// init from golang.org/x/text.
var macRomanByRune = map[rune]byte{}

func init() {
	for b := 0; b < 256; b++ {
		r := charmap.Macintosh.DecodeByte(byte(b))
		if r == '�' {
			continue
		}
		if _, has := macRomanByRune[r]; !has {
			macRomanByRune[r] = byte(b)
		}
	}
}

// MacRomanCode returns the Macintosh Roman byte code for glyph name `name`.
// The name is first resolved to a Unicode code point, then reverse-mapped
// through the Macintosh Roman character set.
func MacRomanCode(name string) (byte, bool) {
	r, ok := RuneForGlyphName(name)
	if !ok {
		return 0, false
	}
	b, has := macRomanByRune[r]
	return b, has
}
