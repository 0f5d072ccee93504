/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// Encoding describes a simple font's character encoding: whether the font is
// symbolic and, for non-symbolic fonts, how character codes map to glyph
// names.
type Encoding interface {
	// BaseFont returns the name of the font the encoding belongs to, for
	// diagnostics only.
	BaseFont() string
	// IsSymbolic reports whether the font's codes address glyphs directly
	// rather than through a standard character set.
	IsSymbolic() bool
	// GlyphName returns the glyph name for character code `code`.
	GlyphName(code int) (string, bool)
}

// SimpleEncoding is a map-backed Encoding for simple (one-byte) fonts.
type SimpleEncoding struct {
	baseFont    string
	symbolic    bool
	codeToGlyph map[int]string
}

// NewSimpleEncoding returns an Encoding for font `baseFont` backed by the
// code-to-glyph-name map `codeToGlyph`. The map is not copied; callers must
// not mutate it afterwards.
func NewSimpleEncoding(baseFont string, symbolic bool, codeToGlyph map[int]string) *SimpleEncoding {
	return &SimpleEncoding{
		baseFont:    baseFont,
		symbolic:    symbolic,
		codeToGlyph: codeToGlyph,
	}
}

// BaseFont returns the name of the font the encoding belongs to.
func (e *SimpleEncoding) BaseFont() string {
	return e.baseFont
}

// IsSymbolic reports whether the font is symbolic.
func (e *SimpleEncoding) IsSymbolic() bool {
	return e.symbolic
}

// GlyphName returns the glyph name for character code `code`.
func (e *SimpleEncoding) GlyphName(code int) (string, bool) {
	name, has := e.codeToGlyph[code]
	return name, has
}

// NewStandardEncoding returns the Adobe StandardEncoding for font `baseFont`,
// covering the printable Latin range.
func NewStandardEncoding(baseFont string) *SimpleEncoding {
	m := make(map[int]string, len(standardEncodingNames))
	for code, name := range standardEncodingNames {
		m[code] = name
	}
	return NewSimpleEncoding(baseFont, false, m)
}

// standardEncodingNames is the printable portion of Adobe StandardEncoding.
var standardEncodingNames = map[int]string{
	32: "space", 33: "exclam", 34: "quotedbl", 35: "numbersign",
	36: "dollar", 37: "percent", 38: "ampersand", 39: "quoteright",
	40: "parenleft", 41: "parenright", 42: "asterisk", 43: "plus",
	44: "comma", 45: "hyphen", 46: "period", 47: "slash",
	48: "zero", 49: "one", 50: "two", 51: "three",
	52: "four", 53: "five", 54: "six", 55: "seven",
	56: "eight", 57: "nine", 58: "colon", 59: "semicolon",
	60: "less", 61: "equal", 62: "greater", 63: "question",
	64: "at", 65: "A", 66: "B", 67: "C", 68: "D", 69: "E", 70: "F",
	71: "G", 72: "H", 73: "I", 74: "J", 75: "K", 76: "L", 77: "M",
	78: "N", 79: "O", 80: "P", 81: "Q", 82: "R", 83: "S", 84: "T",
	85: "U", 86: "V", 87: "W", 88: "X", 89: "Y", 90: "Z",
	91: "bracketleft", 92: "backslash", 93: "bracketright",
	94: "asciicircum", 95: "underscore", 96: "quoteleft",
	97: "a", 98: "b", 99: "c", 100: "d", 101: "e", 102: "f",
	103: "g", 104: "h", 105: "i", 106: "j", 107: "k", 108: "l",
	109: "m", 110: "n", 111: "o", 112: "p", 113: "q", 114: "r",
	115: "s", 116: "t", 117: "u", 118: "v", 119: "w", 120: "x",
	121: "y", 122: "z", 123: "braceleft", 124: "bar",
	125: "braceright", 126: "asciitilde",
}
