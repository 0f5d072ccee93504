/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"strconv"
	"strings"

	"github.com/fontmill/glyph2d/common"
)

// RuneForGlyphName returns the Unicode code point for glyph name `name`.
// Names of the form uniXXXX and uXXXX[XX] are decoded directly; other names
// are resolved through the Adobe glyph list.
func RuneForGlyphName(name string) (rune, bool) {
	if r, ok := glyphlist[name]; ok {
		return r, true
	}

	if strings.HasPrefix(name, "uni") && len(name) == 7 {
		v, err := strconv.ParseUint(name[3:], 16, 32)
		if err != nil {
			common.Log.Debug("Invalid uniXXXX glyph name %q: %v", name, err)
			return 0, false
		}
		return rune(v), true
	}
	if strings.HasPrefix(name, "u") && (len(name) == 5 || len(name) == 7) {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			common.Log.Debug("Invalid uXXXX glyph name %q: %v", name, err)
			return 0, false
		}
		return rune(v), true
	}

	return 0, false
}

// glyphlist is the portion of the Adobe glyph list covering StandardEncoding,
// WinAnsiEncoding and the common Latin supplements.
var glyphlist = map[string]rune{
	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F', "G": 'G',
	"H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L', "M": 'M', "N": 'N',
	"O": 'O', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S', "T": 'T', "U": 'U',
	"V": 'V', "W": 'W', "X": 'X', "Y": 'Y', "Z": 'Z',
	"a": 'a', "b": 'b', "c": 'c', "d": 'd', "e": 'e', "f": 'f', "g": 'g',
	"h": 'h', "i": 'i', "j": 'j', "k": 'k', "l": 'l', "m": 'm', "n": 'n',
	"o": 'o', "p": 'p', "q": 'q', "r": 'r', "s": 's', "t": 't', "u": 'u',
	"v": 'v', "w": 'w', "x": 'x', "y": 'y', "z": 'z',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',

	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"parenleft": '(', "parenright": ')', "asterisk": '*', "plus": '+',
	"comma": ',', "hyphen": '-', "period": '.', "slash": '/',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=',
	"greater": '>', "question": '?', "at": '@',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',

	"quoteleft": 0x2018, "quoteright": 0x2019,
	"quotedblleft": 0x201C, "quotedblright": 0x201D,
	"quotesinglbase": 0x201A, "quotedblbase": 0x201E,
	"endash": 0x2013, "emdash": 0x2014,
	"bullet": 0x2022, "ellipsis": 0x2026,
	"dagger": 0x2020, "daggerdbl": 0x2021,
	"perthousand": 0x2030, "guilsinglleft": 0x2039, "guilsinglright": 0x203A,
	"fraction": 0x2044, "florin": 0x0192,
	"trademark": 0x2122, "minus": 0x2212,
	"fi": 0xFB01, "fl": 0xFB02,

	"exclamdown": 0xA1, "cent": 0xA2, "sterling": 0xA3, "currency": 0xA4,
	"yen": 0xA5, "brokenbar": 0xA6, "section": 0xA7, "dieresis": 0xA8,
	"copyright": 0xA9, "ordfeminine": 0xAA, "guillemotleft": 0xAB,
	"logicalnot": 0xAC, "registered": 0xAE, "macron": 0xAF,
	"degree": 0xB0, "plusminus": 0xB1, "acute": 0xB4, "mu": 0xB5,
	"paragraph": 0xB6, "periodcentered": 0xB7, "cedilla": 0xB8,
	"ordmasculine": 0xBA, "guillemotright": 0xBB, "onequarter": 0xBC,
	"onehalf": 0xBD, "threequarters": 0xBE, "questiondown": 0xBF,

	"Agrave": 0xC0, "Aacute": 0xC1, "Acircumflex": 0xC2, "Atilde": 0xC3,
	"Adieresis": 0xC4, "Aring": 0xC5, "AE": 0xC6, "Ccedilla": 0xC7,
	"Egrave": 0xC8, "Eacute": 0xC9, "Ecircumflex": 0xCA, "Edieresis": 0xCB,
	"Igrave": 0xCC, "Iacute": 0xCD, "Icircumflex": 0xCE, "Idieresis": 0xCF,
	"Eth": 0xD0, "Ntilde": 0xD1, "Ograve": 0xD2, "Oacute": 0xD3,
	"Ocircumflex": 0xD4, "Otilde": 0xD5, "Odieresis": 0xD6, "multiply": 0xD7,
	"Oslash": 0xD8, "Ugrave": 0xD9, "Uacute": 0xDA, "Ucircumflex": 0xDB,
	"Udieresis": 0xDC, "Yacute": 0xDD, "Thorn": 0xDE, "germandbls": 0xDF,
	"agrave": 0xE0, "aacute": 0xE1, "acircumflex": 0xE2, "atilde": 0xE3,
	"adieresis": 0xE4, "aring": 0xE5, "ae": 0xE6, "ccedilla": 0xE7,
	"egrave": 0xE8, "eacute": 0xE9, "ecircumflex": 0xEA, "edieresis": 0xEB,
	"igrave": 0xEC, "iacute": 0xED, "icircumflex": 0xEE, "idieresis": 0xEF,
	"eth": 0xF0, "ntilde": 0xF1, "ograve": 0xF2, "oacute": 0xF3,
	"ocircumflex": 0xF4, "otilde": 0xF5, "odieresis": 0xF6, "divide": 0xF7,
	"oslash": 0xF8, "ugrave": 0xF9, "uacute": 0xFA, "ucircumflex": 0xFB,
	"udieresis": 0xFC, "yacute": 0xFD, "thorn": 0xFE, "ydieresis": 0xFF,

	"OE": 0x152, "oe": 0x153, "Scaron": 0x160, "scaron": 0x161,
	"Ydieresis": 0x178, "Zcaron": 0x17D, "zcaron": 0x17E,
	"circumflex": 0x2C6, "tilde": 0x2DC, "breve": 0x2D8, "dotaccent": 0x2D9,
	"ring": 0x2DA, "ogonek": 0x2DB, "caron": 0x2C7, "hungarumlaut": 0x2DD,
	"Euro": 0x20AC,
	"Lslash": 0x141, "lslash": 0x142, "dotlessi": 0x131,
}
