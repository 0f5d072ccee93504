/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"io"
	"os"
)

// Font wraps font for outside access.
type Font struct {
	br *byteReader
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// ParseFile parses the truetype font from file given by path.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return Parse(f)
}

// NumGlyphs returns the number of glyphs in the font's glyph table (0 if the
// maxp table is absent).
func (f *Font) NumGlyphs() int {
	if f == nil || f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// UnitsPerEm returns the design-unit granularity of the font, or 0 if the head
// table is absent.
func (f *Font) UnitsPerEm() int {
	if f == nil || f.head == nil {
		return 0
	}
	return int(f.head.unitsPerEm)
}

// GlyphOutline returns the decoded contour points of glyph `gid`. The bool flag
// is false when the glyph has no retrievable outline (out of range, no glyph
// data, or a composite glyph).
func (f *Font) GlyphOutline(gid int) (*GlyphOutline, bool) {
	if f == nil || gid < 0 || gid >= f.NumGlyphs() {
		return nil, false
	}
	return f.glyphOutline(GlyphIndex(gid))
}

// CmapSubtables returns the character-to-glyph mapping subtables of the font,
// in file order. Empty when the font has no cmap table.
func (f *Font) CmapSubtables() []*CmapSubtable {
	if f == nil || f.cmap == nil {
		return nil
	}
	return f.cmap.subtables
}

// GlyphName returns the PostScript name of glyph `gid` from the post table.
func (f *Font) GlyphName(gid int) (GlyphName, bool) {
	if f == nil || gid < 0 {
		return "", false
	}
	return f.glyphName(GlyphIndex(gid))
}

// GlyphAdvance returns the advance width of glyph `gid` in design units.
func (f *Font) GlyphAdvance(gid int) (int, bool) {
	if f == nil || gid < 0 {
		return 0, false
	}
	return f.glyphAdvance(GlyphIndex(gid))
}

// PostScriptName returns the PostScript name of the font from the name table,
// falling back to the full font name. Empty if neither is present.
func (f *Font) PostScriptName() string {
	if f == nil || f.font == nil {
		return ""
	}
	name := f.GetNameByID(nameIDPostScriptName)
	if name == "" {
		name = f.GetNameByID(nameIDFullFontName)
	}
	return name
}
