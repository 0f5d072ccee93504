/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

import (
	"github.com/fontmill/glyph2d/textencoding"
)

// CodeTable is a read-only mapping from character code to glyph index,
// tagged with the platform and encoding ids it was written for.
type CodeTable interface {
	PlatformID() int
	EncodingID() int
	// GlyphIndex returns the glyph index for `code`, or 0 when unmapped.
	GlyphIndex(code int) int
}

// GlyphDescription exposes the raw contour points of one glyph.
type GlyphDescription interface {
	PointCount() int
	X(i int) int
	Y(i int) int
	OnCurve(i int) bool
	EndOfContour(i int) bool
}

// FontSource exposes the capabilities of a glyph-carrying font needed to
// build paths: glyph count, scaling granularity, the available code tables
// and per-glyph contour points.
type FontSource interface {
	// NumGlyphs returns the size of the font's glyph table.
	NumGlyphs() int
	// UnitsPerEm returns the font design grid granularity, or 0 when the
	// font does not carry one.
	UnitsPerEm() int
	// CodeTables returns the font's character-to-glyph mapping tables.
	CodeTables() []CodeTable
	// GlyphDescription returns the contour points of glyph `gid`. The bool
	// flag is false when the glyph has no retrievable outline.
	GlyphDescription(gid int) (GlyphDescription, bool)
}

// CIDFontDescriptor exposes the CID-to-GID mapping of the descendant font of
// a CID-keyed composite font.
type CIDFontDescriptor interface {
	// HasIdentityCIDToGID reports that CIDs equal GIDs.
	HasIdentityCIDToGID() bool
	// HasCIDToGID reports that an explicit CID-to-GID table is present.
	HasCIDToGID() bool
	// CIDToGID returns the glyph index mapped to `cid` by the explicit table.
	CIDToGID(cid int) int
	// CMap returns the CMap of the composite font, or nil.
	CMap() textencoding.CMap
}
