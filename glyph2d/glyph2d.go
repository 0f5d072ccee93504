/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

import (
	"github.com/fontmill/glyph2d/common"
	"github.com/fontmill/glyph2d/internal/transform"
	"github.com/fontmill/glyph2d/textencoding"
)

// defaultScale is used when the font carries no units-per-em value.
const defaultScale = 0.001

// Symbol fonts commonly place their glyphs in one of these Private Use Area
// ranges; codes in [0, 255] are probed against them in order.
const (
	startRangeF000 = 0xF000
	startRangeF100 = 0xF100
	startRangeF200 = 0xF200
)

// Glyph2D produces vector paths for glyphs addressed by glyph index or by
// character code.
type Glyph2D interface {
	// PathForGlyphID returns the path of glyph `gid`. The bool flag is
	// false when the glyph does not exist; a glyph with no contours yields
	// an empty path and a true flag.
	PathForGlyphID(gid int) (*Path, bool)
	// PathForCharacterCode resolves `code` to a glyph index and returns
	// that glyph's path.
	PathForCharacterCode(code int) (*Path, bool)
	// NumberOfGlyphs returns the size of the font's glyph table, or 0 when
	// no font is attached.
	NumberOfGlyphs() int
	// Dispose releases the font and clears the cache. Safe to call more
	// than once; subsequent lookups behave as if nothing is loaded.
	Dispose()
}

// TTFGlyph2D implements Glyph2D for TrueType fonts. Not safe for concurrent
// use without external synchronization.
type TTFGlyph2D struct {
	src      FontSource
	baseFont string
	scale    float64

	encoding textencoding.Encoding
	isSymbol bool

	winUnicode CodeTable
	winSymbol  CodeTable
	macSymbol  CodeTable

	isCIDFont             bool
	descendant            CIDFontDescriptor
	hasIdentityCIDMapping bool
	hasCIDToGIDMapping    bool
	fontCMap              textencoding.CMap
	hasTwoByteMappings    bool

	cache *glyphCache
}

var _ Glyph2D = (*TTFGlyph2D)(nil)

// New returns a TTFGlyph2D for the simple font `src` with encoding `enc`.
// `enc` may be nil for fonts without an encoding entry.
func New(src FontSource, enc textencoding.Encoding) *TTFGlyph2D {
	return NewCID(src, enc, nil)
}

// NewCID returns a TTFGlyph2D for `src`. For CID-keyed fonts `desc` carries
// the descendant font's CID-to-GID mapping; pass nil for simple fonts.
func NewCID(src FontSource, enc textencoding.Encoding, desc CIDFontDescriptor) *TTFGlyph2D {
	g := &TTFGlyph2D{
		src:      src,
		encoding: enc,
		scale:    defaultScale,
		cache:    newGlyphCache(),
	}
	if upem := src.UnitsPerEm(); upem > 0 {
		g.scale = 1 / float64(upem)
	}
	if enc != nil {
		g.baseFont = enc.BaseFont()
		g.isSymbol = enc.IsSymbolic()
	}
	g.selectCodeTables()
	if desc != nil {
		g.isCIDFont = true
		g.descendant = desc
		g.hasIdentityCIDMapping = desc.HasIdentityCIDToGID()
		g.hasCIDToGIDMapping = desc.HasCIDToGID()
		g.fontCMap = desc.CMap()
		if g.fontCMap != nil {
			g.hasTwoByteMappings = g.fontCMap.HasTwoByteMappings()
		}
	}
	return g
}

// selectCodeTables classifies the font's code tables into the roles the
// resolver consumes. Run once at construction.
func (g *TTFGlyph2D) selectCodeTables() {
	for _, ct := range g.src.CodeTables() {
		switch ct.PlatformID() {
		case platformWindows:
			switch ct.EncodingID() {
			case encodingWinUnicode:
				g.winUnicode = ct
			case encodingWinSymbol:
				g.winSymbol = ct
			}
		case platformMacintosh:
			if ct.EncodingID() == encodingMacSymbol {
				g.macSymbol = ct
			}
		}
	}
}

const (
	platformMacintosh = 1
	platformWindows   = 3

	encodingWinSymbol  = 0
	encodingWinUnicode = 1
	encodingMacSymbol  = 0
)

// glyphCode maps character code `code` to a glyph index, trying the
// applicable code tables in priority order. Returns 0 when no table maps it.
func (g *TTFGlyph2D) glyphCode(code int) int {
	if g.isCIDFont {
		return g.gidForCID(code)
	}

	result := 0
	if g.encoding != nil && !g.isSymbol {
		name, has := g.encoding.GlyphName(code)
		if has {
			if g.winUnicode != nil {
				r, ok := textencoding.RuneForGlyphName(name)
				if ok {
					result = int(r)
				} else {
					common.Log.Debug("No Unicode value for glyph name %q", name)
				}
				result = g.winUnicode.GlyphIndex(result)
			} else if g.macSymbol != nil {
				b, ok := textencoding.MacRomanCode(name)
				if !ok {
					common.Log.Debug("No Mac Roman code for glyph name %q", name)
				}
				result = g.macSymbol.GlyphIndex(int(b))
			}
		}
	}
	if g.encoding == nil || g.isSymbol {
		if g.winSymbol != nil {
			result = g.winSymbol.GlyphIndex(code)
			if code >= 0 && code <= 0xFF {
				// Symbol code tables may store their mappings in a Private
				// Use Area range; retry with the high byte added.
				if result == 0 {
					result = g.winSymbol.GlyphIndex(code + startRangeF000)
				}
				if result == 0 {
					result = g.winSymbol.GlyphIndex(code + startRangeF100)
				}
				if result == 0 {
					result = g.winSymbol.GlyphIndex(code + startRangeF200)
				}
			}
		} else if g.macSymbol != nil {
			result = g.macSymbol.GlyphIndex(code)
		}
	}
	return result
}

// gidForCID maps CID `code` to a glyph index.
func (g *TTFGlyph2D) gidForCID(code int) int {
	if g.hasIdentityCIDMapping {
		return code
	}
	if g.hasCIDToGIDMapping {
		return g.descendant.CIDToGID(code)
	}
	if g.fontCMap != nil {
		if s, ok := g.cmapLookup(code); ok {
			return s
		}
	}
	return code
}

// cmapLookup looks `code` up in the font CMap at the font's byte width and
// returns the code point of the first character of the mapped string.
func (g *TTFGlyph2D) cmapLookup(code int) (int, bool) {
	numBytes := 1
	if g.hasTwoByteMappings {
		numBytes = 2
	}
	s, ok := g.fontCMap.Lookup(code, numBytes)
	if !ok || s == "" {
		return 0, false
	}
	return int([]rune(s)[0]), true
}

// PathForGlyphID returns a copy of glyph `gid`'s path, building and caching
// it on first retrieval.
func (g *TTFGlyph2D) PathForGlyphID(gid int) (*Path, bool) {
	if p, has := g.cache.get(gid); has {
		return p.Clone(), true
	}
	if g.src == nil || gid < 0 || gid >= g.src.NumGlyphs() {
		common.Log.Debug("%s: Glyph not found: %d", g.baseFont, gid)
		return nil, false
	}
	gd, ok := g.src.GlyphDescription(gid)
	if !ok {
		common.Log.Debug("%s: Glyph not found: %d", g.baseFont, gid)
		return nil, false
	}

	path := buildOutline(describe(gd))
	path = path.Transform(transform.ScaleMatrix(g.scale, g.scale))
	g.cache.put(gid, path)
	return path.Clone(), true
}

// PathForCharacterCode resolves `code` through the font's code tables (or CID
// mapping) and returns the resolved glyph's path. When no table maps the
// code, the code itself is tried as a glyph index, after consulting the font
// CMap when one is present.
func (g *TTFGlyph2D) PathForCharacterCode(code int) (*Path, bool) {
	gid := g.glyphCode(code)
	if gid > 0 {
		return g.PathForGlyphID(gid)
	}

	gid = code
	// No mapping, but possibly an optional CMap.
	if g.fontCMap != nil {
		if v, ok := g.cmapLookup(code); ok {
			gid = v
		}
	}
	return g.PathForGlyphID(gid)
}

// NumberOfGlyphs returns the size of the font's glyph table.
func (g *TTFGlyph2D) NumberOfGlyphs() int {
	if g.src == nil {
		return 0
	}
	return g.src.NumGlyphs()
}

// Dispose releases all held references and clears the cache. Idempotent.
func (g *TTFGlyph2D) Dispose() {
	g.src = nil
	g.encoding = nil
	g.winUnicode = nil
	g.winSymbol = nil
	g.macSymbol = nil
	g.descendant = nil
	g.fontCMap = nil
	g.isCIDFont = false
	g.hasIdentityCIDMapping = false
	g.hasCIDToGIDMapping = false
	g.hasTwoByteMappings = false
	g.cache.clear()
}
