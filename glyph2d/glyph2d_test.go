/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fontmill/glyph2d/textencoding"
	"github.com/fontmill/glyph2d/truetype"
)

type fakeCodeTable struct {
	platformID int
	encodingID int
	mappings   map[int]int
}

func (t *fakeCodeTable) PlatformID() int { return t.platformID }
func (t *fakeCodeTable) EncodingID() int { return t.encodingID }
func (t *fakeCodeTable) GlyphIndex(code int) int {
	return t.mappings[code]
}

type fakeGlyphDescription struct {
	points []glyphPoint
}

func (d *fakeGlyphDescription) PointCount() int         { return len(d.points) }
func (d *fakeGlyphDescription) X(i int) int             { return d.points[i].x }
func (d *fakeGlyphDescription) Y(i int) int             { return d.points[i].y }
func (d *fakeGlyphDescription) OnCurve(i int) bool      { return d.points[i].onCurve }
func (d *fakeGlyphDescription) EndOfContour(i int) bool { return d.points[i].endOfContour }

type fakeSource struct {
	numGlyphs  int
	unitsPerEm int
	tables     []CodeTable
	glyphs     map[int]*fakeGlyphDescription
}

func (s *fakeSource) NumGlyphs() int          { return s.numGlyphs }
func (s *fakeSource) UnitsPerEm() int         { return s.unitsPerEm }
func (s *fakeSource) CodeTables() []CodeTable { return s.tables }
func (s *fakeSource) GlyphDescription(gid int) (GlyphDescription, bool) {
	gd, has := s.glyphs[gid]
	if !has {
		return nil, false
	}
	return gd, true
}

type fakeCIDDescriptor struct {
	identity bool
	explicit bool
	cidToGID map[int]int
	cmap     textencoding.CMap
}

func (d *fakeCIDDescriptor) HasIdentityCIDToGID() bool { return d.identity }
func (d *fakeCIDDescriptor) HasCIDToGID() bool         { return d.explicit }
func (d *fakeCIDDescriptor) CIDToGID(cid int) int      { return d.cidToGID[cid] }
func (d *fakeCIDDescriptor) CMap() textencoding.CMap   { return d.cmap }

// squareGlyph is a 4-point on-curve square spanning the full em, with the y
// coordinates in design space (positive up).
func squareGlyph(em int) *fakeGlyphDescription {
	return &fakeGlyphDescription{points: []glyphPoint{
		{x: 0, y: 0, onCurve: true},
		{x: 0, y: em, onCurve: true},
		{x: em, y: em, onCurve: true},
		{x: em, y: 0, onCurve: true, endOfContour: true},
	}}
}

func TestPathForGlyphIDUnitSquare(t *testing.T) {
	src := &fakeSource{
		numGlyphs:  4,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{1: squareGlyph(1000)},
	}
	g := New(src, nil)

	path, ok := g.PathForGlyphID(1)
	require.True(t, ok)

	elems := path.Elements()
	require.Len(t, elems, 5)
	assert.Equal(t, MoveTo{Point: Pt(0, 0)}, elems[0])
	assert.Equal(t, LineTo{Point: Pt(0, -1)}, elems[1])
	assert.Equal(t, LineTo{Point: Pt(1, -1)}, elems[2])
	assert.Equal(t, LineTo{Point: Pt(1, 0)}, elems[3])
	assert.Equal(t, Close{}, elems[4])
}

func TestDefaultScale(t *testing.T) {
	// No units-per-em: the fixed default scaling applies.
	src := &fakeSource{
		numGlyphs: 2,
		glyphs:    map[int]*fakeGlyphDescription{1: squareGlyph(1000)},
	}
	g := New(src, nil)

	path, ok := g.PathForGlyphID(1)
	require.True(t, ok)
	assert.Equal(t, LineTo{Point: Pt(1, -1)}, path.Elements()[2])
}

func TestPathForGlyphIDCachedCopies(t *testing.T) {
	src := &fakeSource{
		numGlyphs:  4,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{1: squareGlyph(1000)},
	}
	g := New(src, nil)

	p1, ok := g.PathForGlyphID(1)
	require.True(t, ok)
	p2, ok := g.PathForGlyphID(1)
	require.True(t, ok)

	require.Equal(t, p1.Elements(), p2.Elements())

	// Mutating one copy must not affect the other or the cached original.
	p1.LineTo(9, 9)
	assert.Len(t, p2.Elements(), 5)

	p3, ok := g.PathForGlyphID(1)
	require.True(t, ok)
	assert.Len(t, p3.Elements(), 5)
}

func TestPathForGlyphIDNotFound(t *testing.T) {
	src := &fakeSource{
		numGlyphs:  4,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{1: squareGlyph(1000)},
	}
	g := New(src, nil)

	// Glyph 0 has no outline here.
	path, ok := g.PathForGlyphID(0)
	assert.False(t, ok)
	assert.Nil(t, path)

	path, ok = g.PathForGlyphID(4)
	assert.False(t, ok)
	assert.Nil(t, path)

	path, ok = g.PathForGlyphID(-1)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestEmptyGlyphDistinctFromMissing(t *testing.T) {
	src := &fakeSource{
		numGlyphs:  3,
		unitsPerEm: 1000,
		glyphs: map[int]*fakeGlyphDescription{
			1: {}, // no contours
		},
	}
	g := New(src, nil)

	path, ok := g.PathForGlyphID(1)
	require.True(t, ok)
	require.NotNil(t, path)
	assert.Empty(t, path.Elements())

	_, ok = g.PathForGlyphID(2)
	assert.False(t, ok)
}

func TestSymbolFontPUAProbing(t *testing.T) {
	winSymbol := &fakeCodeTable{
		platformID: 3,
		encodingID: 0,
		mappings: map[int]int{
			0xF041: 5,
			0xF141: 7,
			0xF142: 8,
			0xF243: 9,
		},
	}
	src := &fakeSource{numGlyphs: 16, unitsPerEm: 1000, tables: []CodeTable{winSymbol}}
	enc := textencoding.NewSimpleEncoding("SomeSymbolFont", true, nil)
	g := New(src, enc)

	// The F000 range wins over F100 when both map the code.
	assert.Equal(t, 5, g.glyphCode(0x41))
	assert.Equal(t, 8, g.glyphCode(0x42))
	assert.Equal(t, 9, g.glyphCode(0x43))
	assert.Equal(t, 0, g.glyphCode(0x44))
	// Codes above 0xFF are not probed.
	assert.Equal(t, 0, g.glyphCode(0x141))
	// Direct mappings short-circuit the probing.
	assert.Equal(t, 7, g.glyphCode(0xF141))
}

func TestSymbolFontMacintoshFallback(t *testing.T) {
	macSymbol := &fakeCodeTable{
		platformID: 1,
		encodingID: 0,
		mappings:   map[int]int{0x41: 3},
	}
	src := &fakeSource{numGlyphs: 16, unitsPerEm: 1000, tables: []CodeTable{macSymbol}}
	g := New(src, nil)

	assert.Equal(t, 3, g.glyphCode(0x41))
	assert.Equal(t, 0, g.glyphCode(0x42))
}

func TestNonSymbolicUnicodeResolution(t *testing.T) {
	winUnicode := &fakeCodeTable{
		platformID: 3,
		encodingID: 1,
		mappings:   map[int]int{'A': 36, ',': 15},
	}
	src := &fakeSource{numGlyphs: 64, unitsPerEm: 1000, tables: []CodeTable{winUnicode}}
	g := New(src, textencoding.NewStandardEncoding("SomeFont"))

	assert.Equal(t, 36, g.glyphCode('A'))
	assert.Equal(t, 15, g.glyphCode(','))
	// No glyph name for the code.
	assert.Equal(t, 0, g.glyphCode(0x01))
}

func TestNonSymbolicMacRomanResolution(t *testing.T) {
	// Without a Windows Unicode table the glyph name resolves through the
	// Macintosh Roman code instead.
	macSymbol := &fakeCodeTable{
		platformID: 1,
		encodingID: 0,
		mappings:   map[int]int{0x41: 12},
	}
	src := &fakeSource{numGlyphs: 64, unitsPerEm: 1000, tables: []CodeTable{macSymbol}}
	g := New(src, textencoding.NewStandardEncoding("SomeFont"))

	assert.Equal(t, 12, g.glyphCode('A'))
}

func TestCIDIdentityMapping(t *testing.T) {
	cm := textencoding.NewStaticCMap("Test")
	cm.Add(0x41, 1, "\a")
	desc := &fakeCIDDescriptor{
		identity: true,
		explicit: true,
		cidToGID: map[int]int{0x41: 99},
		cmap:     cm,
	}
	src := &fakeSource{numGlyphs: 256, unitsPerEm: 1000}
	g := NewCID(src, nil, desc)

	// Identity takes precedence over both the explicit table and the CMap.
	assert.Equal(t, 0x41, g.glyphCode(0x41))
	assert.Equal(t, 0x1234, g.glyphCode(0x1234))
}

func TestCIDExplicitTable(t *testing.T) {
	desc := &fakeCIDDescriptor{
		explicit: true,
		cidToGID: map[int]int{5: 50, 6: 60},
	}
	src := &fakeSource{numGlyphs: 256, unitsPerEm: 1000}
	g := NewCID(src, nil, desc)

	assert.Equal(t, 50, g.glyphCode(5))
	assert.Equal(t, 60, g.glyphCode(6))
	assert.Equal(t, 0, g.glyphCode(7))
}

func TestCIDCMapDerived(t *testing.T) {
	cm := textencoding.NewStaticCMap("Test")
	cm.Add(0x2041, 2, string(rune(42)))
	desc := &fakeCIDDescriptor{cmap: cm}
	src := &fakeSource{numGlyphs: 256, unitsPerEm: 1000}
	g := NewCID(src, nil, desc)

	assert.Equal(t, 42, g.glyphCode(0x2041))
	// Unmapped codes fall back to identity.
	assert.Equal(t, 0x2042, g.glyphCode(0x2042))
}

func TestPathForCharacterCodeRawCodeFallback(t *testing.T) {
	// No code tables at all: the character code is tried as a glyph index.
	src := &fakeSource{
		numGlyphs:  8,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{3: squareGlyph(1000)},
	}
	g := New(src, nil)

	path, ok := g.PathForCharacterCode(3)
	require.True(t, ok)
	assert.Len(t, path.Elements(), 5)

	_, ok = g.PathForCharacterCode(5)
	assert.False(t, ok)
}

func TestPathForCharacterCodeCMapFallback(t *testing.T) {
	// The explicit CID table maps the code to nothing; the CMap tier then
	// derives the glyph index.
	cm := textencoding.NewStaticCMap("Test")
	cm.Add(0x20, 1, "\a")
	desc := &fakeCIDDescriptor{
		explicit: true,
		cidToGID: map[int]int{},
		cmap:     cm,
	}
	src := &fakeSource{
		numGlyphs:  8,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{7: squareGlyph(1000)},
	}
	g := NewCID(src, nil, desc)

	path, ok := g.PathForCharacterCode(0x20)
	require.True(t, ok)
	assert.Len(t, path.Elements(), 5)
}

func TestDispose(t *testing.T) {
	src := &fakeSource{
		numGlyphs:  4,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{1: squareGlyph(1000)},
	}
	g := New(src, textencoding.NewStandardEncoding("SomeFont"))

	_, ok := g.PathForGlyphID(1)
	require.True(t, ok)
	assert.Equal(t, 4, g.NumberOfGlyphs())

	g.Dispose()
	assert.Equal(t, 0, g.NumberOfGlyphs())

	path, ok := g.PathForGlyphID(1)
	assert.False(t, ok)
	assert.Nil(t, path)

	_, ok = g.PathForCharacterCode('A')
	assert.False(t, ok)

	// Idempotent.
	g.Dispose()
	assert.Equal(t, 0, g.NumberOfGlyphs())
}

func TestDisposeCIDFont(t *testing.T) {
	// After Dispose, lookups on a CID-keyed font must behave as "nothing
	// loaded" rather than reaching into the released descendant font.
	cm := textencoding.NewStaticCMap("Test")
	cm.Add(5, 1, "\a")
	desc := &fakeCIDDescriptor{
		explicit: true,
		cidToGID: map[int]int{5: 7},
		cmap:     cm,
	}
	src := &fakeSource{
		numGlyphs:  8,
		unitsPerEm: 1000,
		glyphs:     map[int]*fakeGlyphDescription{7: squareGlyph(1000)},
	}
	g := NewCID(src, nil, desc)

	_, ok := g.PathForCharacterCode(5)
	require.True(t, ok)

	g.Dispose()
	assert.Equal(t, 0, g.NumberOfGlyphs())

	path, ok := g.PathForCharacterCode(5)
	assert.False(t, ok)
	assert.Nil(t, path)

	path, ok = g.PathForGlyphID(7)
	assert.False(t, ok)
	assert.Nil(t, path)

	g.Dispose()
	_, ok = g.PathForCharacterCode(5)
	assert.False(t, ok)
}

func TestTrueTypeSource(t *testing.T) {
	fnt, err := truetype.Parse(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)

	g := New(NewFontSource(fnt), textencoding.NewStandardEncoding("GoRegular"))
	defer g.Dispose()

	assert.Equal(t, fnt.NumGlyphs(), g.NumberOfGlyphs())

	path, ok := g.PathForCharacterCode('A')
	require.True(t, ok)
	require.NotEmpty(t, path.Elements())

	// All coordinates are normalized to the em square.
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			assert.True(t, e.Point.X >= -2 && e.Point.X <= 2)
		case LineTo:
			assert.True(t, e.Point.X >= -2 && e.Point.X <= 2)
		case QuadTo:
			assert.True(t, e.Point.X >= -2 && e.Point.X <= 2)
		}
	}

	_, ok = path.Elements()[0].(MoveTo)
	assert.True(t, ok)
}
