/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

// TestParseGoRegular exercises the parser end to end on the embedded Go Regular font.
func TestParseGoRegular(t *testing.T) {
	fnt, err := Parse(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	require.NotNil(t, fnt)

	assert.True(t, fnt.NumGlyphs() > 0)
	assert.True(t, fnt.UnitsPerEm() > 0)

	// Go Regular carries a (3,1) Windows Unicode subtable.
	var winUnicode *CmapSubtable
	for _, sub := range fnt.CmapSubtables() {
		if sub.PlatformID() == 3 && sub.EncodingID() == 1 {
			winUnicode = sub
			break
		}
	}
	require.NotNil(t, winUnicode)

	gid := winUnicode.GlyphIndex('A')
	require.True(t, gid > 0)
	require.True(t, gid < fnt.NumGlyphs())

	outline, ok := fnt.GlyphOutline(gid)
	require.True(t, ok)
	require.NotNil(t, outline)
	n := outline.PointCount()
	require.True(t, n > 0)
	// The last point of a glyph always closes a contour.
	assert.True(t, outline.EndOfContour(n-1))
	ends := 0
	for i := 0; i < n; i++ {
		if outline.EndOfContour(i) {
			ends++
		}
	}
	assert.True(t, ends > 0)

	adv, ok := fnt.GlyphAdvance(gid)
	require.True(t, ok)
	assert.True(t, adv > 0)

	assert.NotEmpty(t, fnt.PostScriptName())
}

func TestParseGoRegularGlyphNames(t *testing.T) {
	fnt, err := Parse(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)

	// Glyph 0 is .notdef in any well-formed font with a post table.
	name, ok := fnt.GlyphName(0)
	if !ok {
		t.Skip("font has no glyph names")
	}
	assert.Equal(t, GlyphName(".notdef"), name)
}
