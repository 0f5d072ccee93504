/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

import (
	"github.com/fontmill/glyph2d/truetype"
)

// ttfSource adapts a parsed TrueType font to the FontSource capability set.
type ttfSource struct {
	font *truetype.Font
}

// NewFontSource returns a FontSource over the parsed TrueType font `fnt`.
func NewFontSource(fnt *truetype.Font) FontSource {
	return &ttfSource{font: fnt}
}

func (s *ttfSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

func (s *ttfSource) UnitsPerEm() int {
	return s.font.UnitsPerEm()
}

func (s *ttfSource) CodeTables() []CodeTable {
	subs := s.font.CmapSubtables()
	tables := make([]CodeTable, 0, len(subs))
	for _, sub := range subs {
		tables = append(tables, sub)
	}
	return tables
}

func (s *ttfSource) GlyphDescription(gid int) (GlyphDescription, bool) {
	outline, ok := s.font.GlyphOutline(gid)
	if !ok {
		return nil, false
	}
	return outline, true
}
