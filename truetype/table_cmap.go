/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/fontmill/glyph2d/common"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font. A font may carry several subtables for different platforms and
// encodings; codes that do not correspond to any glyph map to glyph index 0
// (.notdef).
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version   uint16
	subtables []*CmapSubtable
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// CmapSubtable is a single character-to-glyph mapping subtable, tagged with the
// platform and encoding ids it was written for. Subtable formats 0, 4, 6 and 12
// are supported; records with other formats are skipped at parse time.
type CmapSubtable struct {
	platformID uint16
	encodingID uint16
	format     uint16

	format0  *cmapFormat0
	format4  *cmapFormat4
	format6  *cmapFormat6
	format12 *cmapFormat12
}

// PlatformID returns the platform id of the subtable (0: Unicode, 1: Macintosh, 3: Windows).
func (s *CmapSubtable) PlatformID() int {
	return int(s.platformID)
}

// EncodingID returns the platform-specific encoding id of the subtable.
func (s *CmapSubtable) EncodingID() int {
	return int(s.encodingID)
}

// GlyphIndex returns the glyph index for character code `code`, or 0 if the
// subtable has no mapping for it.
func (s *CmapSubtable) GlyphIndex(code int) int {
	if code < 0 {
		return 0
	}
	switch {
	case s.format0 != nil:
		return s.format0.glyphIndex(code)
	case s.format4 != nil:
		return s.format4.glyphIndex(code)
	case s.format6 != nil:
		return s.format6.glyphIndex(code)
	case s.format12 != nil:
		return s.format12.glyphIndex(code)
	}
	return 0
}

// cmapFormat0 is the byte encoding table: a direct 256-entry lookup.
type cmapFormat0 struct {
	glyphIDs [256]uint8
}

func (t *cmapFormat0) glyphIndex(code int) int {
	if code > 0xFF {
		return 0
	}
	return int(t.glyphIDs[code])
}

// cmapFormat4 is the segment mapping to delta values table, the standard
// Windows Unicode BMP format.
type cmapFormat4 struct {
	segCount       int
	endCodes       []uint16
	startCodes     []uint16
	idDeltas       []uint16
	idRangeOffsets []uint16
	glyphIDArray   []uint16
}

func (t *cmapFormat4) glyphIndex(code int) int {
	if code > 0xFFFF {
		return 0
	}
	c := uint16(code)

	// Binary search for the segment containing `c`.
	lo, hi := 0, t.segCount
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case c > t.endCodes[mid]:
			lo = mid + 1
		case c < t.startCodes[mid]:
			hi = mid
		default:
			if t.idRangeOffsets[mid] == 0 {
				return int(c + t.idDeltas[mid])
			}
			// idRangeOffset is a byte offset from its own location into the
			// glyph id array that directly follows the offsets.
			idx := int(t.idRangeOffsets[mid])/2 + int(c-t.startCodes[mid]) - (t.segCount - mid)
			if idx < 0 || idx >= len(t.glyphIDArray) {
				common.Log.Debug("cmap format 4 index outside glyph id array (%d)", idx)
				return 0
			}
			gid := t.glyphIDArray[idx]
			if gid == 0 {
				return 0
			}
			return int(gid + t.idDeltas[mid])
		}
	}
	return 0
}

// cmapFormat6 is the trimmed table mapping: a dense range of codes starting at
// firstCode.
type cmapFormat6 struct {
	firstCode uint16
	glyphIDs  []uint16
}

func (t *cmapFormat6) glyphIndex(code int) int {
	if code > 0xFFFF || uint16(code) < t.firstCode {
		return 0
	}
	i := int(uint16(code) - t.firstCode)
	if i >= len(t.glyphIDs) {
		return 0
	}
	return int(t.glyphIDs[i])
}

// cmapFormat12 is the segmented coverage table covering the full Unicode range.
type cmapFormat12 struct {
	groups []sequentialMapGroup
}

type sequentialMapGroup struct {
	startCharCode uint32
	endCharCode   uint32
	startGlyphID  uint32
}

func (t *cmapFormat12) glyphIndex(code int) int {
	c := uint32(code)
	lo, hi := 0, len(t.groups)
	for lo < hi {
		mid := lo + (hi-lo)/2
		g := t.groups[mid]
		switch {
		case c > g.endCharCode:
			lo = mid + 1
		case c < g.startCharCode:
			hi = mid
		default:
			return int(g.startGlyphID + (c - g.startCharCode))
		}
	}
	return 0
}

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table absent")
		return nil, nil
	}

	t := &cmapTable{}

	var numTables uint16
	err = r.read(&t.version, &numTables)
	if err != nil {
		return nil, err
	}

	var recs []encodingRecord
	for i := 0; i < int(numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	for _, rec := range recs {
		if int64(rec.offset) >= int64(tr.length) {
			common.Log.Debug("cmap subtable offset outside table")
			return nil, errRangeCheck
		}
		err = r.Seek(int64(tr.offset) + int64(rec.offset))
		if err != nil {
			return nil, err
		}

		sub, err := f.parseCmapSubtable(r, rec)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			// Unsupported format.
			continue
		}
		t.subtables = append(t.subtables, sub)
	}

	return t, nil
}

func (f *font) parseCmapSubtable(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	sub := &CmapSubtable{
		platformID: rec.platformID,
		encodingID: rec.encodingID,
	}

	err := r.read(&sub.format)
	if err != nil {
		return nil, err
	}
	common.Log.Trace("cmap subtable (%d,%d) format %d", rec.platformID, rec.encodingID, sub.format)

	switch sub.format {
	case 0:
		sub.format0, err = parseCmapFormat0(r)
	case 4:
		sub.format4, err = parseCmapFormat4(r)
	case 6:
		sub.format6, err = parseCmapFormat6(r)
	case 12:
		sub.format12, err = parseCmapFormat12(r)
	default:
		common.Log.Debug("Unsupported cmap subtable format %d (%d,%d) - skipping",
			sub.format, rec.platformID, rec.encodingID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func parseCmapFormat0(r *byteReader) (*cmapFormat0, error) {
	var length, language uint16
	err := r.read(&length, &language)
	if err != nil {
		return nil, err
	}

	t := &cmapFormat0{}
	for i := 0; i < 256; i++ {
		err = r.read(&t.glyphIDs[i])
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseCmapFormat4(r *byteReader) (*cmapFormat4, error) {
	var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
	err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return nil, err
	}
	if segCountX2%2 != 0 {
		common.Log.Debug("Invalid segCountX2 (%d)", segCountX2)
		return nil, errRangeCheck
	}
	segCount := int(segCountX2 / 2)

	t := &cmapFormat4{segCount: segCount}

	err = r.readSlice(&t.endCodes, segCount)
	if err != nil {
		return nil, err
	}

	var reservedPad uint16
	err = r.read(&reservedPad)
	if err != nil {
		return nil, err
	}

	err = r.readSlice(&t.startCodes, segCount)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&t.idDeltas, segCount)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&t.idRangeOffsets, segCount)
	if err != nil {
		return nil, err
	}

	// The glyph id array fills the rest of the subtable.
	glyphIDLen := (int(length) - (16 + 8*segCount)) / 2
	if glyphIDLen < 0 {
		common.Log.Debug("Invalid cmap format 4 length (%d)", length)
		return nil, errRangeCheck
	}
	err = r.readSlice(&t.glyphIDArray, glyphIDLen)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func parseCmapFormat6(r *byteReader) (*cmapFormat6, error) {
	var length, language, entryCount uint16
	t := &cmapFormat6{}
	err := r.read(&length, &language, &t.firstCode, &entryCount)
	if err != nil {
		return nil, err
	}

	err = r.readSlice(&t.glyphIDs, int(entryCount))
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseCmapFormat12(r *byteReader) (*cmapFormat12, error) {
	// Skip reserved field; then length, language, numGroups.
	err := r.Skip(2)
	if err != nil {
		return nil, err
	}
	var length, language, numGroups uint32
	err = r.read(&length, &language, &numGroups)
	if err != nil {
		return nil, err
	}

	t := &cmapFormat12{}
	for i := 0; i < int(numGroups); i++ {
		var g sequentialMapGroup
		err = r.read(&g.startCharCode, &g.endCharCode, &g.startGlyphID)
		if err != nil {
			return nil, err
		}
		t.groups = append(t.groups, g)
	}
	return t, nil
}
