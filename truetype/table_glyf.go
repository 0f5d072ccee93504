/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"

	"github.com/fontmill/glyph2d/common"
)

// glyfTable represents the Glyph Data table (glyf).
// Information that describes the glyphs in the font in the TrueType outline format.
//
// The 'glyf' table is comprised of a list of glyph data blocks, each of which provides
// the description for a single glyph. Glyphs are referenced by identifiers (glyph IDs),
// which are sequential integers beginning at zero. The total number of glyphs is specified
// by the numGlyphs field in the 'maxp' table. The 'glyf' table does not include any overall
// table header or records providing offsets to glyph data blocks. Rather, the 'loca' table
// provides an array of offsets, indexed by glyph IDs, which provide the location of each
// glyph data block within the 'glyf' table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
type glyfTable struct {
	descs []*glyphDescription // len = numGlyphs, nil entries for glyphs without data.
}

func (f *font) parseGlyf(r *byteReader) (*glyfTable, error) {
	if f.maxp == nil || f.loca == nil {
		common.Log.Debug("required field missing (glyf)")
		return nil, errRequiredField
	}

	tr, has, err := f.seekToTable(r, "glyf")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil // table not found.
	}

	glyf := &glyfTable{}

	common.Log.Debug("parsing glyf table")
	common.Log.Debug("Number of glyphs: %d", f.maxp.numGlyphs)
	common.Log.Debug("Loca offset format: %d", f.head.indexToLocFormat)

	for i := 0; i < int(f.maxp.numGlyphs); i++ {
		gid := GlyphIndex(i)
		gdOffset, gdLen, err := f.glyphDataOffset(gid)
		if err != nil {
			return nil, err
		}

		if gdLen == 0 {
			// No outline data for this glyph.
			glyf.descs = append(glyf.descs, nil)
			continue
		}

		if gdOffset > int64(tr.length) {
			common.Log.Debug("Range check error (glyf)")
			return nil, errRangeCheck
		}

		err = r.Seek(int64(tr.offset) + gdOffset)
		if err != nil {
			return nil, err
		}

		desc, err := f.parseGlyphDescription(r, gdLen)
		if err != nil {
			return nil, err
		}
		glyf.descs = append(glyf.descs, desc)
	}

	return glyf, nil
}

type glyphDescription struct {
	header    glyfGlyphHeader
	simple    *simpleGlyphDescription
	composite *compositeGlyphDescription
}

func (d glyphDescription) IsSimple() bool {
	return d.composite == nil
}

func (f *font) parseGlyphDescription(r *byteReader, gdLen int64) (*glyphDescription, error) {
	var gh glyfGlyphHeader
	err := gh.read(r)
	if err != nil {
		return nil, err
	}
	common.Log.Trace("glyph header: %+v", gh)

	if gh.numberOfContours >= 0 {
		common.Log.Trace("simple glyph data, contours: %d", gh.numberOfContours)
		sgd, err := f.parseSimpleGlyphDescription(r, int(gh.numberOfContours))
		if err != nil {
			return nil, err
		}

		return &glyphDescription{
			header: gh,
			simple: sgd,
		}, nil
	}

	common.Log.Trace("composite glyph data")
	cgd, err := f.parseCompositeGlyphDescription(r, gdLen)
	if err != nil {
		return nil, err
	}
	return &glyphDescription{
		header:    gh,
		composite: cgd,
	}, nil
}

// glyfGlyphHeader represents the glyph header in the glyf table (one for each glyph).
type glyfGlyphHeader struct {
	numberOfContours int16
	xMin             int16
	yMin             int16
	xMax             int16
	yMax             int16
}

func (h *glyfGlyphHeader) read(r *byteReader) error {
	return r.read(&h.numberOfContours, &h.xMin, &h.yMin, &h.xMax, &h.yMax)
}

// simpleGlyphFlag represents a flag data representation of a point in a simple glyph.
type simpleGlyphFlag uint8

const (
	onCurvePoint simpleGlyphFlag = (1 << iota)
	xShortVector
	yShortVector
	repeatFlag
	xIsSameOrPositiveVector
	yIsSameOrPositiveVector
	overlapSimple
	reservedFlag
)

func (f simpleGlyphFlag) String() string {
	var flags []string
	if f&onCurvePoint != 0 {
		flags = append(flags, "onCurvePoint")
	}
	if f&xShortVector != 0 {
		flags = append(flags, "xShortVector")
	}
	if f&yShortVector != 0 {
		flags = append(flags, "yShortVector")
	}
	if f&repeatFlag != 0 {
		flags = append(flags, "repeatFlag")
	}
	if f&xIsSameOrPositiveVector != 0 {
		flags = append(flags, "xIsSameOrPositiveVector")
	}
	if f&yIsSameOrPositiveVector != 0 {
		flags = append(flags, "yIsSameOrPositiveVector")
	}
	if f&overlapSimple != 0 {
		flags = append(flags, "overlapSimple")
	}
	if f&reservedFlag != 0 {
		flags = append(flags, "reserved")
	}
	return strings.Join(flags, "|")
}

// simpleGlyphDescription represents simple glyph descriptions (non composite glyphs).
// This is the table information needed when `numberOfContours >= 0`.
// The delta-encoded coordinate stream of the font file is decoded into absolute
// x and y coordinates at parse time.
type simpleGlyphDescription struct {
	// list of point indices for the last point of each contour, in increasing numeric order.
	endPtsOfContours []uint16 // numberOfContours elements.

	instructions []uint8

	// one flag, one absolute x and one absolute y coordinate per point.
	flags        []uint8
	xCoordinates []int16
	yCoordinates []int16
}

// parses description for a single simple glyph with `numContours` at current position in `r`.
func (f *font) parseSimpleGlyphDescription(r *byteReader, numContours int) (*simpleGlyphDescription, error) {
	if numContours == 0 {
		return nil, nil
	}

	var d simpleGlyphDescription

	err := r.readSlice(&d.endPtsOfContours, numContours)
	if err != nil {
		return nil, err
	}

	var instructionLength uint16
	err = r.read(&instructionLength)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&d.instructions, int(instructionLength))
	if err != nil {
		return nil, err
	}

	// total number of points (all contours).
	numPoints := int(d.endPtsOfContours[numContours-1]) + 1
	common.Log.Trace("Number of points: %d", numPoints)

	// flags (one per point, with run-length packing).
	for len(d.flags) < numPoints {
		var flag uint8
		err := r.read(&flag)
		if err != nil {
			return nil, err
		}
		common.Log.Trace("flag: %d (%s)", flag, simpleGlyphFlag(flag).String())

		d.flags = append(d.flags, flag)

		if simpleGlyphFlag(flag)&repeatFlag != 0 {
			// following byte specifies number of times this flag is to be repeated.
			var repeats uint8
			err := r.read(&repeats)
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(repeats); i++ {
				d.flags = append(d.flags, flag)
			}
		}
	}
	if len(d.flags) != numPoints {
		common.Log.Debug("Number of flags != number of points (%d != %d)", len(d.flags), numPoints)
		return nil, errRangeCheck
	}

	// x coordinates: delta decoded to absolute values.
	var x int16
	for _, flag := range d.flags {
		sflag := simpleGlyphFlag(flag)
		switch {
		case sflag&xShortVector != 0:
			var mag uint8
			err := r.read(&mag)
			if err != nil {
				return nil, err
			}
			if sflag&xIsSameOrPositiveVector != 0 {
				x += int16(mag)
			} else {
				x -= int16(mag)
			}
		case sflag&xIsSameOrPositiveVector != 0:
			// same as previous x, delta 0.
		default:
			var delta int16
			err := r.read(&delta)
			if err != nil {
				return nil, err
			}
			x += delta
		}
		d.xCoordinates = append(d.xCoordinates, x)
	}

	// y coordinates: delta decoded to absolute values.
	var y int16
	for _, flag := range d.flags {
		sflag := simpleGlyphFlag(flag)
		switch {
		case sflag&yShortVector != 0:
			var mag uint8
			err := r.read(&mag)
			if err != nil {
				return nil, err
			}
			if sflag&yIsSameOrPositiveVector != 0 {
				y += int16(mag)
			} else {
				y -= int16(mag)
			}
		case sflag&yIsSameOrPositiveVector != 0:
			// same as previous y, delta 0.
		default:
			var delta int16
			err := r.read(&delta)
			if err != nil {
				return nil, err
			}
			y += delta
		}
		d.yCoordinates = append(d.yCoordinates, y)
	}

	return &d, nil
}

// GlyphOutline exposes the decoded contour points of one simple glyph:
// point count and per-point coordinate, on-curve flag and end-of-contour flag.
type GlyphOutline struct {
	sgd    *simpleGlyphDescription
	endSet map[int]bool
}

// PointCount returns the total number of contour points of the glyph.
func (o *GlyphOutline) PointCount() int {
	if o.sgd == nil {
		return 0
	}
	return len(o.sgd.flags)
}

// X returns the x coordinate of point `i` in design units.
func (o *GlyphOutline) X(i int) int {
	return int(o.sgd.xCoordinates[i])
}

// Y returns the y coordinate of point `i` in design units.
func (o *GlyphOutline) Y(i int) int {
	return int(o.sgd.yCoordinates[i])
}

// OnCurve returns true if point `i` lies on the outline (as opposed to being
// a quadratic control point).
func (o *GlyphOutline) OnCurve(i int) bool {
	return simpleGlyphFlag(o.sgd.flags[i])&onCurvePoint != 0
}

// EndOfContour returns true if point `i` is the last point of some contour.
func (o *GlyphOutline) EndOfContour(i int) bool {
	return o.endSet[i]
}

// glyphOutline returns the decoded outline of glyph `gid`. The bool flag is false
// when the glyph has no retrievable outline: gid out of range, no glyph data, or
// a composite glyph (not flattened here).
func (f *font) glyphOutline(gid GlyphIndex) (*GlyphOutline, bool) {
	if f.glyf == nil || int(gid) >= len(f.glyf.descs) {
		return nil, false
	}
	desc := f.glyf.descs[gid]
	if desc == nil {
		return nil, false
	}
	if desc.composite != nil {
		common.Log.Debug("Composite glyph not supported (GID %d)", gid)
		return nil, false
	}
	if desc.simple == nil {
		// Zero contours: a valid glyph with empty geometry.
		return &GlyphOutline{}, true
	}

	endSet := map[int]bool{}
	for _, e := range desc.simple.endPtsOfContours {
		endSet[int(e)] = true
	}
	return &GlyphOutline{sgd: desc.simple, endSet: endSet}, true
}

type compositeGlyphFlag uint16

const (
	arg1And2AreWords compositeGlyphFlag = (1 << iota) // If set, the args are 16-bit (uint16/int16), otherwise uint8/int8.
	argsAreXYValues                                   // If set, the args are signed xy values (otherwise unsigned).
	roundXYToGrid
	weHaveAScale
	_              // reserved
	moreComponents // Indicates at least one glyph following this one.
	weHaveAnXAndYScale
	weHaveATwoByTwo
	weHaveInstructions
	useMyMetrics
	overlapCompound
	scaledComponentOffset
	unscaledComponentOffset
)

func (f compositeGlyphFlag) IsSet(flag compositeGlyphFlag) bool {
	return f&flag != 0
}

// compositeGlyphDescription represents a composite glyph referencing other glyphs
// as components. Parsed structurally; component flattening is left to the caller.
type compositeGlyphDescription struct {
	components   []compositeGlyphComponent
	instructions []uint8
}

type compositeGlyphComponent struct {
	flags      uint16
	glyphIndex uint16
	argument1  uint16 // uint8, int8, uint16 or int16.
	argument2  uint16 // uint8, int8, uint16 or int16.

	// Optional transformation values.
	scale          *f2dot14 // same scale for x and y.
	scaleX, scaleY *f2dot14 // x and y scales.
	a, b, c, d     *f2dot14 // 2x2 transform.
}

// gdLen is the length of the glyph data record according to the loca table.
// It is used to determine the length of the instructions following the record if present.
func (f *font) parseCompositeGlyphDescription(r *byteReader, gdLen int64) (*compositeGlyphDescription, error) {
	cgd := &compositeGlyphDescription{}

	start := r.Offset()

	instructionsFollow := false
	for {
		comp := compositeGlyphComponent{}
		err := r.read(&comp.flags, &comp.glyphIndex)
		if err != nil {
			return nil, err
		}
		cflags := compositeGlyphFlag(comp.flags)

		if cflags.IsSet(arg1And2AreWords) {
			var arg1, arg2 uint16
			err := r.read(&arg1, &arg2)
			if err != nil {
				return nil, err
			}
			comp.argument1, comp.argument2 = arg1, arg2
		} else {
			var arg1, arg2 uint8
			err := r.read(&arg1, &arg2)
			if err != nil {
				return nil, err
			}
			comp.argument1, comp.argument2 = uint16(arg1), uint16(arg2)
		}

		switch {
		case cflags.IsSet(weHaveAScale):
			var scale f2dot14
			err := r.read(&scale)
			if err != nil {
				return nil, err
			}
			comp.scale = &scale
		case cflags.IsSet(weHaveAnXAndYScale):
			var scaleX, scaleY f2dot14
			err := r.read(&scaleX, &scaleY)
			if err != nil {
				return nil, err
			}
			comp.scaleX, comp.scaleY = &scaleX, &scaleY
		case cflags.IsSet(weHaveATwoByTwo):
			var a, b, c, d f2dot14
			err := r.read(&a, &b, &c, &d)
			if err != nil {
				return nil, err
			}
			comp.a, comp.b, comp.c, comp.d = &a, &b, &c, &d
		}

		if cflags.IsSet(weHaveInstructions) {
			instructionsFollow = true
		}

		cgd.components = append(cgd.components, comp)

		if !cflags.IsSet(moreComponents) {
			break
		}
	}

	if instructionsFollow {
		// Header (10 bytes) plus component data read so far, plus the
		// instruction count field itself.
		read := r.Offset() - start + 10 + 2
		if read > gdLen {
			common.Log.Debug("Read more than length in loca table showed")
			return nil, errRangeCheck
		}

		var instructionLength uint16
		err := r.read(&instructionLength)
		if err != nil {
			return nil, err
		}
		err = r.readSlice(&cgd.instructions, int(instructionLength))
		if err != nil {
			common.Log.Debug("Failed to read instructions")
			return nil, err
		}
	}

	return cgd, nil
}
