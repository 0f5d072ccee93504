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
)

// buildGlyphData assembles glyph data bytes and returns a byteReader over them.
func buildGlyphData(t *testing.T, write func(w *byteWriter)) *byteReader {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	write(w)
	require.NoError(t, w.flush())
	return newByteReader(bytes.NewReader(buf.Bytes()))
}

func TestParseSimpleGlyphLongVectors(t *testing.T) {
	// One contour, 4 on-curve points forming a square, long (int16) deltas.
	r := buildGlyphData(t, func(w *byteWriter) {
		// header
		require.NoError(t, w.write(int16(1), int16(0), int16(0), int16(100), int16(100)))
		// endPtsOfContours, instructionLength
		require.NoError(t, w.write(uint16(3), uint16(0)))
		// flags: onCurvePoint, no short vectors.
		require.NoError(t, w.writeSlice([]uint8{0x01, 0x01, 0x01, 0x01}))
		// x deltas
		require.NoError(t, w.writeSlice([]int16{0, 0, 100, 0}))
		// y deltas
		require.NoError(t, w.writeSlice([]int16{0, 100, 0, -100}))
	})

	f := &font{}
	desc, err := f.parseGlyphDescription(r, 0)
	require.NoError(t, err)
	require.NotNil(t, desc)
	require.True(t, desc.IsSimple())
	require.NotNil(t, desc.simple)

	sgd := desc.simple
	assert.Equal(t, []uint16{3}, sgd.endPtsOfContours)
	assert.Equal(t, []int16{0, 0, 100, 100}, sgd.xCoordinates)
	assert.Equal(t, []int16{0, 100, 100, 0}, sgd.yCoordinates)
}

func TestParseSimpleGlyphShortVectorsAndRepeats(t *testing.T) {
	// One contour, 3 points. Short vectors with explicit signs and a repeated flag.
	const (
		fOn     = uint8(0x01)
		fXShort = uint8(0x02)
		fYShort = uint8(0x04)
		fRepeat = uint8(0x08)
		fXPos   = uint8(0x10)
		fYPos   = uint8(0x20)
	)

	r := buildGlyphData(t, func(w *byteWriter) {
		require.NoError(t, w.write(int16(1), int16(-50), int16(-50), int16(50), int16(50)))
		require.NoError(t, w.write(uint16(2), uint16(0)))
		// First flag covers two points via repeat: on-curve, short positive x, short positive y.
		require.NoError(t, w.write(fOn|fXShort|fYShort|fXPos|fYPos|fRepeat, uint8(1)))
		// Third point: short negative x, short negative y.
		require.NoError(t, w.write(fOn | fXShort | fYShort))
		// x magnitudes: +10, +20, -30
		require.NoError(t, w.writeSlice([]uint8{10, 20, 30}))
		// y magnitudes: +5, +15, -20
		require.NoError(t, w.writeSlice([]uint8{5, 15, 20}))
	})

	f := &font{}
	desc, err := f.parseGlyphDescription(r, 0)
	require.NoError(t, err)
	require.NotNil(t, desc.simple)

	sgd := desc.simple
	assert.Equal(t, []int16{10, 30, 0}, sgd.xCoordinates)
	assert.Equal(t, []int16{5, 20, 0}, sgd.yCoordinates)
	assert.Equal(t, 3, len(sgd.flags))
}

func TestGlyphOutlineAccessors(t *testing.T) {
	sgd := &simpleGlyphDescription{
		endPtsOfContours: []uint16{2, 5},
		flags:            []uint8{0x01, 0x00, 0x01, 0x01, 0x01, 0x01},
		xCoordinates:     []int16{0, 10, 20, 30, 40, 50},
		yCoordinates:     []int16{0, -10, -20, -30, -40, -50},
	}
	f := &font{
		glyf: &glyfTable{
			descs: []*glyphDescription{
				{simple: sgd},
			},
		},
	}

	o, ok := f.glyphOutline(0)
	require.True(t, ok)
	assert.Equal(t, 6, o.PointCount())
	assert.Equal(t, 10, o.X(1))
	assert.Equal(t, -10, o.Y(1))
	assert.True(t, o.OnCurve(0))
	assert.False(t, o.OnCurve(1))
	assert.True(t, o.EndOfContour(2))
	assert.True(t, o.EndOfContour(5))
	assert.False(t, o.EndOfContour(3))

	// Composite glyphs have no retrievable outline.
	f.glyf.descs = append(f.glyf.descs, &glyphDescription{composite: &compositeGlyphDescription{}})
	_, ok = f.glyphOutline(1)
	assert.False(t, ok)

	// Out of range.
	_, ok = f.glyphOutline(5)
	assert.False(t, ok)
}
