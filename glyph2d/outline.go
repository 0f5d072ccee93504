/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

import (
	"github.com/fontmill/glyph2d/common"
)

// pointPattern is the on-curve pattern of a point and its one or two
// successors, which selects the reconstruction rule to apply.
type pointPattern int

const (
	// patternLine: current and next both on-curve.
	patternLine pointPattern = iota
	// patternQuadClosed: on, off, on.
	patternQuadClosed
	// patternQuadImplied: on, off, off. The pair of off-curve points
	// implies an on-curve midpoint.
	patternQuadImplied
	// patternQuadContinued: off, off. Continuation of a run of off-curve
	// points; valid only once a control point has been recorded.
	patternQuadContinued
	// patternQuadEnd: off, on.
	patternQuadEnd
	patternUnknown
)

func classify(point, next1, next2 glyphPoint) pointPattern {
	switch {
	case point.onCurve && next1.onCurve:
		return patternLine
	case point.onCurve && !next1.onCurve && next2.onCurve:
		return patternQuadClosed
	case point.onCurve && !next1.onCurve && !next2.onCurve:
		return patternQuadImplied
	case !point.onCurve && !next1.onCurve:
		return patternQuadContinued
	case !point.onCurve && next1.onCurve:
		return patternQuadEnd
	}
	return patternUnknown
}

// midValue returns the component midpoint a + (b-a)/2, rounding toward `a`
// on ties.
func midValue(a, b int) int {
	return a + (b-a)/2
}

// buildOutline walks the classified contour points of one glyph and
// reconstructs its path, synthesizing the on-curve points TrueType leaves
// implied between consecutive off-curve points. A point pattern not covered
// by any reconstruction rule is logged and terminates the walk; the partial
// path built so far is returned.
func buildOutline(points []glyphPoint) *Path {
	path := NewPath()
	n := len(points)
	i := 0

	awaitingContourStart := true
	var startingPoint glyphPoint
	var lastCtrlPoint glyphPoint
	haveCtrlPoint := false

	for i < n {
		point := points[i%n]
		next1 := points[(i+1)%n]
		next2 := points[(i+2)%n]

		if awaitingContourStart {
			// Skip degenerate marker-only slots.
			if point.endOfContour {
				i++
				continue
			}
			path.MoveTo(float64(point.x), float64(point.y))
			awaitingContourStart = false
			startingPoint = point
		}

		switch classify(point, next1, next2) {
		case patternLine:
			path.LineTo(float64(next1.x), float64(next1.y))
			i++
			if point.endOfContour || next1.endOfContour {
				awaitingContourStart = true
				path.Close()
			}

		case patternQuadClosed:
			if next1.endOfContour {
				// The contour wraps: the end point is its starting point.
				path.QuadraticTo(float64(next1.x), float64(next1.y),
					float64(startingPoint.x), float64(startingPoint.y))
			} else {
				path.QuadraticTo(float64(next1.x), float64(next1.y),
					float64(next2.x), float64(next2.y))
			}
			if next1.endOfContour || next2.endOfContour {
				awaitingContourStart = true
				path.Close()
			}
			i += 2
			lastCtrlPoint = next1
			haveCtrlPoint = true

		case patternQuadImplied:
			endX := midValue(next1.x, next2.x)
			endY := midValue(next1.y, next2.y)
			path.QuadraticTo(float64(next1.x), float64(next1.y), float64(endX), float64(endY))
			if point.endOfContour || next1.endOfContour || next2.endOfContour {
				path.QuadraticTo(float64(next2.x), float64(next2.y),
					float64(startingPoint.x), float64(startingPoint.y))
				awaitingContourStart = true
				path.Close()
			}
			i += 2
			lastCtrlPoint = next1
			haveCtrlPoint = true

		case patternQuadContinued:
			if !haveCtrlPoint {
				common.Log.Error("Off-curve point run without a preceding control point")
				return path
			}
			lastEnd := path.CurrentPoint()
			// The previous end point was synthesized; derive the control
			// point from the remembered one.
			lastCtrlPoint = glyphPoint{
				x: midValue(lastCtrlPoint.x, int(lastEnd.X)),
				y: midValue(lastCtrlPoint.y, int(lastEnd.Y)),
			}
			endX := midValue(int(lastEnd.X), next1.x)
			endY := midValue(int(lastEnd.Y), next1.y)
			path.QuadraticTo(float64(lastCtrlPoint.x), float64(lastCtrlPoint.y),
				float64(endX), float64(endY))
			if point.endOfContour || next1.endOfContour {
				awaitingContourStart = true
				path.Close()
			}
			i++

		case patternQuadEnd:
			path.QuadraticTo(float64(point.x), float64(point.y),
				float64(next1.x), float64(next1.y))
			if point.endOfContour || next1.endOfContour {
				awaitingContourStart = true
				path.Close()
			}
			i++
			lastCtrlPoint = point
			haveCtrlPoint = true

		default:
			common.Log.Error("Unknown glyph point pattern at %d", i)
			return path
		}
	}

	return path
}
