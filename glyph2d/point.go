/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

// glyphPoint is one classified contour point. The y coordinate is negated
// relative to the font design space, as path coordinate systems grow
// downward.
type glyphPoint struct {
	x, y         int
	onCurve      bool
	endOfContour bool
}

// describe classifies the contour points of `gd` into glyphPoints.
func describe(gd GlyphDescription) []glyphPoint {
	points := make([]glyphPoint, gd.PointCount())
	for i := range points {
		points[i] = glyphPoint{
			x:            gd.X(i),
			y:            -gd.Y(i),
			onCurve:      gd.OnCurve(i),
			endOfContour: gd.EndOfContour(i),
		}
	}
	return points
}
