/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform provides affine transformation matrices for scaling glyph
// outlines from font design units to text space.
package transform

import (
	"fmt"
	"math"
)

// Matrix is a linear transform matrix in homogeneous coordinates.
// Points are transformed as row vectors: [x y 1] × M.
type Matrix [9]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return NewMatrix(1, 0, 0, 1, 0, 0)
}

// NewMatrix returns an affine transform matrix laid out for the six
// configurable values a, b, c, d, tx, ty.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{
		a, b, 0,
		c, d, 0,
		tx, ty, 1,
	}
}

// ScaleMatrix returns a matrix that scales by (sx, sy).
func ScaleMatrix(sx, sy float64) Matrix {
	return NewMatrix(sx, 0, 0, sy, 0, 0)
}

// TranslationMatrix returns a matrix that translates by (tx, ty).
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// String returns a string describing `m`.
func (m Matrix) String() string {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	return fmt.Sprintf("[%7.4f,%7.4f,%7.4f,%7.4f:%7.4f,%7.4f]", a, b, c, d, tx, ty)
}

// Mult returns the matrix product `m` × `b`.
func (m Matrix) Mult(b Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i*3+j] = m[i*3]*b[j] + m[i*3+1]*b[3+j] + m[i*3+2]*b[6+j]
		}
	}
	return p
}

// Scale returns `m` post-scaled by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mult(ScaleMatrix(sx, sy))
}

// Translate returns `m` post-translated by (tx, ty).
func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Mult(TranslationMatrix(tx, ty))
}

// Transform returns coordinates (x, y) transformed by `m`.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	xp := x*m[0] + y*m[3] + m[6]
	yp := x*m[1] + y*m[4] + m[7]
	return xp, yp
}

// Angle returns the rotation of the affine transform in degrees, in the
// range [0, 360).
func (m Matrix) Angle() float64 {
	theta := -math.Atan2(m[1], m[0])
	if theta < 0.0 {
		theta += 2 * math.Pi
	}
	return theta / math.Pi * 180.0
}

// Inverse returns the inverse of `m` and a bool indicating whether `m` is
// invertible.
func (m Matrix) Inverse() (Matrix, bool) {
	a, b := m[0], m[1]
	c, d := m[3], m[4]
	tx, ty := m[6], m[7]

	det := a*d - b*c
	if det == 0 {
		return Matrix{}, false
	}

	ai, bi := d/det, -b/det
	ci, di := -c/det, a/det
	txi := (c*ty - d*tx) / det
	tyi := (b*tx - a*ty) / det

	return NewMatrix(ai, bi, ci, di, txi, tyi), true
}
