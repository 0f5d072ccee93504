/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package glyph2d converts TrueType glyph outlines into vector paths and
// resolves character codes and CIDs to glyph indices.
//
// A TTFGlyph2D is built over a FontSource (typically a parsed TrueType font)
// together with the font's encoding and, for CID-keyed fonts, its descendant
// font descriptor. Paths are produced lazily per glyph index and cached;
// callers always receive independent copies.
//
// Instances are not safe for concurrent use without external synchronization.
package glyph2d
