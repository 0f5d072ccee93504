/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype loads TrueType fonts and exposes the tables needed for
// glyph outline extraction: glyph point data, character-to-glyph mapping
// subtables, glyph names, metrics and font names.
package truetype
