/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textencoding provides the character encoding support consumed by the
// glyph pipeline: simple-font encodings mapping character codes to glyph names,
// glyph name to Unicode conversion based on the Adobe glyph list, the
// Macintosh Roman reverse table, and the CMap abstraction used by CID-keyed
// fonts.
package textencoding
