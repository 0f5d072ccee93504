/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// CMap maps character codes of a given byte width to mapped strings, as
// CID-keyed fonts carry them.
type CMap interface {
	// Lookup returns the string mapped to `code` when read as `numBytes`
	// bytes. Returns false when the code has no mapping at that width.
	Lookup(code int, numBytes int) (string, bool)
	// HasTwoByteMappings reports whether the CMap contains any two-byte
	// code mappings.
	HasTwoByteMappings() bool
}

type cmapKey struct {
	code     int
	numBytes int
}

// StaticCMap is a map-backed CMap.
type StaticCMap struct {
	name     string
	mappings map[cmapKey]string
	twoByte  bool
}

// NewStaticCMap returns an empty CMap named `name`.
func NewStaticCMap(name string) *StaticCMap {
	return &StaticCMap{
		name:     name,
		mappings: map[cmapKey]string{},
	}
}

// Name returns the CMap name.
func (c *StaticCMap) Name() string {
	return c.name
}

// Add maps `code`, read as `numBytes` bytes, to `s`.
func (c *StaticCMap) Add(code int, numBytes int, s string) {
	c.mappings[cmapKey{code: code, numBytes: numBytes}] = s
	if numBytes == 2 {
		c.twoByte = true
	}
}

// Lookup returns the string mapped to `code` at byte width `numBytes`.
func (c *StaticCMap) Lookup(code int, numBytes int) (string, bool) {
	s, has := c.mappings[cmapKey{code: code, numBytes: numBytes}]
	return s, has
}

// HasTwoByteMappings reports whether any two-byte mappings were added.
func (c *StaticCMap) HasTwoByteMappings() bool {
	return c.twoByte
}
