/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package glyph2d

// glyphCache memoizes built paths by glyph index. Cached paths are never
// mutated in place; callers clone on retrieval.
type glyphCache struct {
	paths map[int]*Path
}

func newGlyphCache() *glyphCache {
	return &glyphCache{
		paths: map[int]*Path{},
	}
}

func (c *glyphCache) get(gid int) (*Path, bool) {
	p, has := c.paths[gid]
	return p, has
}

func (c *glyphCache) put(gid int, p *Path) {
	c.paths[gid] = p
}

func (c *glyphCache) clear() {
	c.paths = map[int]*Path{}
}
