/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/fontmill/glyph2d/common"

// font is a data model for truetype fonts with basic access methods.
// Only the tables needed for glyph outline extraction and code to glyph
// resolution are parsed: head, maxp, hhea, hmtx, loca, glyf, cmap, post, name.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	loca *locaTable
	glyf *glyfTable
	cmap *cmapTable
	post *postTable
	name *nameTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.hmtx, err = f.parseHmtx(r)
	if err != nil {
		return nil, err
	}

	if f.head != nil && f.maxp != nil {
		f.loca, err = f.parseLoca(r)
		if err != nil {
			return nil, err
		}
	}

	if f.loca != nil {
		f.glyf, err = f.parseGlyf(r)
		if err != nil {
			return nil, err
		}
	} else {
		common.Log.Debug("No loca table - glyph data not loaded")
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		return nil, err
	}

	if f.maxp != nil {
		f.post, err = f.parsePost(r)
		if err != nil {
			return nil, err
		}
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	return f, nil
}
