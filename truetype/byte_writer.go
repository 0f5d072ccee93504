/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/fontmill/glyph2d/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as laid out
// in truetype fonts. Writes are buffered until flushed. Used for assembling font table
// data, e.g. when constructing test fonts.
type byteWriter struct {
	w   io.Writer
	len int64

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		for _, val := range t {
			err := w.write(val)
			if err != nil {
				return err
			}
		}
	case []uint16:
		for _, val := range t {
			err := w.write(val)
			if err != nil {
				return err
			}
		}
	case []int16:
		for _, val := range t {
			err := w.write(val)
			if err != nil {
				return err
			}
		}
	case []offset16:
		for _, val := range t {
			err := w.write(val)
			if err != nil {
				return err
			}
		}
	case []offset32:
		for _, val := range t {
			err := w.write(val)
			if err != nil {
				return err
			}
		}
	default:
		common.Log.Debug("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// write writes a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		var size int64
		switch t := f.(type) {
		case uint8, int8:
			size = 1
		case uint16, int16, offset16, fword, ufword, f2dot14:
			size = 2
		case uint32, int32, offset32, fixed, tag:
			size = 4
		case longdatetime:
			size = 8
		default:
			common.Log.Debug("Write type check error: %T", t)
			return errTypeCheck
		}

		err := binary.Write(&w.buffer, binary.BigEndian, f)
		if err != nil {
			return err
		}
		w.len += size
	}

	return nil
}
