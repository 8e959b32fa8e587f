// EmbroiderSize - resize embroidery stitch files without ruining the stitches
// Copyright (C) 2026  Jimmi Friborg
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cursor implements sequential byte-level access to embroidery
// file buffers.  Both supported formats are little-endian; the big-endian
// readers exist for the few big-endian fields in format extensions.
package cursor

import (
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/JimmiFriborg/EmbroiderSize"
)

// Reader wraps an immutable byte buffer with a movable read offset.
// Reading past the end of the buffer is a hard error; there is no silent
// zero-fill.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

// EOF reports whether the read offset has reached the end of the buffer.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return &embroidery.CorruptFileError{Pos: r.pos, Err: io.ErrUnexpectedEOF}
	}
	return nil
}

// Seek moves the read offset to an absolute position.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return &embroidery.CorruptFileError{Pos: pos, Err: io.ErrUnexpectedEOF}
	}
	r.pos = pos
	return nil
}

// Skip advances the read offset by n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// PeekUint8 returns the next byte without advancing the offset.
func (r *Reader) PeekUint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.buf[r.pos], nil
}

// Uint8 reads one unsigned byte.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Int8 reads one signed byte.
func (r *Reader) Int8() (int8, error) {
	b, err := r.Uint8()
	return int8(b), err
}

// Uint16 reads a little-endian 16-bit unsigned integer.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// Int16 reads a little-endian 16-bit signed integer.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Uint16BE reads a big-endian 16-bit unsigned integer.
func (r *Reader) Uint16BE() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// Int16BE reads a big-endian 16-bit signed integer.
func (r *Reader) Int16BE() (int16, error) {
	v, err := r.Uint16BE()
	return int16(v), err
}

// Uint32 reads a little-endian 32-bit unsigned integer.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Int32 reads a little-endian 32-bit signed integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Uint32BE reads a big-endian 32-bit unsigned integer.
func (r *Reader) Uint32BE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Bytes reads n bytes.  The returned slice is a view into the underlying
// buffer, not a copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// String reads n bytes and decodes them as Windows-1252 text.  The
// embroidery formats predate UTF-8; the single-byte decoding keeps
// non-ASCII label bytes intact.
func (r *Reader) String(n int) (string, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", &embroidery.CorruptFileError{Pos: r.pos, Err: err}
	}
	return string(out), nil
}

// CString reads bytes up to the first zero byte, consuming at most max
// bytes from the buffer.  The zero byte, if found, is consumed but not
// returned.
func (r *Reader) CString(max int) (string, error) {
	if max > r.Remaining() {
		max = r.Remaining()
	}
	end := max
	terminated := false
	for i := 0; i < max; i++ {
		if r.buf[r.pos+i] == 0 {
			end = i
			terminated = true
			break
		}
	}
	s, err := r.String(end)
	if err != nil {
		return "", err
	}
	if terminated {
		r.pos++ // consume the terminator
	}
	return s, nil
}
