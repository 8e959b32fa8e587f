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

package cursor

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Writer accumulates bytes behind an append-only cursor.  Neither codec
// needs random-access overwrite, so none is offered.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Uint8 appends one byte.
func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

// Int8 appends one signed byte.
func (w *Writer) Int8(v int8) {
	w.Uint8(uint8(v))
}

// Uint16 appends a little-endian 16-bit unsigned integer.
func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// Int16 appends a little-endian 16-bit signed integer.
func (w *Writer) Int16(v int16) {
	w.Uint16(uint16(v))
}

// Uint32 appends a little-endian 32-bit unsigned integer.
func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Int32 appends a little-endian 32-bit signed integer.
func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

// Write appends raw bytes.
func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

// String appends s encoded as Windows-1252.  Runes outside the code page
// are replaced, never dropped, so field widths stay predictable.
func (w *Writer) String(s string) {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		// ReplaceUnsupported never fails; keep the raw bytes if it ever does.
		b = []byte(s)
	}
	w.buf = append(w.buf, b...)
}

// FixedString appends exactly n bytes: the encoded string truncated to n
// bytes, padded with pad.
func (w *Writer) FixedString(s string, n int, pad byte) {
	start := len(w.buf)
	w.String(s)
	if len(w.buf)-start > n {
		w.buf = w.buf[:start+n]
	}
	for len(w.buf)-start < n {
		w.buf = append(w.buf, pad)
	}
}

// Padding appends n copies of pad.
func (w *Writer) Padding(n int, pad byte) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, pad)
	}
}
