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
	"errors"
	"testing"

	"github.com/JimmiFriborg/EmbroiderSize"
)

func TestReaderIntegers(t *testing.T) {
	r := NewReader([]byte{0x01, 0xFF, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12})

	if v, err := r.Uint8(); err != nil || v != 1 {
		t.Errorf("Uint8: got %d, %v", v, err)
	}
	if v, err := r.Int8(); err != nil || v != -1 {
		t.Errorf("Int8: got %d, %v", v, err)
	}
	if v, err := r.Uint16(); err != nil || v != 0x1234 {
		t.Errorf("Uint16: got %#x, %v", v, err)
	}
	if v, err := r.Uint32(); err != nil || v != 0x12345678 {
		t.Errorf("Uint32: got %#x, %v", v, err)
	}
	if !r.EOF() {
		t.Error("expected EOF")
	}
}

func TestReaderBigEndian(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x12, 0x34, 0x56, 0x78})
	if v, err := r.Uint16BE(); err != nil || v != 0x1234 {
		t.Errorf("Uint16BE: got %#x, %v", v, err)
	}
	if v, err := r.Uint32BE(); err != nil || v != 0x12345678 {
		t.Errorf("Uint32BE: got %#x, %v", v, err)
	}
}

func TestReaderOutOfBounds(t *testing.T) {
	r := NewReader([]byte{0x00})
	_, err := r.Uint16()
	var corrupt *embroidery.CorruptFileError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptFileError, got %v", err)
	}
	// the failed read must not advance the offset
	if r.Pos() != 0 {
		t.Errorf("offset moved to %d after failed read", r.Pos())
	}
}

func TestReaderSeekSkipPeek(t *testing.T) {
	r := NewReader([]byte{10, 20, 30, 40})
	if err := r.Seek(2); err != nil {
		t.Fatal(err)
	}
	if v, err := r.PeekUint8(); err != nil || v != 30 {
		t.Errorf("PeekUint8: got %d, %v", v, err)
	}
	if r.Pos() != 2 {
		t.Errorf("peek advanced offset to %d", r.Pos())
	}
	if err := r.Skip(1); err != nil {
		t.Fatal(err)
	}
	if v, err := r.Uint8(); err != nil || v != 40 {
		t.Errorf("Uint8: got %d, %v", v, err)
	}
	if err := r.Seek(5); err == nil {
		t.Error("Seek past end should fail")
	}
}

func TestReaderCString(t *testing.T) {
	r := NewReader([]byte{'h', 'i', 0, 'x', 'y', 'z'})
	s, err := r.CString(6)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hi" {
		t.Errorf("got %q", s)
	}
	if r.Pos() != 3 {
		t.Errorf("terminator not consumed, pos = %d", r.Pos())
	}

	// unterminated string caps at max
	r = NewReader([]byte{'a', 'b', 'c'})
	s, err = r.CString(2)
	if err != nil {
		t.Fatal(err)
	}
	if s != "ab" {
		t.Errorf("got %q", s)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Uint8(0xAB)
	w.Uint16(0x1234)
	w.Uint32(0xDEADBEEF)
	w.Int16(-2)

	r := NewReader(w.Bytes())
	if v, _ := r.Uint8(); v != 0xAB {
		t.Errorf("Uint8: got %#x", v)
	}
	if v, _ := r.Uint16(); v != 0x1234 {
		t.Errorf("Uint16: got %#x", v)
	}
	if v, _ := r.Uint32(); v != 0xDEADBEEF {
		t.Errorf("Uint32: got %#x", v)
	}
	if v, _ := r.Int16(); v != -2 {
		t.Errorf("Int16: got %d", v)
	}
}

func TestWriterFixedString(t *testing.T) {
	w := NewWriter()
	w.FixedString("label", 8, ' ')
	if got := string(w.Bytes()); got != "label   " {
		t.Errorf("got %q", got)
	}

	w = NewWriter()
	w.FixedString("a very long design name", 8, ' ')
	if got := string(w.Bytes()); got != "a very l" {
		t.Errorf("got %q", got)
	}
	if w.Pos() != 8 {
		t.Errorf("pos = %d", w.Pos())
	}
}

func TestWriterPadding(t *testing.T) {
	w := NewWriter()
	w.Padding(3, 0x20)
	if got := string(w.Bytes()); got != "   " {
		t.Errorf("got %q", got)
	}
}
