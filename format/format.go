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

// Package format dispatches embroidery file data to the right codec.
package format

import (
	"path/filepath"
	"strings"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/format/dst"
	"github.com/JimmiFriborg/EmbroiderSize/format/pec"
)

// Codec reads and writes one embroidery file format.
type Codec interface {
	// Extensions returns the file extensions (with leading dot, lower
	// case) the codec handles.
	Extensions() []string

	// Sniff reports whether buf plausibly starts a file in this format.
	Sniff(buf []byte) bool

	// Parse decodes a complete file.
	Parse(buf []byte, fileName string) (*embroidery.Design, error)

	// Write encodes the design as a complete file.
	Write(design *embroidery.Design) ([]byte, error)
}

// codecs lists every supported codec.  Detection tries them in order, so
// formats with unambiguous magic bytes come first.
var codecs = []Codec{
	pec.Codec{},
	dst.Codec{},
}

// Extensions returns the file extensions of all supported formats.
func Extensions() []string {
	var res []string
	for _, c := range codecs {
		res = append(res, c.Extensions()...)
	}
	return res
}

// ByExtension returns the codec for the given file name, or nil if the
// extension is not recognised.
func ByExtension(fileName string) Codec {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, c := range codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				return c
			}
		}
	}
	return nil
}

// Detect returns the codec whose format buf appears to be in, or nil if
// no codec recognises the data.
func Detect(buf []byte) Codec {
	for _, c := range codecs {
		if c.Sniff(buf) {
			return c
		}
	}
	return nil
}

// Parse decodes an embroidery file.  The codec is chosen by the file
// name extension first and by content sniffing as a fallback, so a
// mislabelled file still parses when its contents are recognisable.
func Parse(buf []byte, fileName string) (*embroidery.Design, error) {
	if c := ByExtension(fileName); c != nil {
		design, err := c.Parse(buf, fileName)
		if err == nil {
			return design, nil
		}
		// fall through to sniffing unless the content matched the
		// extension's format
		if c.Sniff(buf) {
			return nil, err
		}
	}
	if c := Detect(buf); c != nil {
		return c.Parse(buf, fileName)
	}
	return nil, embroidery.ErrUnsupportedFormat
}

// Write encodes the design in the format implied by the file name
// extension.  Unrecognised extensions fall back to PES.
func Write(design *embroidery.Design, fileName string) ([]byte, error) {
	c := ByExtension(fileName)
	if c == nil {
		c = pec.Codec{}
	}
	return c.Write(design)
}
