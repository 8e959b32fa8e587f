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

package embroidery

import (
	"errors"
	"strconv"
)

// ErrUnsupportedFormat indicates that a file matches none of the
// registered formats, by extension or by content.
var ErrUnsupportedFormat = errors.New("unsupported embroidery file format")

// CorruptFileError indicates that a file ended in the middle of a declared
// or implied field.  No partial document is recovered.
type CorruptFileError struct {
	Pos int
	Err error
}

func (err *CorruptFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.Itoa(err.Pos) + ")"
	}
	return "corrupt embroidery file" + middle + tail
}

func (err *CorruptFileError) Unwrap() error {
	return err.Err
}

// InvalidFormatError indicates that a buffer handed to a codec does not
// carry that codec's signature.  The caller may try another codec.
type InvalidFormatError struct {
	Format string
	Err    error
}

func (err *InvalidFormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "not a valid " + err.Format + " file" + middle
}

func (err *InvalidFormatError) Unwrap() error {
	return err.Err
}
