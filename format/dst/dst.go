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

// Package dst reads and writes Tajima DST embroidery files.
//
// A DST file is a 512-byte ASCII header followed by 3-byte stitch
// records.  Each record encodes a signed X/Y movement as balanced
// ternary: magnitude tiers 1, 3, 9, 27 and 81 each occupy a pair of
// bits (positive, negative) spread across the three bytes, giving a
// range of ±121 units per axis.  The third byte doubles as the control
// byte: 0x03 for a normal stitch, 0x83 for a jump, 0xC3 for a colour
// change and 0xF3 for the end-of-file sentinel.
package dst

import (
	"github.com/JimmiFriborg/EmbroiderSize"
)

const (
	headerLength = 512

	// maximum movement a single record can represent
	maxDelta = 121

	// movements larger than this are classified as jumps on read
	jumpThreshold = 100

	flagStitch      = 0x03
	flagJump        = 0x83
	flagColorChange = 0xC3
	flagEnd         = 0xF3
)

// Codec is the DST format codec.
type Codec struct{}

// Extensions returns the file extensions handled by the codec.
func (Codec) Extensions() []string {
	return []string{".dst"}
}

// Sniff reports whether buf looks like a DST file, by checking for the
// mandatory stitch-count field in the 512-byte text header.  The label
// field alone is not enough, as other formats embed "LA:" markers too.
func (Codec) Sniff(buf []byte) bool {
	n := len(buf)
	if n > headerLength {
		n = headerLength
	}
	return countRegexp.Match(buf[:n])
}

// DST files carry no thread palette.  Parsed designs get one synthetic
// thread per colour block from this rotation so that conversion to
// palette-carrying formats has colours to work with.
var defaultThreads = []embroidery.Thread{
	{Color: "#000000", Name: "Black"},
	{Color: "#ff0000", Name: "Red"},
	{Color: "#0000ff", Name: "Blue"},
	{Color: "#00aa00", Name: "Green"},
	{Color: "#ffff00", Name: "Yellow"},
	{Color: "#ff00ff", Name: "Magenta"},
	{Color: "#00cccc", Name: "Cyan"},
	{Color: "#ff8800", Name: "Orange"},
}

func bit(b byte, n uint) int {
	if b&(1<<n) != 0 {
		return 1
	}
	return 0
}

// decodeDelta extracts the X and Y movement from a 3-byte record.
func decodeDelta(b0, b1, b2 byte) (dx, dy int) {
	dx = 81*(bit(b2, 2)-bit(b2, 3)) +
		27*(bit(b1, 2)-bit(b1, 3)) +
		9*(bit(b0, 2)-bit(b0, 3)) +
		3*(bit(b1, 0)-bit(b1, 1)) +
		(bit(b0, 0) - bit(b0, 1))
	dy = 81*(bit(b2, 5)-bit(b2, 4)) +
		27*(bit(b1, 5)-bit(b1, 4)) +
		9*(bit(b0, 5)-bit(b0, 4)) +
		3*(bit(b1, 7)-bit(b1, 6)) +
		(bit(b0, 7) - bit(b0, 6))
	return dx, dy
}

// encodeDelta packs an X/Y movement into a 3-byte record.  Both deltas
// must be within ±121; flags supplies the control bits of the third byte.
func encodeDelta(dx, dy int, flags byte) [3]byte {
	var b0, b1, b2 byte

	if dx > 40 {
		b2 |= 1 << 2
		dx -= 81
	}
	if dx < -40 {
		b2 |= 1 << 3
		dx += 81
	}
	if dy > 40 {
		b2 |= 1 << 5
		dy -= 81
	}
	if dy < -40 {
		b2 |= 1 << 4
		dy += 81
	}
	if dx > 13 {
		b1 |= 1 << 2
		dx -= 27
	}
	if dx < -13 {
		b1 |= 1 << 3
		dx += 27
	}
	if dy > 13 {
		b1 |= 1 << 5
		dy -= 27
	}
	if dy < -13 {
		b1 |= 1 << 4
		dy += 27
	}
	if dx > 4 {
		b0 |= 1 << 2
		dx -= 9
	}
	if dx < -4 {
		b0 |= 1 << 3
		dx += 9
	}
	if dy > 4 {
		b0 |= 1 << 5
		dy -= 9
	}
	if dy < -4 {
		b0 |= 1 << 4
		dy += 9
	}
	if dx > 1 {
		b1 |= 1 << 0
		dx -= 3
	}
	if dx < -1 {
		b1 |= 1 << 1
		dx += 3
	}
	if dy > 1 {
		b1 |= 1 << 7
		dy -= 3
	}
	if dy < -1 {
		b1 |= 1 << 6
		dy += 3
	}
	if dx > 0 {
		b0 |= 1 << 0
	}
	if dx < 0 {
		b0 |= 1 << 1
	}
	if dy > 0 {
		b0 |= 1 << 7
	}
	if dy < 0 {
		b0 |= 1 << 6
	}

	return [3]byte{b0, b1, b2 | flags}
}
