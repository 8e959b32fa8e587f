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

// Package pec reads and writes Brother PES embroidery files.
//
// A PES file is a small container around a PEC block, which carries the
// design label, the thread palette and the stitch stream.  This package
// writes a minimal container: the magic, a version tag and the offset of
// the PEC block; the optional design-info sections of larger PES versions
// are neither read nor written.
//
// PEC stitch movements come in two encodings.  A movement within ±63
// units on both axes takes one byte per axis, 7-bit two's complement.
// Anything longer, and any jump or trim, takes two bytes per axis: the
// high byte has its top bit set, carries the jump/trim flags and the top
// four bits of a 12-bit two's complement value, the low byte the rest.
// Oversized movements are split into jump steps of at most ±2047 units.
package pec

import (
	"fmt"
	"math"

	"github.com/JimmiFriborg/EmbroiderSize"
)

const (
	pesMagic   = "#PES"
	pesVersion = "0001"

	// size of the PES container header: magic, version, PEC offset
	pesHeaderLength = 12

	// offset of the stitch stream within the PEC block
	stitchDataOffset = 463

	// one axis of a short-form movement
	shortFormLimit = 63

	// one axis of a long-form movement
	longFormLimit = 2047

	byteEnd         = 0xFF
	byteColorChange = 0xFE
	byteColorArg    = 0xB0

	longFormFlag = 0x80
	flagJump     = 0x10
	flagTrim     = 0x20
)

// Codec is the PES/PEC format codec.
type Codec struct{}

// Extensions returns the file extensions handled by the codec.
func (Codec) Extensions() []string {
	return []string{".pes"}
}

// Sniff reports whether buf starts with the PES magic.
func (Codec) Sniff(buf []byte) bool {
	return len(buf) >= len(pesMagic) && string(buf[:len(pesMagic)]) == pesMagic
}

// machinePalette is the standard Brother thread palette referenced by the
// colour-index bytes of a PEC block.  Index bytes are reduced modulo the
// table size on read.
var machinePalette = []embroidery.Thread{
	{Color: "#1a0a94", Brand: "Brother", Name: "Prussian Blue"},
	{Color: "#0f75ff", Brand: "Brother", Name: "Blue"},
	{Color: "#00934c", Brand: "Brother", Name: "Teal Green"},
	{Color: "#babdfe", Brand: "Brother", Name: "Cornflower Blue"},
	{Color: "#ec0000", Brand: "Brother", Name: "Red"},
	{Color: "#e4995a", Brand: "Brother", Name: "Reddish Brown"},
	{Color: "#9011a6", Brand: "Brother", Name: "Magenta"},
	{Color: "#fbd3f8", Brand: "Brother", Name: "Light Lilac"},
	{Color: "#ff99ff", Brand: "Brother", Name: "Lilac"},
	{Color: "#6cd67d", Brand: "Brother", Name: "Mint Green"},
	{Color: "#e3a945", Brand: "Brother", Name: "Deep Gold"},
	{Color: "#ffb300", Brand: "Brother", Name: "Orange"},
	{Color: "#ffff00", Brand: "Brother", Name: "Yellow"},
	{Color: "#70bc1f", Brand: "Brother", Name: "Lime Green"},
	{Color: "#c09400", Brand: "Brother", Name: "Brass"},
	{Color: "#a8a8a8", Brand: "Brother", Name: "Silver"},
}

// writePaletteSize limits colour matching on write to the palette subset
// every PEC-capable machine is known to carry.
const writePaletteSize = 13

// paletteIndex maps a thread colour to an index into the writeable part
// of the machine palette.  An exact hex match wins; otherwise the entry
// with the smallest RGB distance is chosen.
func paletteIndex(t embroidery.Thread) byte {
	for i := 0; i < writePaletteSize; i++ {
		if machinePalette[i].Color == t.Color {
			return byte(i)
		}
	}

	r, g, b, err := parseHexColor(t.Color)
	if err != nil {
		return 0
	}
	best := 0
	bestDist := math.MaxFloat64
	for i := 0; i < writePaletteSize; i++ {
		pr, pg, pb, err := parseHexColor(machinePalette[i].Color)
		if err != nil {
			continue
		}
		dr := float64(r) - float64(pr)
		dg := float64(g) - float64(pg)
		db := float64(b) - float64(pb)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return byte(best)
}

func parseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", s)
	}
	_, err = fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	return r, g, b, err
}
