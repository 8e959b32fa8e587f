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
	"time"

	"github.com/google/uuid"
)

// Metadata records the provenance of a design.  The Original* fields
// always refer to the state at import time, never to an intermediate
// rescale: ScaleFactor is cumulative relative to the original import.
type Metadata struct {
	OriginalWidthMm  float64
	OriginalHeightMm float64
	ScaleFactor      float64

	OriginalStitchCount int
	CurrentStitchCount  int

	FileName   string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Design is a complete embroidery document: the colour blocks in execution
// order, the thread list they index into, and the machine profile the
// design is validated against.
//
// A Design is created by a format codec, transformed by the rescale
// package and consumed by a codec's Write method.  Every producer assigns
// a fresh ID.
type Design struct {
	ID             uuid.UUID
	Name           string
	OriginalFormat string

	Blocks  []ColorBlock
	Threads []Thread

	Profile MachineProfile
	Meta    Metadata
}

// NewDesign returns an empty design with a fresh identity and the default
// machine profile.
func NewDesign(name string) *Design {
	return &Design{
		ID:      uuid.New(),
		Name:    name,
		Profile: BrotherPP1,
		Meta: Metadata{
			ScaleFactor: 1,
			CreatedAt:   time.Now(),
		},
	}
}

// Bounds returns the bounding box of all stitches, in logical units.
// The zero rectangle is returned for a design without stitches.
func (d *Design) Bounds() Rect {
	var bounds Rect
	first := true
	for _, block := range d.Blocks {
		for _, s := range block.Stitches {
			if first {
				bounds = Rect{MinX: s.Pos.X, MinY: s.Pos.Y, MaxX: s.Pos.X, MaxY: s.Pos.Y}
				first = false
				continue
			}
			bounds.ExtendVec(s.Pos)
		}
	}
	return bounds
}

// WidthMm returns the width of the design in millimetres.
func (d *Design) WidthMm() float64 {
	b := d.Bounds()
	return UnitsToMm(b.Dx())
}

// HeightMm returns the height of the design in millimetres.
func (d *Design) HeightMm() float64 {
	b := d.Bounds()
	return UnitsToMm(b.Dy())
}

// StitchCount returns the total number of stitches, control signals
// included.
func (d *Design) StitchCount() int {
	n := 0
	for _, block := range d.Blocks {
		n += len(block.Stitches)
	}
	return n
}

// SpecialStitchCount returns the number of jump, trim, stop and end
// stitches.
func (d *Design) SpecialStitchCount() int {
	n := 0
	for _, block := range d.Blocks {
		for _, s := range block.Stitches {
			if s.Type.IsSpecial() {
				n++
			}
		}
	}
	return n
}

// ColorChanges returns the number of colour-change events, i.e. the number
// of block boundaries.
func (d *Design) ColorChanges() int {
	if len(d.Blocks) == 0 {
		return 0
	}
	return len(d.Blocks) - 1
}

// Clone returns a deep copy of the design with a fresh identity.
func (d *Design) Clone() *Design {
	out := *d
	out.ID = uuid.New()
	out.Blocks = make([]ColorBlock, len(d.Blocks))
	for i, block := range d.Blocks {
		stitches := make([]Stitch, len(block.Stitches))
		copy(stitches, block.Stitches)
		out.Blocks[i] = ColorBlock{ColorIndex: block.ColorIndex, Stitches: stitches}
	}
	out.Threads = make([]Thread, len(d.Threads))
	copy(out.Threads, d.Threads)
	return &out
}
