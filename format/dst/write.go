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

package dst

import (
	"fmt"
	"math"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/cursor"
)

// Write encodes a design as a DST file.
//
// Stop stitches are not written: the block boundary already emits the
// colour-change record and the parser re-inserts the marker.  End
// stitches are covered by the end-of-file sentinel.
func (Codec) Write(design *embroidery.Design) ([]byte, error) {
	stitches := cursor.NewWriter()
	records := 0
	lastX, lastY := 0, 0
	first := true

	for _, block := range design.Blocks {
		if len(block.Stitches) == 0 {
			continue
		}
		if !first {
			stitches.Write([]byte{0x00, 0x00, flagColorChange})
		}
		first = false

		for _, s := range block.Stitches {
			switch s.Type {
			case embroidery.Stop, embroidery.End:
				continue
			}

			x := int(math.Round(s.Pos.X))
			y := int(math.Round(s.Pos.Y))
			dx := x - lastX
			dy := y - lastY

			// movements beyond one record's range become a jump sequence
			for dx > maxDelta || dx < -maxDelta || dy > maxDelta || dy < -maxDelta {
				stepX := clamp(dx, -maxDelta, maxDelta)
				stepY := clamp(dy, -maxDelta, maxDelta)
				rec := encodeDelta(stepX, stepY, flagJump)
				stitches.Write(rec[:])
				records++
				dx -= stepX
				dy -= stepY
			}

			// DST has no trim record; machines trim on long jumps, so
			// trims degrade to jumps here
			flags := byte(flagStitch)
			switch s.Type {
			case embroidery.Jump, embroidery.Trim:
				flags = flagJump
			}
			rec := encodeDelta(dx, dy, flags)
			stitches.Write(rec[:])
			records++
			lastX, lastY = x, y
		}
	}
	stitches.Write([]byte{0x00, 0x00, flagEnd})

	w := cursor.NewWriter()
	writeHeader(w, design, records)
	w.Write(stitches.Bytes())
	return w.Bytes(), nil
}

func writeHeader(w *cursor.Writer, design *embroidery.Design, stitchCount int) {
	w.String("LA:")
	w.FixedString(design.Name, 16, ' ')
	w.Padding(3, ' ')
	w.Padding(97-w.Pos(), ' ')

	blockCount := 0
	for _, block := range design.Blocks {
		if len(block.Stitches) > 0 {
			blockCount++
		}
	}
	colorChanges := blockCount - 1
	if colorChanges < 0 {
		colorChanges = 0
	}
	w.String(fmt.Sprintf("ST:%7d", stitchCount))
	w.String(fmt.Sprintf("CO:%4d", colorChanges))

	bounds := design.Bounds()
	w.String(fmt.Sprintf("+X:%5d", extentMm(bounds.MaxX)))
	w.String(fmt.Sprintf("-X:%5d", extentMm(-bounds.MinX)))
	w.String(fmt.Sprintf("+Y:%5d", extentMm(bounds.MaxY)))
	w.String(fmt.Sprintf("-Y:%5d", extentMm(-bounds.MinY)))

	w.Padding(headerLength-w.Pos(), ' ')
}

// extentMm converts a coordinate extent in units to whole millimetres,
// floored at zero.
func extentMm(units float64) int {
	mm := int(math.Round(units / embroidery.UnitsPerMm))
	if mm < 0 {
		return 0
	}
	return mm
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
