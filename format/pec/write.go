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

package pec

import (
	"math"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/cursor"
)

// Write encodes a design as a PES file with an embedded PEC block.
//
// PEC coordinates are geometry-centred: the centre of the design's
// bounding box is subtracted from every stitch before delta encoding.
// Stop stitches are not written (the colour-change marker covers them);
// End stitches are covered by the stream terminator.
func (Codec) Write(design *embroidery.Design) ([]byte, error) {
	w := cursor.NewWriter()
	w.String(pesMagic)
	w.String(pesVersion)
	w.Uint32(pesHeaderLength) // PEC block follows immediately

	writePEC(w, design)
	return w.Bytes(), nil
}

func writePEC(w *cursor.Writer, design *embroidery.Design) {
	pecStart := w.Pos()

	colorCount := len(design.Threads)
	if colorCount == 0 {
		colorCount = 1
	}
	if colorCount > 255 {
		colorCount = 255
	}

	w.String("LA:")
	w.FixedString(design.Name, 16, ' ')
	w.Padding(12, 0x20)
	w.Uint8(0xFF) // thumbnail present
	w.Uint8(thumbnailWidthBytes)
	w.Uint8(thumbnailHeight)
	w.Padding(10, 0x00)

	w.Uint8(uint8(colorCount - 1))
	for i := 0; i < colorCount; i++ {
		if i < len(design.Threads) {
			w.Uint8(paletteIndex(design.Threads[i]))
		} else {
			w.Uint8(0)
		}
	}
	w.Padding(pecStart+stitchDataOffset-w.Pos(), 0x20)

	writeStitches(w, design)

	// overview thumbnail, rasterised from the stitch path
	thumb := renderThumbnail(design)
	w.Write(thumb[:])
}

func writeStitches(w *cursor.Writer, design *embroidery.Design) {
	bounds := design.Bounds()
	center := bounds.Center()
	cx := math.Round(center.X)
	cy := math.Round(center.Y)

	lastX, lastY := 0, 0
	first := true
	for _, block := range design.Blocks {
		if len(block.Stitches) == 0 {
			continue
		}
		if !first {
			w.Uint8(byteColorChange)
			w.Uint8(byteColorArg)
		}
		first = false

		for _, s := range block.Stitches {
			switch s.Type {
			case embroidery.Stop, embroidery.End:
				continue
			}

			x := int(math.Round(s.Pos.X - cx))
			y := int(math.Round(s.Pos.Y - cy))
			dx := x - lastX
			dy := y - lastY

			for dx > longFormLimit || dx < -longFormLimit ||
				dy > longFormLimit || dy < -longFormLimit {
				stepX := clamp(dx, -longFormLimit, longFormLimit)
				stepY := clamp(dy, -longFormLimit, longFormLimit)
				writeLongForm(w, stepX, stepY, flagJump)
				dx -= stepX
				dy -= stepY
			}

			switch {
			case s.Type == embroidery.Jump:
				writeLongForm(w, dx, dy, flagJump)
			case s.Type == embroidery.Trim:
				writeLongForm(w, dx, dy, flagTrim)
			case dx >= -shortFormLimit && dx <= shortFormLimit &&
				dy >= -shortFormLimit && dy <= shortFormLimit:
				w.Uint8(shortForm(dx))
				w.Uint8(shortForm(dy))
			default:
				writeLongForm(w, dx, dy, 0)
			}
			lastX, lastY = x, y
		}
	}
	w.Uint8(byteEnd)
	w.Uint8(0x00)
}

// shortForm encodes a movement in -64..63 as 7-bit two's complement.
func shortForm(v int) byte {
	return byte(v) & 0x7F
}

// writeLongForm encodes both axes as 12-bit two's complement pairs.  The
// flag bits ride on the high byte of each axis.
func writeLongForm(w *cursor.Writer, dx, dy int, flags byte) {
	for _, v := range []int{dx, dy} {
		u := v & 0x0FFF
		w.Uint8(longFormFlag | flags | byte(u>>8))
		w.Uint8(byte(u))
	}
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
