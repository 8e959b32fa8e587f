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
	"fmt"
	"strings"
	"time"

	"seehuhn.de/go/geom/vec"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/cursor"
)

// Parse decodes a PES file into a design document.
func (c Codec) Parse(buf []byte, fileName string) (*embroidery.Design, error) {
	if !c.Sniff(buf) {
		return nil, &embroidery.InvalidFormatError{Format: "PES"}
	}

	r := cursor.NewReader(buf)
	if err := r.Skip(len(pesMagic)); err != nil {
		return nil, err
	}
	version, err := r.String(4)
	if err != nil {
		return nil, err
	}
	for _, c := range version {
		if c < '0' || c > '9' {
			return nil, &embroidery.InvalidFormatError{
				Format: "PES",
				Err:    fmt.Errorf("bad version tag %q", version),
			}
		}
	}
	pecOffset, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if err := r.Seek(int(pecOffset)); err != nil {
		return nil, &embroidery.InvalidFormatError{
			Format: "PES",
			Err:    fmt.Errorf("PEC offset %d outside file", pecOffset),
		}
	}
	pecStart := r.Pos()

	// PEC preamble: "LA:", label, padding, thumbnail flag and geometry
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	label, err := r.String(16)
	if err != nil {
		return nil, err
	}
	if err := r.Skip(12 + 1 + 12); err != nil {
		return nil, err
	}

	countByte, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	colorCount := int(countByte) + 1

	threads := make([]embroidery.Thread, colorCount)
	for i := 0; i < colorCount; i++ {
		idx, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		threads[i] = machinePalette[int(idx)%len(machinePalette)]
	}

	if err := r.Seek(pecStart + stitchDataOffset); err != nil {
		return nil, err
	}

	design := embroidery.NewDesign(strings.TrimSpace(label))
	design.OriginalFormat = "PES"
	design.Meta.FileName = fileName
	design.Threads = threads

	blocks, err := readStitches(r, colorCount)
	if err != nil {
		return nil, err
	}
	design.Blocks = blocks

	total := design.StitchCount()
	bounds := design.Bounds()
	design.Meta.OriginalWidthMm = embroidery.UnitsToMm(bounds.Dx())
	design.Meta.OriginalHeightMm = embroidery.UnitsToMm(bounds.Dy())
	design.Meta.OriginalStitchCount = total
	design.Meta.CurrentStitchCount = total
	design.Meta.CreatedAt = time.Now()

	return design, nil
}

func readStitches(r *cursor.Reader, colorCount int) ([]embroidery.ColorBlock, error) {
	var (
		blocks     []embroidery.ColorBlock
		current    embroidery.ColorBlock
		x, y       float64
		colorIndex int
	)

	for {
		b, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		if b == byteEnd {
			break
		}
		if b == byteColorChange {
			arg, err := r.Uint8()
			if err != nil {
				return nil, err
			}
			if arg != byteColorArg {
				return nil, &embroidery.CorruptFileError{
					Pos: r.Pos(),
					Err: fmt.Errorf("bad colour change argument %#02x", arg),
				}
			}
			if len(current.Stitches) > 0 {
				blocks = append(blocks, current)
			}
			colorIndex = (colorIndex + 1) % colorCount
			current = embroidery.ColorBlock{ColorIndex: colorIndex}
			current.Stitches = append(current.Stitches, embroidery.Stitch{
				Pos:        vec.Vec2{X: x, Y: y},
				Type:       embroidery.Stop,
				ColorIndex: colorIndex,
			})
			continue
		}

		dx, flagsX, err := readAxis(r, b)
		if err != nil {
			return nil, err
		}
		b, err = r.Uint8()
		if err != nil {
			return nil, err
		}
		dy, flagsY, err := readAxis(r, b)
		if err != nil {
			return nil, err
		}

		x += float64(dx)
		y += float64(dy)

		typ := embroidery.Run
		switch {
		case (flagsX|flagsY)&flagTrim != 0:
			typ = embroidery.Trim
		case (flagsX|flagsY)&flagJump != 0:
			typ = embroidery.Jump
		}
		current.Stitches = append(current.Stitches, embroidery.Stitch{
			Pos:        vec.Vec2{X: x, Y: y},
			Type:       typ,
			ColorIndex: colorIndex,
		})
	}
	if len(current.Stitches) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

// readAxis decodes one axis of a movement.  The first byte has already
// been consumed; long-form movements consume one more.
func readAxis(r *cursor.Reader, b byte) (int, byte, error) {
	if b&longFormFlag == 0 {
		// short form: 7-bit two's complement
		v := int(b)
		if v >= 64 {
			v -= 128
		}
		return v, 0, nil
	}

	lo, err := r.Uint8()
	if err != nil {
		return 0, 0, err
	}
	flags := b & (flagJump | flagTrim)
	v := int(b&0x0F)<<8 | int(lo)
	if v >= 2048 {
		v -= 4096
	}
	return v, flags, nil
}
