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
	"regexp"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/vec"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/cursor"
)

var (
	labelRegexp = regexp.MustCompile(`LA:([^\r\x1a]{0,16})`)
	countRegexp = regexp.MustCompile(`ST:\s*([0-9]+)`)
)

// Parse decodes a DST file into a design document.
func (c Codec) Parse(buf []byte, fileName string) (*embroidery.Design, error) {
	if !c.Sniff(buf) {
		return nil, &embroidery.InvalidFormatError{Format: "DST"}
	}

	r := cursor.NewReader(buf)
	header, err := r.String(headerLength)
	if err != nil {
		return nil, err
	}

	design := embroidery.NewDesign(strings.TrimSpace(matchField(labelRegexp, header)))
	design.OriginalFormat = "DST"
	design.Meta.FileName = fileName

	var (
		blocks     []embroidery.ColorBlock
		current    embroidery.ColorBlock
		x, y       float64
		colorIndex int
	)

	for r.Remaining() >= 3 {
		rec, err := r.Bytes(3)
		if err != nil {
			return nil, err
		}
		b0, b1, b2 := rec[0], rec[1], rec[2]

		if b0 == 0x00 && b1 == 0x00 && b2 == flagEnd {
			break
		}

		if b2&flagColorChange == flagColorChange {
			if len(current.Stitches) > 0 {
				blocks = append(blocks, current)
			}
			colorIndex++
			current = embroidery.ColorBlock{ColorIndex: colorIndex}
			current.Stitches = append(current.Stitches, embroidery.Stitch{
				Pos:        vec.Vec2{X: x, Y: y},
				Type:       embroidery.Stop,
				ColorIndex: colorIndex,
			})
			continue
		}

		dx, dy := decodeDelta(b0, b1, b2)
		if dx == 0 && dy == 0 {
			continue
		}
		x += float64(dx)
		y += float64(dy)

		typ := embroidery.Run
		if b2&0x80 != 0 || dx > jumpThreshold || dx < -jumpThreshold ||
			dy > jumpThreshold || dy < -jumpThreshold {
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

	design.Blocks = blocks
	for i := range blocks {
		design.Threads = append(design.Threads, defaultThreads[i%len(defaultThreads)])
	}

	total := design.StitchCount()
	bounds := design.Bounds()
	design.Meta.OriginalWidthMm = embroidery.UnitsToMm(bounds.Dx())
	design.Meta.OriginalHeightMm = embroidery.UnitsToMm(bounds.Dy())
	design.Meta.OriginalStitchCount = total
	design.Meta.CurrentStitchCount = total
	design.Meta.CreatedAt = time.Now()

	return design, nil
}

// DeclaredStitchCount extracts the ST: field from a DST header, or 0 if
// the field is absent or malformed.  The stitch stream is authoritative;
// the declared count only serves to cross-check truncated files.
func DeclaredStitchCount(buf []byte) int {
	n := len(buf)
	if n > headerLength {
		n = headerLength
	}
	m := countRegexp.FindSubmatch(buf[:n])
	if m == nil {
		return 0
	}
	count, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0
	}
	return count
}

func matchField(re *regexp.Regexp, header string) string {
	m := re.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	return m[1]
}
