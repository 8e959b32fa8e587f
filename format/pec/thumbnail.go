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
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/JimmiFriborg/EmbroiderSize"
)

// PEC thumbnail geometry: 48×38 pixels, one bit per pixel, rows packed
// LSB first.
const (
	thumbnailWidth      = 48
	thumbnailHeight     = 38
	thumbnailWidthBytes = thumbnailWidth / 8
	thumbnailSize       = thumbnailWidthBytes * thumbnailHeight
)

// renderThumbnail rasterises the design's stitch path into the overview
// bitmap shown on the machine display.  The path is drawn into a
// higher-resolution canvas first and then downsampled, so diagonal runs
// do not fall apart into disconnected dots.
func renderThumbnail(design *embroidery.Design) [thumbnailSize]byte {
	var out [thumbnailSize]byte

	bounds := design.Bounds()
	if bounds.Dx() <= 0 && bounds.Dy() <= 0 {
		return out
	}

	const superSample = 4
	srcW := thumbnailWidth * superSample
	srcH := thumbnailHeight * superSample
	src := image.NewGray(image.Rect(0, 0, srcW, srcH))

	// map design units onto the canvas, preserving aspect ratio with a
	// one-pixel margin
	scale := math.Min(
		float64(srcW-2*superSample)/math.Max(bounds.Dx(), 1),
		float64(srcH-2*superSample)/math.Max(bounds.Dy(), 1),
	)
	offX := (float64(srcW) - bounds.Dx()*scale) / 2
	offY := (float64(srcH) - bounds.Dy()*scale) / 2

	toCanvas := func(s embroidery.Stitch) (float64, float64) {
		return (s.Pos.X-bounds.MinX)*scale + offX, (s.Pos.Y-bounds.MinY)*scale + offY
	}

	for _, block := range design.Blocks {
		for i := 1; i < len(block.Stitches); i++ {
			cur := block.Stitches[i]
			if cur.Type != embroidery.Run {
				continue
			}
			x0, y0 := toCanvas(block.Stitches[i-1])
			x1, y1 := toCanvas(cur)
			plotLine(src, x0, y0, x1, y1)
		}
	}

	dst := image.NewGray(image.Rect(0, 0, thumbnailWidth, thumbnailHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	for y := 0; y < thumbnailHeight; y++ {
		for x := 0; x < thumbnailWidth; x++ {
			if dst.GrayAt(x, y).Y > 0 {
				out[y*thumbnailWidthBytes+x/8] |= 1 << (x % 8)
			}
		}
	}
	return out
}

// plotLine draws a straight segment by stepping one pixel at a time.
func plotLine(img *image.Gray, x0, y0, x1, y1 float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		if image.Pt(x, y).In(img.Bounds()) {
			img.Pix[y*img.Stride+x] = 0xFF
		}
	}
}
