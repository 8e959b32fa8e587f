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

package validate

import (
	"github.com/JimmiFriborg/EmbroiderSize"
)

// Metrics summarises the stitch geometry of a design.  Distances are
// measured between consecutive stitches within a block; a pair is skipped
// when the later stitch is a jump, trim or stop, since the thread is not
// laid across such a movement.
type Metrics struct {
	StitchCount      int     // all stitches, control signals included
	AverageDensityMm float64 // mean distance between consecutive stitches
	MinSpacingMm     float64
	MaxSpacingMm     float64
	StitchesPerMm2   float64
	WidthMm          float64
	HeightMm         float64
}

// ComputeMetrics measures the stitch density of a design.  A design with
// no measurable stitch pairs yields zeroed metrics.
func ComputeMetrics(d *embroidery.Design) Metrics {
	totalUnits := 0.0
	pairs := 0
	minUnits := 0.0
	maxUnits := 0.0

	for _, block := range d.Blocks {
		for i := 1; i < len(block.Stitches); i++ {
			later := block.Stitches[i]
			switch later.Type {
			case embroidery.Jump, embroidery.Trim, embroidery.Stop:
				continue
			}
			dist := later.Pos.Sub(block.Stitches[i-1].Pos).Length()
			totalUnits += dist
			if pairs == 0 || dist < minUnits {
				minUnits = dist
			}
			if dist > maxUnits {
				maxUnits = dist
			}
			pairs++
		}
	}

	if pairs == 0 {
		return Metrics{}
	}

	bounds := d.Bounds()
	widthMm := embroidery.UnitsToMm(bounds.Dx())
	heightMm := embroidery.UnitsToMm(bounds.Dy())

	m := Metrics{
		StitchCount:      d.StitchCount(),
		AverageDensityMm: embroidery.UnitsToMm(totalUnits / float64(pairs)),
		MinSpacingMm:     embroidery.UnitsToMm(minUnits),
		MaxSpacingMm:     embroidery.UnitsToMm(maxUnits),
		WidthMm:          widthMm,
		HeightMm:         heightMm,
	}
	if area := widthMm * heightMm; area > 0 {
		m.StitchesPerMm2 = float64(m.StitchCount) / area
	}
	return m
}
