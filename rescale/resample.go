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

package rescale

import (
	"math"

	"github.com/JimmiFriborg/EmbroiderSize"
)

// interpolate fills stretched-out gaps in an upscaled block.  Each run of
// consecutive stitches further apart than 1.5 times the target spacing
// gets floor(distance/target)-1 evenly spaced points inserted, inheriting
// the earlier stitch's type and colour.  Control stitches are never the
// source of an interpolation.
func interpolate(stitches []embroidery.Stitch, targetUnits float64) []embroidery.Stitch {
	if len(stitches) < 2 {
		return stitches
	}
	out := make([]embroidery.Stitch, 0, len(stitches))
	for i := 0; i < len(stitches)-1; i++ {
		cur := stitches[i]
		out = append(out, cur)
		if cur.Type.IsSpecial() {
			continue
		}
		next := stitches[i+1]
		step := next.Pos.Sub(cur.Pos)
		dist := step.Length()
		if dist <= 1.5*targetUnits {
			continue
		}
		n := int(math.Floor(dist/targetUnits)) - 1
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n+1)
			out = append(out, embroidery.Stitch{
				Pos:        cur.Pos.Add(step.Mul(t)),
				Type:       cur.Type,
				ColorIndex: cur.ColorIndex,
			})
		}
	}
	return append(out, stitches[len(stitches)-1])
}

// reduce thins a downscaled block.  A stitch survives if it is a control
// stitch or if it has moved at least 0.7 times the target spacing away
// from the previously kept stitch.  Measuring from the kept stitch rather
// than the visited one keeps the error from drifting without bound.
func reduce(stitches []embroidery.Stitch, targetUnits float64) []embroidery.Stitch {
	if len(stitches) == 0 {
		return stitches
	}
	minDist := 0.7 * targetUnits
	out := []embroidery.Stitch{stitches[0]}
	last := stitches[0].Pos
	for _, s := range stitches[1:] {
		if !s.Type.IsSpecial() && s.Pos.Sub(last).Length() < minDist {
			continue
		}
		out = append(out, s)
		last = s.Pos
	}
	return out
}
