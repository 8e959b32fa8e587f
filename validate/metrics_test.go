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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/JimmiFriborg/EmbroiderSize"
)

func runStitch(x, y float64) embroidery.Stitch {
	return embroidery.Stitch{Pos: vec.Vec2{X: x, Y: y}, Type: embroidery.Run}
}

func TestComputeMetrics(t *testing.T) {
	d := embroidery.NewDesign("test")
	d.Blocks = []embroidery.ColorBlock{{
		Stitches: []embroidery.Stitch{
			runStitch(0, 0),
			runStitch(4, 0),  // 0.4mm
			runStitch(4, 5),  // 0.5mm
			runStitch(10, 5), // 0.6mm
		},
	}}

	m := ComputeMetrics(d)
	if m.StitchCount != 4 {
		t.Errorf("StitchCount = %d", m.StitchCount)
	}
	if math.Abs(m.AverageDensityMm-0.5) > 1e-9 {
		t.Errorf("AverageDensityMm = %g", m.AverageDensityMm)
	}
	if math.Abs(m.MinSpacingMm-0.4) > 1e-9 || math.Abs(m.MaxSpacingMm-0.6) > 1e-9 {
		t.Errorf("spacing = %g..%g", m.MinSpacingMm, m.MaxSpacingMm)
	}
	if math.Abs(m.WidthMm-1.0) > 1e-9 || math.Abs(m.HeightMm-0.5) > 1e-9 {
		t.Errorf("dimensions = %g × %g", m.WidthMm, m.HeightMm)
	}
	wantPerMm2 := 4 / (1.0 * 0.5)
	if math.Abs(m.StitchesPerMm2-wantPerMm2) > 1e-9 {
		t.Errorf("StitchesPerMm2 = %g, want %g", m.StitchesPerMm2, wantPerMm2)
	}
}

func TestComputeMetricsSkipsSpecialPairs(t *testing.T) {
	d := embroidery.NewDesign("test")
	jump := embroidery.Stitch{Pos: vec.Vec2{X: 100, Y: 0}, Type: embroidery.Jump}
	d.Blocks = []embroidery.ColorBlock{{
		Stitches: []embroidery.Stitch{
			runStitch(0, 0),
			runStitch(4, 0),
			jump, // pair (4,0)->(100,0) must not count
			runStitch(104, 0),
		},
	}}

	m := ComputeMetrics(d)
	// two measured pairs: 4 units and 4 units
	if math.Abs(m.AverageDensityMm-0.4) > 1e-9 {
		t.Errorf("AverageDensityMm = %g", m.AverageDensityMm)
	}
}

func TestComputeMetricsDegenerate(t *testing.T) {
	d := embroidery.NewDesign("empty")
	if m := ComputeMetrics(d); m != (Metrics{}) {
		t.Errorf("empty design: got %+v", m)
	}

	d.Blocks = []embroidery.ColorBlock{{Stitches: []embroidery.Stitch{runStitch(1, 1)}}}
	if m := ComputeMetrics(d); m != (Metrics{}) {
		t.Errorf("single stitch: got %+v", m)
	}
}
