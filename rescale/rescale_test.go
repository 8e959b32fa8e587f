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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/validate"
)

// lineDesign is a single run of stitches along the x axis, n stitches
// spaced dx units apart.
func lineDesign(n int, dx float64) *embroidery.Design {
	d := embroidery.NewDesign("line")
	block := embroidery.ColorBlock{}
	for i := 0; i < n; i++ {
		block.Stitches = append(block.Stitches, embroidery.Stitch{
			Pos:  vec.Vec2{X: float64(i) * dx},
			Type: embroidery.Run,
		})
	}
	d.Blocks = []embroidery.ColorBlock{block}
	d.Meta.OriginalWidthMm = d.WidthMm()
	d.Meta.OriginalHeightMm = d.HeightMm()
	return d
}

// boxDesign outlines a w by h unit rectangle with run stitches.
func boxDesign(w, h float64) *embroidery.Design {
	d := embroidery.NewDesign("box")
	corners := []vec.Vec2{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: 0},
	}
	block := embroidery.ColorBlock{}
	for _, c := range corners {
		block.Stitches = append(block.Stitches, embroidery.Stitch{Pos: c, Type: embroidery.Run})
	}
	d.Blocks = []embroidery.ColorBlock{block}
	return d
}

func TestNoSizeParam(t *testing.T) {
	res := Rescale(lineDesign(10, 4), Params{}, Config{})
	if !errors.Is(res.Err, ErrNoSizeParam) {
		t.Fatalf("got %v, want ErrNoSizeParam", res.Err)
	}
	if res.Success || res.Design != nil {
		t.Error("failed rescale must not produce a design")
	}
}

func TestAspectPreservation(t *testing.T) {
	d := boxDesign(1000, 500) // 100mm x 50mm
	res := Rescale(d, Params{
		TargetWidthMm:       80,
		TargetHeightMm:      60,
		PreserveAspectRatio: true,
	}, Config{Mode: Simple})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	// the smaller axis ratio wins: min(80/100, 60/50) = 0.8
	if got := res.Design.Meta.ScaleFactor; math.Abs(got-0.8) > 1e-12 {
		t.Errorf("scale factor = %g, want 0.8", got)
	}
	if w := res.Design.WidthMm(); w > 80+1e-9 {
		t.Errorf("width %gmm exceeds target 80mm", w)
	}
	if h := res.Design.HeightMm(); h > 60+1e-9 {
		t.Errorf("height %gmm exceeds target 60mm", h)
	}
	if h := res.Design.HeightMm(); math.Abs(h-40) > 1e-9 {
		t.Errorf("height = %gmm, want 40mm", h)
	}
}

func TestIndependentAxisScale(t *testing.T) {
	d := boxDesign(1000, 500)
	res := Rescale(d, Params{
		TargetWidthMm:  80,
		TargetHeightMm: 60,
	}, Config{Mode: Simple})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	if w := res.Design.WidthMm(); math.Abs(w-80) > 1e-9 {
		t.Errorf("width = %gmm, want 80mm", w)
	}
	if h := res.Design.HeightMm(); math.Abs(h-60) > 1e-9 {
		t.Errorf("height = %gmm, want 60mm", h)
	}
	// reported scale is the average of the axis factors
	want := (0.8 + 1.2) / 2
	if got := res.Design.Meta.ScaleFactor; math.Abs(got-want) > 1e-12 {
		t.Errorf("scale factor = %g, want %g", got, want)
	}
}

func TestSingleTargetScalesProportionally(t *testing.T) {
	d := boxDesign(1000, 500)
	res := Rescale(d, Params{TargetWidthMm: 50}, Config{Mode: Simple})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	if h := res.Design.HeightMm(); math.Abs(h-25) > 1e-9 {
		t.Errorf("height = %gmm, want 25mm", h)
	}
}

func TestIdempotentAtFullScale(t *testing.T) {
	d := lineDesign(50, 4)
	res := Rescale(d, Params{ScalePercent: 100}, Config{})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	out := res.Design
	if out.ID == d.ID {
		t.Error("rescale must assign a fresh identity")
	}
	if out.StitchCount() != d.StitchCount() {
		t.Fatalf("stitch count changed: %d -> %d", d.StitchCount(), out.StitchCount())
	}
	for i, s := range out.Blocks[0].Stitches {
		if s.Pos != d.Blocks[0].Stitches[i].Pos {
			t.Errorf("stitch %d moved: %v -> %v", i, d.Blocks[0].Stitches[i].Pos, s.Pos)
		}
	}
}

func TestSpecialStitchConservation(t *testing.T) {
	d := lineDesign(40, 4)
	stitches := d.Blocks[0].Stitches
	stitches[10].Type = embroidery.Jump
	stitches[20].Type = embroidery.Trim
	stitches[30].Type = embroidery.Stop
	want := d.SpecialStitchCount()

	for _, percent := range []float64{50, 80, 150, 300} {
		res := Rescale(d, Params{ScalePercent: percent}, Config{})
		if !res.Success {
			t.Fatalf("%g%%: rescale failed: %v", percent, res.Err)
		}
		if got := res.Design.SpecialStitchCount(); got != want {
			t.Errorf("%g%%: special count = %d, want %d", percent, got, want)
		}
	}
}

func TestUpscaleInterpolationCount(t *testing.T) {
	// two stitches end up 100 units apart after doubling; with a target
	// spacing of 4.25 units that gap gets floor(100/4.25)-1 = 22
	// interpolated points
	d := lineDesign(2, 50)
	res := Rescale(d, Params{
		ScalePercent:    200,
		TargetDensityMm: 0.425,
	}, Config{})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	if got := res.Design.StitchCount(); got != 24 {
		t.Errorf("stitch count = %d, want 24", got)
	}
	// interpolated points are evenly spaced along the segment
	stitches := res.Design.Blocks[0].Stitches
	step := 100.0 / 23
	for i, s := range stitches {
		want := float64(i) * step
		if math.Abs(s.Pos.X-want) > 1e-9 {
			t.Errorf("stitch %d at x=%g, want %g", i, s.Pos.X, want)
		}
	}
}

func TestDownscaleSpacingBound(t *testing.T) {
	d := lineDesign(200, 4)
	target := 0.4
	res := Rescale(d, Params{
		ScalePercent:    50,
		TargetDensityMm: target,
	}, Config{})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	out := res.Design.Blocks[0].Stitches
	if len(out) >= 200 {
		t.Fatalf("downscale kept all %d stitches", len(out))
	}
	minDist := 0.7 * embroidery.MmToUnits(target)
	for i := 1; i < len(out); i++ {
		if out[i].Type.IsSpecial() || out[i-1].Type.IsSpecial() {
			continue
		}
		if dist := out[i].Pos.Sub(out[i-1].Pos).Length(); dist < minDist-1e-9 {
			t.Errorf("stitches %d and %d only %g units apart, want >= %g",
				i-1, i, dist, minDist)
		}
	}
}

func TestSimpleModeKeepsStitchCount(t *testing.T) {
	d := lineDesign(50, 4)
	res := Rescale(d, Params{ScalePercent: 300}, Config{Mode: Simple})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	if got := res.Design.StitchCount(); got != 50 {
		t.Errorf("stitch count = %d, want 50", got)
	}
}

func TestSafeModeBlocksExtremeUpscale(t *testing.T) {
	d := lineDesign(251, 4) // 100mm wide
	res := Rescale(d, Params{ScalePercent: 200}, Config{SafeMode: true})
	if res.Success {
		t.Fatal("rescale succeeded, want safe-mode block")
	}
	if res.Err != nil {
		t.Fatalf("safe-mode block is not an error, got %v", res.Err)
	}
	if res.Design != nil {
		t.Error("blocked rescale must not produce a design")
	}
	if res.Before != res.After {
		t.Error("blocked rescale must report unchanged metrics")
	}
	critical := false
	for _, r := range res.Validation {
		if r.Level == validate.Critical {
			critical = true
		}
	}
	if !critical {
		t.Error("expected a critical validation result")
	}
}

func TestUnsafeModeProceedsDespiteCritical(t *testing.T) {
	d := lineDesign(251, 4)
	res := Rescale(d, Params{ScalePercent: 200}, Config{SafeMode: false})
	if !res.Success {
		t.Fatalf("rescale failed: %v", res.Err)
	}
	critical := false
	for _, r := range res.Validation {
		if r.Level == validate.Critical {
			critical = true
		}
	}
	if !critical {
		t.Error("validation results must still report the critical finding")
	}
}

func TestCumulativeScaleFactor(t *testing.T) {
	d := lineDesign(50, 4)
	first := Rescale(d, Params{ScalePercent: 50}, Config{})
	if !first.Success {
		t.Fatalf("first rescale failed: %v", first.Err)
	}
	second := Rescale(first.Design, Params{ScalePercent: 50}, Config{})
	if !second.Success {
		t.Fatalf("second rescale failed: %v", second.Err)
	}
	if got := second.Design.Meta.ScaleFactor; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("cumulative scale factor = %g, want 0.25", got)
	}
	if o := second.Design.Meta.OriginalWidthMm; o != d.Meta.OriginalWidthMm {
		t.Errorf("original width changed: %g -> %g", d.Meta.OriginalWidthMm, o)
	}
}
