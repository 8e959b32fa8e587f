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

// Package rescale resizes embroidery designs while keeping them sewable.
//
// Scaling a stitch file is not the same as scaling an image: the stitch
// positions are the design, and moving them apart or together changes
// the thread coverage.  The smart pipeline therefore resamples each
// colour block after scaling, inserting stitches on upscale and thinning
// them on downscale, so that the distance between consecutive stitches
// stays near a target density.  Control stitches (jump, trim, stop, end)
// are only ever coordinate-scaled, never created or removed.
package rescale

import (
	"errors"
	"math"
	"time"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/validate"
)

// ErrNoSizeParam is returned when no sizing parameter is supplied.
var ErrNoSizeParam = errors.New("no target size given")

// scaleTolerance is the band around 1.0 within which a scale factor
// counts as "no change" and resampling is skipped.
const scaleTolerance = 1e-9

// fallbackDensityMm is the target density for designs whose own density
// cannot be measured.
const fallbackDensityMm = 0.4

// Mode selects the resampling behaviour.
type Mode int

const (
	// Smart resamples each block after scaling to hold the stitch
	// density near the target.
	Smart Mode = iota

	// Simple only scales coordinates.  The stitch count is unchanged,
	// so the density changes with the scale factor.
	Simple
)

// Params selects the target size for a rescale.  Exactly one of the
// sizing parameters must be set: ScalePercent, both target dimensions,
// or a single target dimension (the other axis then scales
// proportionally).
type Params struct {
	ScalePercent   float64
	TargetWidthMm  float64
	TargetHeightMm float64

	// TargetDensityMm is the stitch spacing the smart mode aims for.
	// Zero means "preserve the design's current average density".
	TargetDensityMm float64

	// PreserveAspectRatio constrains a two-dimension target to a
	// uniform scale, choosing the smaller of the two axis ratios so
	// that the result fits within both targets.
	PreserveAspectRatio bool
}

// Config carries the rescale policy.
type Config struct {
	// SafeMode aborts the rescale when validation says the result is
	// not acceptable.  Without it the rescale proceeds regardless and
	// the caller is expected to surface the validation results.
	SafeMode bool

	Mode Mode
}

// Result is the complete outcome of a rescale.  Validation results and
// metrics are populated even when the operation was blocked, so the
// caller can always explain what happened.
type Result struct {
	Success    bool
	Design     *embroidery.Design
	Validation []validate.Result
	Before     validate.Metrics
	After      validate.Metrics
	Err        error
}

// Rescale produces a resized copy of the design.  The input is never
// modified.
func Rescale(design *embroidery.Design, params Params, config Config) Result {
	sx, sy, scale, err := scaleFactors(design, params)
	if err != nil {
		return Result{Err: err}
	}

	before := validate.ComputeMetrics(design)
	widthMm := design.WidthMm()
	heightMm := design.HeightMm()

	// The post-scale density can only be estimated before resampling.
	// A linear estimate is good enough for grading.
	canProceed, results := validate.All(validate.Params{
		OriginalWidthMm:  widthMm,
		OriginalHeightMm: heightMm,
		NewWidthMm:       widthMm * sx,
		NewHeightMm:      heightMm * sy,
		DensityMm:        before.AverageDensityMm * scale,
		HasDensity:       before.StitchCount > 0,
		MinStitchMm:      before.MinSpacingMm * scale,
		MaxStitchMm:      before.MaxSpacingMm * scale,
		HasStitchLength:  before.StitchCount > 0,
		Profile:          design.Profile,
	})

	if config.SafeMode && !canProceed {
		return Result{
			Validation: results,
			Before:     before,
			After:      before,
		}
	}

	out := design.Clone()
	for bi := range out.Blocks {
		stitches := out.Blocks[bi].Stitches
		for si := range stitches {
			stitches[si].Pos.X *= sx
			stitches[si].Pos.Y *= sy
		}
	}

	if config.Mode == Smart && math.Abs(scale-1) > scaleTolerance {
		targetMm := params.TargetDensityMm
		if targetMm <= 0 {
			targetMm = before.AverageDensityMm
		}
		if targetMm <= 0 {
			targetMm = fallbackDensityMm
		}
		targetUnits := embroidery.MmToUnits(targetMm)
		for bi := range out.Blocks {
			if scale > 1 {
				out.Blocks[bi].Stitches = interpolate(out.Blocks[bi].Stitches, targetUnits)
			} else {
				out.Blocks[bi].Stitches = reduce(out.Blocks[bi].Stitches, targetUnits)
			}
		}
	}

	blocks := out.Blocks[:0]
	for _, block := range out.Blocks {
		if len(block.Stitches) > 0 {
			blocks = append(blocks, block)
		}
	}
	out.Blocks = blocks

	out.Meta.ScaleFactor *= scale
	out.Meta.CurrentStitchCount = out.StitchCount()
	out.Meta.ModifiedAt = time.Now()

	return Result{
		Success:    true,
		Design:     out,
		Validation: results,
		Before:     before,
		After:      validate.ComputeMetrics(out),
	}
}

// scaleFactors resolves the sizing parameters into per-axis factors and
// the single representative factor used for density estimation and the
// cumulative scale bookkeeping.  With PreserveAspectRatio unset and both
// targets given, the axes scale independently and the representative
// factor is their average.
func scaleFactors(design *embroidery.Design, params Params) (sx, sy, scale float64, err error) {
	switch {
	case params.ScalePercent > 0:
		s := params.ScalePercent / 100
		return s, s, s, nil

	case params.TargetWidthMm > 0 && params.TargetHeightMm > 0:
		rx := axisRatio(params.TargetWidthMm, design.WidthMm())
		ry := axisRatio(params.TargetHeightMm, design.HeightMm())
		if params.PreserveAspectRatio {
			s := math.Min(rx, ry)
			return s, s, s, nil
		}
		return rx, ry, (rx + ry) / 2, nil

	case params.TargetWidthMm > 0:
		s := axisRatio(params.TargetWidthMm, design.WidthMm())
		return s, s, s, nil

	case params.TargetHeightMm > 0:
		s := axisRatio(params.TargetHeightMm, design.HeightMm())
		return s, s, s, nil
	}
	return 0, 0, 0, ErrNoSizeParam
}

// axisRatio guards against degenerate zero-extent designs, for which any
// target is declared already reached.
func axisRatio(targetMm, currentMm float64) float64 {
	if currentMm <= 0 {
		return 1
	}
	return targetMm / currentMm
}
