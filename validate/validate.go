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

// Package validate grades resize, density and dimension changes against
// manufacturability limits.
//
// Validation outcomes are data, not errors: every check returns a
// [Result] whose CanProceed field says whether the operation is still
// acceptable.  Only the rescale engine's safe mode turns a failing result
// into an aborted operation.
package validate

import (
	"fmt"
	"math"

	"github.com/JimmiFriborg/EmbroiderSize"
)

// Level is the severity of a validation result.
type Level int

const (
	Safe Level = iota
	Warning
	Danger
	Critical
)

func (l Level) String() string {
	switch l {
	case Safe:
		return "safe"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	case Critical:
		return "critical"
	default:
		return "invalid"
	}
}

// Result is the outcome of a single validation check.
type Result struct {
	Level      Level
	Message    string
	CanProceed bool
}

func (r Result) String() string {
	return fmt.Sprintf("[%s] %s", r.Level, r.Message)
}

// Resize limits, in percent change of a dimension.
const (
	SafeResizeLimit     = 20.0
	WarningResizeLimit  = 30.0
	CriticalResizeLimit = 50.0
)

// Stitch density limits, in mm between consecutive stitches.
const (
	MinStitchDensity        = 0.2 // denser than this may break needles
	OptimalStitchDensityMin = 0.4
	OptimalStitchDensityMax = 0.45
	MaxStitchDensity        = 1.0 // sparser than this looks poor
)

// hoopMarginMm is the clearance below which a dimension check degrades
// from Safe to Warning.
const hoopMarginMm = 5.0

// ResizePercentage grades the relative change between an original and a
// new dimension.
func ResizePercentage(original, new float64) Result {
	change := math.Abs(resizePercent(original, new))

	switch {
	case change <= SafeResizeLimit:
		return Result{
			Level:      Safe,
			Message:    fmt.Sprintf("Resize of %.1f%% is within safe limits (±%.0f%%)", change, SafeResizeLimit),
			CanProceed: true,
		}
	case change <= WarningResizeLimit:
		return Result{
			Level:      Warning,
			Message:    fmt.Sprintf("Resize of %.1f%% may affect quality. Consider staying within ±%.0f%%", change, SafeResizeLimit),
			CanProceed: true,
		}
	case change <= CriticalResizeLimit:
		return Result{
			Level:      Danger,
			Message:    fmt.Sprintf("Resize of %.1f%% is significant and may cause problems. Re-digitizing recommended for best results", change),
			CanProceed: true,
		}
	default:
		return Result{
			Level:   Critical,
			Message: fmt.Sprintf("Resize of %.1f%% is too extreme. Original design quality will be severely compromised", change),
		}
	}
}

func resizePercent(original, new float64) float64 {
	if original == 0 {
		return 0
	}
	return (new - original) / original * 100
}

// StitchDensity grades an average stitch density in mm.
func StitchDensity(density float64) Result {
	switch {
	case density < MinStitchDensity:
		return Result{
			Level:   Critical,
			Message: fmt.Sprintf("Stitch density (%.3fmm) is too dense. May cause needle breaks or fabric damage", density),
		}
	case density < OptimalStitchDensityMin:
		return Result{
			Level:      Warning,
			Message:    fmt.Sprintf("Stitch density (%.3fmm) is denser than optimal (%.2f-%.2fmm)", density, OptimalStitchDensityMin, OptimalStitchDensityMax),
			CanProceed: true,
		}
	case density <= OptimalStitchDensityMax:
		return Result{
			Level:      Safe,
			Message:    fmt.Sprintf("Stitch density (%.3fmm) is optimal", density),
			CanProceed: true,
		}
	case density <= MaxStitchDensity:
		return Result{
			Level:      Warning,
			Message:    fmt.Sprintf("Stitch density (%.3fmm) is sparser than optimal (%.2f-%.2fmm)", density, OptimalStitchDensityMin, OptimalStitchDensityMax),
			CanProceed: true,
		}
	default:
		return Result{
			Level:      Danger,
			Message:    fmt.Sprintf("Stitch density (%.3fmm) is too sparse. Quality will be poor", density),
			CanProceed: true,
		}
	}
}

// Dimensions checks that a design fits the machine's hoop.
func Dimensions(widthMm, heightMm float64, profile embroidery.MachineProfile) Result {
	if widthMm > profile.MaxHoopWidthMm {
		return Result{
			Level:   Critical,
			Message: fmt.Sprintf("Width (%.1fmm) exceeds maximum (%.1fmm)", widthMm, profile.MaxHoopWidthMm),
		}
	}
	if heightMm > profile.MaxHoopHeightMm {
		return Result{
			Level:   Critical,
			Message: fmt.Sprintf("Height (%.1fmm) exceeds maximum (%.1fmm)", heightMm, profile.MaxHoopHeightMm),
		}
	}
	if profile.MaxHoopWidthMm-widthMm < hoopMarginMm || profile.MaxHoopHeightMm-heightMm < hoopMarginMm {
		return Result{
			Level:      Warning,
			Message:    fmt.Sprintf("Dimensions (%.1fmm × %.1fmm) leave less than %.0fmm of hoop clearance", widthMm, heightMm, hoopMarginMm),
			CanProceed: true,
		}
	}
	return Result{
		Level:      Safe,
		Message:    fmt.Sprintf("Dimensions (%.1fmm × %.1fmm) are valid", widthMm, heightMm),
		CanProceed: true,
	}
}

// StitchLength checks the extreme stitch lengths against the machine's
// mechanical limits.
func StitchLength(minMm, maxMm float64, profile embroidery.MachineProfile) Result {
	if maxMm > profile.MaxStitchLengthMm {
		return Result{
			Level:      Danger,
			Message:    fmt.Sprintf("Longest stitch (%.2fmm) exceeds the machine limit (%.2fmm)", maxMm, profile.MaxStitchLengthMm),
			CanProceed: true,
		}
	}
	if minMm < profile.MinStitchLengthMm {
		return Result{
			Level:      Warning,
			Message:    fmt.Sprintf("Shortest stitch (%.2fmm) is below the machine minimum (%.2fmm)", minMm, profile.MinStitchLengthMm),
			CanProceed: true,
		}
	}
	return Result{
		Level:      Safe,
		Message:    fmt.Sprintf("Stitch lengths (%.2f-%.2fmm) are within machine limits", minMm, maxMm),
		CanProceed: true,
	}
}

// Params collects the inputs for [All].
type Params struct {
	OriginalWidthMm  float64
	OriginalHeightMm float64
	NewWidthMm       float64
	NewHeightMm      float64

	DensityMm  float64
	HasDensity bool

	MinStitchMm     float64
	MaxStitchMm     float64
	HasStitchLength bool

	Profile embroidery.MachineProfile
}

// All runs every applicable check in a fixed order: width resize, height
// resize, density (if available), hoop dimensions, stitch length (if
// available).  The first return value is the conjunction of every result's
// CanProceed.
func All(p Params) (bool, []Result) {
	results := []Result{
		ResizePercentage(p.OriginalWidthMm, p.NewWidthMm),
		ResizePercentage(p.OriginalHeightMm, p.NewHeightMm),
	}
	if p.HasDensity {
		results = append(results, StitchDensity(p.DensityMm))
	}
	results = append(results, Dimensions(p.NewWidthMm, p.NewHeightMm, p.Profile))
	if p.HasStitchLength {
		results = append(results, StitchLength(p.MinStitchMm, p.MaxStitchMm, p.Profile))
	}

	canProceed := true
	for _, r := range results {
		canProceed = canProceed && r.CanProceed
	}
	return canProceed, results
}
