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

package embroidery

// MachineProfile describes the physical limits of an embroidery machine.
// Profiles are immutable configuration supplied by the caller; the library
// ships [BrotherPP1] as a default.
type MachineProfile struct {
	ID   string
	Name string

	MaxHoopWidthMm  float64
	MaxHoopHeightMm float64

	MaxStitchLengthMm float64
	MinStitchLengthMm float64

	RecommendedMinDensity float64 // stitches per mm²
	RecommendedMaxDensity float64 // stitches per mm²

	SafeModeDefault bool
}

// BrotherPP1 is the profile for the Brother PP1 embroidery machine.
var BrotherPP1 = MachineProfile{
	ID:                    "brother-pp1",
	Name:                  "Brother PP1",
	MaxHoopWidthMm:        100,
	MaxHoopHeightMm:       100,
	MaxStitchLengthMm:     3.0,
	MinStitchLengthMm:     0.3,
	RecommendedMinDensity: 0.3,
	RecommendedMaxDensity: 1.2,
	SafeModeDefault:       true,
}
