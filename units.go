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

import "fmt"

// UnitsPerMm is the number of logical units per millimetre.  Both DST and
// PEC store coordinates in 0.1mm steps.
const UnitsPerMm = 10.0

const mmPerInch = 25.4

// UnitsToMm converts logical units to millimetres.
func UnitsToMm(u float64) float64 {
	return u / UnitsPerMm
}

// MmToUnits converts millimetres to logical units.
func MmToUnits(mm float64) float64 {
	return mm * UnitsPerMm
}

// FormatSize renders a length in millimetres together with the imperial
// equivalent, e.g. `100.00mm (3.94")`.
func FormatSize(mm float64) string {
	return fmt.Sprintf("%.2fmm (%.2f\")", mm, mm/mmPerInch)
}
