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

import "seehuhn.de/go/geom/vec"

// StitchType describes what a stitch record instructs the machine to do.
type StitchType int

// The possible stitch types.  Run through End mirror the commands found in
// the supported file formats; Jump, Trim, Stop and End are machine control
// signals rather than thread-laying instructions.
const (
	Run StitchType = iota
	Bean
	Satin
	Fill
	Jump
	Trim
	Stop
	End
)

var stitchTypeNames = map[StitchType]string{
	Run:   "run",
	Bean:  "bean",
	Satin: "satin",
	Fill:  "fill",
	Jump:  "jump",
	Trim:  "trim",
	Stop:  "stop",
	End:   "end",
}

func (t StitchType) String() string {
	if name, ok := stitchTypeNames[t]; ok {
		return name
	}
	return "invalid"
}

// IsSpecial reports whether the stitch is a machine control signal.
// Special stitches are never interpolated or merged when a design is
// rescaled.
func (t StitchType) IsSpecial() bool {
	switch t {
	case Jump, Trim, Stop, End:
		return true
	default:
		return false
	}
}

// Stitch is a single needle penetration or control signal.  Pos is the
// absolute position in 0.1mm units; the delta encodings of the file
// formats are confined to the codecs.
type Stitch struct {
	Pos        vec.Vec2
	Type       StitchType
	ColorIndex int
}

// ColorBlock is a contiguous run of stitches sewn with one thread.
// Block boundaries correspond to colour-change events in the source file.
type ColorBlock struct {
	ColorIndex int
	Stitches   []Stitch
}

// Thread describes one entry in a design's thread list.
type Thread struct {
	Color         string // "#rrggbb"
	Brand         string
	Name          string
	CatalogNumber string
}
