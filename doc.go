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

// Package embroidery provides the document model for machine embroidery
// designs.
//
// A [Design] is an ordered sequence of colour blocks, each holding the
// stitches sewn with one thread.  Stitch positions are stored in logical
// units of 0.1mm, the native resolution of both the Tajima DST and the
// Brother PES/PEC file formats.
//
// Designs are produced by the format codecs (see the subpackages of
// format), inspected by the validate package and transformed by the
// rescale package.  Every operation that yields a Design yields a fresh
// one; documents are never modified in place.
package embroidery
