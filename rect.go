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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Rect is an axis-aligned bounding box in logical units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r *Rect) String() string {
	return fmt.Sprintf("[%.1f %.1f %.1f %.1f]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// IsZero is true if the rectangle is the zero rectangle.
func (r Rect) IsZero() bool {
	return r.MinX == 0 && r.MinY == 0 && r.MaxX == 0 && r.MaxY == 0
}

// Dx returns the width of the rectangle.
func (r *Rect) Dx() float64 {
	return r.MaxX - r.MinX
}

// Dy returns the height of the rectangle.
func (r *Rect) Dy() float64 {
	return r.MaxY - r.MinY
}

// Center returns the midpoint of the rectangle.
func (r *Rect) Center() vec.Vec2 {
	return vec.Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Extend enlarges the rectangle to also cover `other`.
func (r *Rect) Extend(other *Rect) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = *other
		return
	}
	r.MinX = math.Min(r.MinX, other.MinX)
	r.MinY = math.Min(r.MinY, other.MinY)
	r.MaxX = math.Max(r.MaxX, other.MaxX)
	r.MaxY = math.Max(r.MaxY, other.MaxY)
}

// ExtendVec enlarges the rectangle to also cover the point v.
func (r *Rect) ExtendVec(v vec.Vec2) {
	r.Extend(&Rect{MinX: v.X, MinY: v.Y, MaxX: v.X, MaxY: v.Y})
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than eps.
func (r *Rect) NearlyEqual(other *Rect, eps float64) bool {
	return math.Abs(r.MinX-other.MinX) < eps &&
		math.Abs(r.MinY-other.MinY) < eps &&
		math.Abs(r.MaxX-other.MaxX) < eps &&
		math.Abs(r.MaxY-other.MaxY) < eps
}
