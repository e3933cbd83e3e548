// This file is part of s2d.
//
// s2d is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s2d is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s2d.  If not, see <https://www.gnu.org/licenses/>.

// Package geometry defines the integer and floating point vector and
// rectangle types used by the drawing functions.
package geometry

import (
	"image"
	"math"
)

// Vector is a point in integer coordinate space.
type Vector struct {
	X int
	Y int
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Float converts the vector to floating point coordinate space.
func (v Vector) Float() VectorF {
	return VectorF{X: float32(v.X), Y: float32(v.Y)}
}

// VectorF is a point in floating point coordinate space.
type VectorF struct {
	X float32
	Y float32
}

// Add returns the sum of two vectors.
func (v VectorF) Add(w VectorF) VectorF {
	return VectorF{X: v.X + w.X, Y: v.Y + w.Y}
}

// Floor converts the vector to integer coordinate space, rounding towards
// negative infinity.
func (v VectorF) Floor() Vector {
	return Vector{X: int(math.Floor(float64(v.X))), Y: int(math.Floor(float64(v.Y)))}
}

// Rectangle is an origin and a size in integer coordinate space. The origin
// is the top-left corner.
type Rectangle struct {
	Origin Vector
	W      int
	H      int
}

// NewRectangle is a convenience function for creating a Rectangle.
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{Origin: Vector{X: x, Y: y}, W: w, H: h}
}

// Empty returns true if the rectangle covers no area.
func (r Rectangle) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps returns true if the two rectangles share any area. Rectangles
// that only touch at an edge do not overlap.
func (r Rectangle) Overlaps(o Rectangle) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Origin.X < o.Origin.X+o.W && o.Origin.X < r.Origin.X+r.W &&
		r.Origin.Y < o.Origin.Y+o.H && o.Origin.Y < r.Origin.Y+r.H
}

// Image converts the rectangle to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.Origin.X, r.Origin.Y, r.Origin.X+r.W, r.Origin.Y+r.H)
}

// Float converts the rectangle to floating point coordinate space.
func (r Rectangle) Float() RectangleF {
	return RectangleF{Origin: r.Origin.Float(), W: float32(r.W), H: float32(r.H)}
}

// RectangleF is an origin and a size in floating point coordinate space.
type RectangleF struct {
	Origin VectorF
	W      float32
	H      float32
}

// NewRectangleF is a convenience function for creating a RectangleF.
func NewRectangleF(x, y, w, h float32) RectangleF {
	return RectangleF{Origin: VectorF{X: x, Y: y}, W: w, H: h}
}

// Empty returns true if the rectangle covers no area.
func (r RectangleF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
