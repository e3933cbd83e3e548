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

package geometry_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/test"
)

func TestVector(t *testing.T) {
	v := geometry.Vector{X: 3, Y: -2}
	test.ExpectEquality(t, v.Add(geometry.Vector{X: 1, Y: 1}), geometry.Vector{X: 4, Y: -1})
	test.ExpectEquality(t, v.Float(), geometry.VectorF{X: 3, Y: -2})

	f := geometry.VectorF{X: 1.5, Y: -0.5}
	test.ExpectEquality(t, f.Floor(), geometry.Vector{X: 1, Y: -1})
	test.ExpectEquality(t, f.Add(f), geometry.VectorF{X: 3, Y: -1})
}

func TestRectangle(t *testing.T) {
	r := geometry.NewRectangle(10, 20, 30, 40)
	test.ExpectEquality(t, r.Image(), image.Rect(10, 20, 40, 60))
	test.ExpectFailure(t, r.Empty())
	test.ExpectSuccess(t, geometry.NewRectangle(0, 0, 0, 10).Empty())
	test.ExpectEquality(t, r.Float(), geometry.NewRectangleF(10, 20, 30, 40))
	test.ExpectSuccess(t, geometry.NewRectangleF(0, 0, 1, -1).Empty())
}

func TestOverlaps(t *testing.T) {
	r := geometry.NewRectangle(0, 0, 16, 16)
	test.ExpectSuccess(t, r.Overlaps(geometry.NewRectangle(15, 15, 16, 16)))
	test.ExpectSuccess(t, r.Overlaps(geometry.NewRectangle(4, 4, 2, 2)))
	test.ExpectFailure(t, r.Overlaps(geometry.NewRectangle(16, 0, 16, 16)))
	test.ExpectFailure(t, r.Overlaps(geometry.NewRectangle(0, -16, 16, 16)))
	test.ExpectFailure(t, r.Overlaps(geometry.NewRectangle(4, 4, 0, 2)))
}
