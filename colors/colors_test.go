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

package colors_test

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/test"
)

func TestNamed(t *testing.T) {
	test.ExpectEquality(t, colors.Red.Color(), colors.Color{R: 0xff, A: 0xff})
	test.ExpectEquality(t, colors.Green.Color(), colors.Color{G: 0xff, A: 0xff})
	test.ExpectEquality(t, colors.Blue.Color(), colors.Color{B: 0xff, A: 0xff})
	test.ExpectEquality(t, colors.Yellow.Color(), colors.Color{R: 0xff, G: 0xff, A: 0xff})
	test.ExpectEquality(t, colors.Black.Color(), colors.Color{A: 0xff})
	test.ExpectEquality(t, colors.Transparent.Color(), colors.Color{})
	test.ExpectEquality(t, colors.Default, colors.Black)
	test.ExpectEquality(t, colors.Red.String(), "0xff0000ff")
	test.ExpectEquality(t, colors.Transparent.String(), "0x00000000")
	test.ExpectEquality(t, colors.Code(0xff).String(), "0x000000ff")
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 100000 {
		c := colors.Code(r.Uint32())
		test.DemandEquality(t, c.Color().Code(), c)

		v := colors.Color{
			R: uint8(r.UintN(256)),
			G: uint8(r.UintN(256)),
			B: uint8(r.UintN(256)),
			A: uint8(r.UintN(256)),
		}
		test.DemandEquality(t, v.Code().Color(), v)
	}

	// boundaries
	for _, c := range []colors.Code{0, 0xffffffff, 0x000000ff, 0xff000000, 0x00ff0000, 0x0000ff00} {
		test.ExpectEquality(t, c.Color().Code(), c)
	}
}

func TestImageColor(t *testing.T) {
	var c color.Color = colors.Red.Color()
	r, g, b, a := c.RGBA()
	test.ExpectEquality(t, r, 0xffff)
	test.ExpectEquality(t, g, 0)
	test.ExpectEquality(t, b, 0)
	test.ExpectEquality(t, a, 0xffff)

	test.ExpectEquality(t, colors.FromColor(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}),
		colors.Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	test.ExpectEquality(t, colors.FromColor(colors.Yellow.Color()), colors.Yellow.Color())
}
