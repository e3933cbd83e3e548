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

// Package colors converts between the packed 32-bit colour code used by the
// drawing functions and a four channel colour value.
//
// The colour code is little-endian RGBA. The least significant byte is the red
// channel and the most significant byte is the alpha channel. So opaque red
// is 0xff0000ff and opaque blue is 0xffff0000.
package colors

import (
	"fmt"
	"image/color"
)

// Code is a packed 32-bit colour.
type Code uint32

// List of named colour codes.
const (
	Black       Code = 0xff000000
	White       Code = 0xffffffff
	Red         Code = 0xff0000ff
	Green       Code = 0xff00ff00
	Blue        Code = 0xffff0000
	Yellow      Code = 0xff00ffff
	Transparent Code = 0x00000000

	// the draw colour of a newly created window
	Default = Black
)

func (c Code) String() string {
	return fmt.Sprintf("%#08x", uint32(c))
}

// Color unpacks the code into its four channels.
func (c Code) Color() Color {
	return Color{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}

// Color is a colour with four 8-bit channels. The colour channels are not
// premultiplied by alpha.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Code packs the colour into a colour code.
func (c Color) Code() Code {
	return Code(c.R) | Code(c.G)<<8 | Code(c.B)<<16 | Code(c.A)<<24
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the colour as a value from the image/color package.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any colour to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
