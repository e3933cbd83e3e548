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

package errors

// Errno identifies the failure class of an Error. The numeric values are
// stable and are the same as the values used by the C rendition of the
// library.
type Errno int

// list of error numbers. zero is reserved for success.
const (
	Initialise       Errno = 0x01
	CreateWindow     Errno = 0x02
	CreateRenderer   Errno = 0x03
	SetDrawColor     Errno = 0x04
	ClearScreen      Errno = 0x05
	DrawPoint        Errno = 0x06
	DrawCoord        Errno = 0x07
	DrawRect         Errno = 0x08
	RectFill         Errno = 0x09
	DrawLine         Errno = 0x0a
	CreateTexture    Errno = 0x0b
	DrawTexture      Errno = 0x0c
	DestroyedTexture Errno = 0x0d
	SetRenderScale   Errno = 0x0e

	// catch-all for failures that have no class of their own. including
	// contract violations such as drawing before a window has been created
	Unspecified Errno = 0xff
)
