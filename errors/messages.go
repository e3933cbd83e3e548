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

var messages = map[Errno]string{
	Initialise:       "initialise: %v",
	CreateWindow:     "create window: %v",
	CreateRenderer:   "create renderer: %v",
	SetDrawColor:     "set draw color: %v",
	ClearScreen:      "clear screen: %v",
	DrawPoint:        "draw point: %v",
	DrawCoord:        "draw coord: %v",
	DrawRect:         "draw rect: %v",
	RectFill:         "rect fill: %v",
	DrawLine:         "draw line: %v",
	CreateTexture:    "create texture: %v",
	DrawTexture:      "draw texture: %v",
	DestroyedTexture: "destroyed texture: %v",
	SetRenderScale:   "set render scale: %v",
	Unspecified:      "%v",
}

// more error strings. these are used as arguments to the error messages and
// are part of the contract in the sense that callers may test for them.
const (
	NotReady       = "session not ready"
	SessionExists  = "session already exists"
	TextureNotLive = "texture has been destroyed"
)
