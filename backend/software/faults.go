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

package software

import "fmt"

// Op names an operation that can be made to fail.
type Op string

// List of valid Op values.
const (
	OpInit           Op = "init"
	OpCreateWindow   Op = "create window"
	OpCreateRenderer Op = "create renderer"
	OpLoadImage      Op = "load image"
	OpRenderText     Op = "render text"
	OpCreateSurface  Op = "create surface"
	OpSetDrawColor   Op = "set draw color"
	OpSetScale       Op = "set scale"
	OpClear          Op = "clear"
	OpDrawPoint      Op = "draw point"
	OpDrawLine       Op = "draw line"
	OpDrawRect       Op = "draw rect"
	OpFillRect       Op = "fill rect"
	OpCreateDrawable Op = "create drawable"
	OpCopy           Op = "copy"
)

// faults is shared by a platform and everything created by it.
type faults map[Op]bool

func (f faults) check(op Op) error {
	if f[op] {
		return fmt.Errorf("software: %s: injected failure", op)
	}
	return nil
}
