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

package session

import (
	"github.com/jetsetilly/s2d/colors"
)

// State of the session.
type State int

// List of valid State values.
const (
	Uninitialised State = iota
	Initialised
	WindowReady
	Running
	Quit
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Initialised:
		return "initialised"
	case WindowReady:
		return "window ready"
	case Running:
		return "running"
	case Quit:
		return "quit"
	}
	return "unknown state"
}

// ready returns true if the session is in a state where drawing is possible.
func (s State) ready() bool {
	return s == WindowReady || s == Running
}

// DrawState is the logical size of the render target and the most recent draw
// colour accepted by the backend.
type DrawState struct {
	Width  int
	Height int
	Color  colors.Code
}
