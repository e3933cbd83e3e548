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

package events

import "github.com/jetsetilly/s2d/backend"

// Class of a native event.
type Class int

// List of valid Class values.
const (
	ClassNone Class = iota
	ClassQuit
	ClassKeyboard
	ClassMouse
)

func (c Class) String() string {
	switch c {
	case ClassQuit:
		return "quit"
	case ClassKeyboard:
		return "keyboard"
	case ClassMouse:
		return "mouse"
	}
	return "none"
}

// Classify returns the class of a native event. Events that are accepted by
// the coarse filter but are not translated, such as text input, are
// ClassNone.
func Classify(ev backend.Event) Class {
	switch ev.Type {
	case backend.EventQuit:
		return ClassQuit
	case backend.EventKeyDown, backend.EventKeyUp:
		return ClassKeyboard
	case backend.EventMouseMotion, backend.EventMouseButtonDown, backend.EventMouseButtonUp, backend.EventMouseWheel:
		return ClassMouse
	}
	return ClassNone
}

// Accept is the coarse filter for native events. It accepts the quit,
// keyboard and mouse categories, including event types in those categories
// that are never translated.
func Accept(ev backend.Event) bool {
	switch ev.Type.Category() {
	case backend.CategoryQuit, backend.CategoryKeyboard, backend.CategoryMouse:
		return true
	}
	return false
}
