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

// KeyboardHandler is called with a translated keyboard event and the data
// value passed to Dispatch().
type KeyboardHandler func(ev *Keyboard, data any)

// MouseHandler is called with a translated mouse event and the data value
// passed to Dispatch().
type MouseHandler func(ev MouseEvent, data any)

// QuitHandler is called when a quit event is dispatched.
type QuitHandler func(data any)

// Handlers is the table of event handlers. The zero value has no handlers.
type Handlers struct {
	keyboard KeyboardHandler
	mouse    MouseHandler
	quit     QuitHandler
}

// Reset removes the keyboard and mouse handlers and sets the quit handler.
func (h *Handlers) Reset(quit QuitHandler) {
	h.keyboard = nil
	h.mouse = nil
	h.quit = quit
}

// SetKeyboard replaces the keyboard handler and enables the keyboard class.
func (h *Handlers) SetKeyboard(f KeyboardHandler) {
	h.keyboard = f
}

// SetMouse replaces the mouse handler and enables the mouse class.
func (h *Handlers) SetMouse(f MouseHandler) {
	h.mouse = f
}

// Enabled returns true if there is a handler for the class.
func (h *Handlers) Enabled(c Class) bool {
	switch c {
	case ClassQuit:
		return h.quit != nil
	case ClassKeyboard:
		return h.keyboard != nil
	case ClassMouse:
		return h.mouse != nil
	}
	return false
}

// Dispatch translates the native event and calls the handler for its class.
// The data value is passed to the handler unchanged. Returns the class of the
// handler that was called or ClassNone if no handler was called.
//
// A quit event always calls the quit handler and nothing else.
func (h *Handlers) Dispatch(ev backend.Event, data any) Class {
	switch Classify(ev) {
	case ClassQuit:
		if h.quit != nil {
			h.quit(data)
			return ClassQuit
		}
	case ClassKeyboard:
		if h.keyboard != nil {
			if k := NewKeyboard(ev); k != nil {
				h.keyboard(k, data)
				return ClassKeyboard
			}
		}
	case ClassMouse:
		if h.mouse != nil {
			if m := NewMouseEvent(ev); m != nil {
				h.mouse(m, data)
				return ClassMouse
			}
		}
	}
	return ClassNone
}
