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
	"github.com/jetsetilly/s2d/assert"
	"github.com/jetsetilly/s2d/events"
)

// AddKeyboardEventHandler sets the function to be called for keyboard events.
// Any previous keyboard handler is replaced. There is no way of removing a
// handler once it has been added.
func (sess *Session) AddKeyboardEventHandler(f events.KeyboardHandler) {
	assert.CheckMainThread()
	sess.handlers.SetKeyboard(f)
}

// AddMouseEventHandler sets the function to be called for mouse events. Any
// previous mouse handler is replaced. There is no way of removing a handler
// once it has been added.
func (sess *Session) AddMouseEventHandler(f events.MouseHandler) {
	assert.CheckMainThread()
	sess.handlers.SetMouse(f)
}

// Dequeue takes one event from the backend and dispatches it to the handler
// for its class. The data value is passed to the handler unchanged. Returns
// false if there was no event to take.
//
// Events are taken in the order they were queued. An event with no handler
// for its class is discarded but Dequeue() still returns true. A quit event
// calls the quit handler, which does not return.
func (sess *Session) Dequeue(data any) bool {
	if err := sess.notReady(); err != nil {
		return false
	}

	ev, ok := sess.plt.PollEvent()
	if !ok {
		return false
	}

	sess.handlers.Dispatch(ev, data)

	return true
}

// EventsEnabled returns true if there is a handler for the event class.
func (sess *Session) EventsEnabled(c events.Class) bool {
	return sess.handlers.Enabled(c)
}
