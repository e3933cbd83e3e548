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

package sdl

import (
	"github.com/jetsetilly/s2d/backend"
	"github.com/veandco/go-sdl2/sdl"
)

// convertEvent translates the SDL event into the backend's representation.
// Event types are shared with SDL so events without a payload are passed
// through with just their type and timestamp.
func convertEvent(ev sdl.Event) backend.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return backend.Event{
			Type:      backend.EventQuit,
			Timestamp: ev.Timestamp,
		}

	case *sdl.KeyboardEvent:
		typ := backend.EventKeyDown
		if ev.Type == sdl.KEYUP {
			typ = backend.EventKeyUp
		}
		return backend.Event{
			Type:      typ,
			Timestamp: ev.Timestamp,
			Key: backend.Key{
				State:    ev.State,
				Repeat:   ev.Repeat,
				Scancode: uint16(ev.Keysym.Scancode),
				Name:     sdl.GetKeyName(ev.Keysym.Sym),
			},
		}

	case *sdl.MouseButtonEvent:
		typ := backend.EventMouseButtonDown
		if ev.Type == sdl.MOUSEBUTTONUP {
			typ = backend.EventMouseButtonUp
		}
		return backend.Event{
			Type:      typ,
			Timestamp: ev.Timestamp,
			Button: backend.Button{
				Button: ev.Button,
				State:  ev.State,
				Clicks: ev.Clicks,
				X:      ev.X,
				Y:      ev.Y,
			},
		}

	case *sdl.MouseMotionEvent:
		return backend.Event{
			Type:      backend.EventMouseMotion,
			Timestamp: ev.Timestamp,
			Motion: backend.Motion{
				State: ev.State,
				X:     ev.X,
				Y:     ev.Y,
				XRel:  ev.XRel,
				YRel:  ev.YRel,
			},
		}

	case *sdl.MouseWheelEvent:
		x := ev.PreciseX
		y := ev.PreciseY
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x = -x
			y = -y
		}
		return backend.Event{
			Type:      backend.EventMouseWheel,
			Timestamp: ev.Timestamp,
			Wheel:     backend.Wheel{X: x, Y: y},
		}

	case *sdl.TextInputEvent:
		// text input passes the filter with the keyboard events but has no
		// payload in the backend event
		return backend.Event{
			Type:      backend.EventTextInput,
			Timestamp: ev.Timestamp,
		}
	}

	return backend.Event{
		Type:      backend.EventType(ev.GetType()),
		Timestamp: ev.GetTimestamp(),
	}
}
