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

// MouseEvent is implemented by *MouseButton, *MouseMove and *MouseWheel.
// Handlers should use a type switch to discover the variant.
type MouseEvent interface {
	Timestamp() uint32
	mouseEvent()
}

// List of mouse buttons.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// MouseButton is a mouse button press or release.
type MouseButton struct {
	Time   uint32
	Button uint8
	State  KeyState
	Clicks uint8
	X      int32
	Y      int32
}

// Timestamp implements the MouseEvent interface.
func (ev *MouseButton) Timestamp() uint32 { return ev.Time }

func (*MouseButton) mouseEvent() {}

// MouseMove is a movement of the mouse.
type MouseMove struct {
	Time uint32

	// bitmask of buttons held during the movement. bit zero is ButtonLeft
	ButtonState uint32

	X    int32
	Y    int32
	XRel int32
	YRel int32
}

// Timestamp implements the MouseEvent interface.
func (ev *MouseMove) Timestamp() uint32 { return ev.Time }

func (*MouseMove) mouseEvent() {}

// MouseWheel is a movement of the mouse wheel. Positive values are away from
// the user and to the right.
type MouseWheel struct {
	Time       uint32
	Horizontal float32
	Vertical   float32
}

// Timestamp implements the MouseEvent interface.
func (ev *MouseWheel) Timestamp() uint32 { return ev.Time }

func (*MouseWheel) mouseEvent() {}

// NewMouseEvent translates a native mouse event. Returns nil if the event is
// not a mouse event.
func NewMouseEvent(ev backend.Event) MouseEvent {
	switch ev.Type {
	case backend.EventMouseButtonDown, backend.EventMouseButtonUp:
		state := Released
		if ev.Type == backend.EventMouseButtonDown {
			state = Pressed
		}
		return &MouseButton{
			Time:   ev.Timestamp,
			Button: ev.Button.Button,
			State:  state,
			Clicks: ev.Button.Clicks,
			X:      ev.Button.X,
			Y:      ev.Button.Y,
		}
	case backend.EventMouseMotion:
		return &MouseMove{
			Time:        ev.Timestamp,
			ButtonState: ev.Motion.State,
			X:           ev.Motion.X,
			Y:           ev.Motion.Y,
			XRel:        ev.Motion.XRel,
			YRel:        ev.Motion.YRel,
		}
	case backend.EventMouseWheel:
		return &MouseWheel{
			Time:       ev.Timestamp,
			Horizontal: ev.Wheel.X,
			Vertical:   ev.Wheel.Y,
		}
	}
	return nil
}
