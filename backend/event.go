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

package backend

// EventType is the type code of a native event. The high byte of the code is
// the category of the event.
type EventType uint32

// List of valid EventType values. The values are the same as those used by
// SDL2.
const (
	EventQuit EventType = 0x100

	EventWindow EventType = 0x200

	EventKeyDown   EventType = 0x300
	EventKeyUp     EventType = 0x301
	EventTextInput EventType = 0x303

	EventMouseMotion     EventType = 0x400
	EventMouseButtonDown EventType = 0x401
	EventMouseButtonUp   EventType = 0x402
	EventMouseWheel      EventType = 0x403

	EventJoyAxisMotion EventType = 0x600
	EventJoyButtonDown EventType = 0x603
	EventJoyButtonUp   EventType = 0x604

	EventUser EventType = 0x8000
)

// Category of the event type.
func (t EventType) Category() uint32 {
	return uint32(t) >> 8
}

// List of event categories.
const (
	CategoryQuit     uint32 = 0x1
	CategoryWindow   uint32 = 0x2
	CategoryKeyboard uint32 = 0x3
	CategoryMouse    uint32 = 0x4
	CategoryJoystick uint32 = 0x6
)

// Key payload of a keyboard event.
type Key struct {
	State    uint8
	Repeat   uint8
	Scancode uint16

	// human readable name of the key
	Name string
}

// Button payload of a mouse button event.
type Button struct {
	Button uint8
	State  uint8
	Clicks uint8
	X      int32
	Y      int32
}

// Motion payload of a mouse motion event.
type Motion struct {
	State uint32
	X     int32
	Y     int32
	XRel  int32
	YRel  int32
}

// Wheel payload of a mouse wheel event.
type Wheel struct {
	X float32
	Y float32
}

// Event is a native event as produced by a backend. Only the payload that
// matches the Type field is meaningful.
type Event struct {
	Type      EventType
	Timestamp uint32

	Key    Key
	Button Button
	Motion Motion
	Wheel  Wheel
}
