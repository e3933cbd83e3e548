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

import (
	"unicode/utf8"

	"github.com/jetsetilly/s2d/backend"
)

// KeyState is the state of a key or mouse button.
type KeyState uint8

// List of valid KeyState values.
const (
	Released KeyState = iota
	Pressed
)

func (s KeyState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Keycode is the physical position of a key on the keyboard, as defined by
// the USB HID usage tables. It is not affected by the keyboard layout.
type Keycode uint16

// List of Keycode values.
const (
	KeyUnknown Keycode = 0

	KeyA Keycode = iota + 3
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
)

// List of arrow key Keycode values.
const (
	KeyArrowRight Keycode = iota + 79
	KeyArrowLeft
	KeyArrowDown
	KeyArrowUp
)

// LabelSize is the size of the buffer holding a key's label.
const LabelSize = 20

// Keyboard is a key press or release.
type Keyboard struct {
	// milliseconds since the backend was initialised
	Time uint32

	State    KeyState
	Repeated bool
	Keycode  Keycode

	// human readable name of the key. longer names are truncated and shorter
	// names padded with zero bytes
	Label [LabelSize]byte
}

// LabelString returns the label without zero padding.
func (k *Keyboard) LabelString() string {
	for i, b := range k.Label {
		if b == 0 {
			return string(k.Label[:i])
		}
	}
	return string(k.Label[:])
}

// NewKeyboard translates a native keyboard event. Returns nil if the event is
// not a key press or release.
func NewKeyboard(ev backend.Event) *Keyboard {
	var state KeyState
	switch ev.Type {
	case backend.EventKeyDown:
		state = Pressed
	case backend.EventKeyUp:
		state = Released
	default:
		return nil
	}

	k := &Keyboard{
		Time:     ev.Timestamp,
		State:    state,
		Repeated: ev.Key.Repeat != 0,
		Keycode:  Keycode(ev.Key.Scancode),
	}
	copy(k.Label[:], truncateLabel(ev.Key.Name))

	return k
}

// truncateLabel shortens the name to fit the label without splitting a
// multi-byte character.
func truncateLabel(name string) string {
	if len(name) <= LabelSize {
		return name
	}
	n := LabelSize
	for n > 0 && !utf8.RuneStart(name[n]) {
		n--
	}
	return name[:n]
}
