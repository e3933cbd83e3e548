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

package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/s2d/backend"
)

// USB HID scancodes for the keys that a terminal can report.
const (
	scancodeA         = 4
	scancode1         = 30
	scancode0         = 39
	scancodeReturn    = 40
	scancodeEscape    = 41
	scancodeBackspace = 42
	scancodeTab       = 43
	scancodeSpace     = 44
	scancodeRight     = 79
	scancodeLeft      = 80
	scancodeDown      = 81
	scancodeUp        = 82
)

// the mouse buttons reported by the terminal in the order of the native
// button numbers: left, middle, right.
var buttons = [...]tcell.ButtonMask{tcell.Button1, tcell.Button3, tcell.Button2}

// mouseState is the mouse as it was at the previous mouse event.
type mouseState struct {
	seen    bool
	x, y    int32
	buttons tcell.ButtonMask
}

// translate converts a tcell event into zero or more native events.
func (plt *Platform) translate(ev tcell.Event) []backend.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(ev) {
			return []backend.Event{{Type: backend.EventQuit}}
		}
		return []backend.Event{translateKey(ev)}

	case *tcell.EventMouse:
		return plt.translateMouse(ev)

	case *tcell.EventResize:
		plt.screen.Sync()
		return []backend.Event{{Type: backend.EventWindow}}
	}

	return nil
}

// isInterrupt returns true for Ctrl-C. some terminals report it as a control
// key and some as a rune with the control modifier.
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

func translateKey(ev *tcell.EventKey) backend.Event {
	k := backend.Key{State: 1}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= 'a' && r <= 'z':
			k.Scancode = uint16(scancodeA + r - 'a')
		case r >= 'A' && r <= 'Z':
			k.Scancode = uint16(scancodeA + r - 'A')
		case r >= '1' && r <= '9':
			k.Scancode = uint16(scancode1 + r - '1')
		case r == '0':
			k.Scancode = scancode0
		case r == ' ':
			k.Scancode = scancodeSpace
		}
		if r == ' ' {
			k.Name = "Space"
		} else {
			k.Name = string(unicode.ToUpper(r))
		}
	case tcell.KeyEnter:
		k.Scancode = scancodeReturn
		k.Name = "Return"
	case tcell.KeyEscape:
		k.Scancode = scancodeEscape
		k.Name = "Escape"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.Scancode = scancodeBackspace
		k.Name = "Backspace"
	case tcell.KeyTab:
		k.Scancode = scancodeTab
		k.Name = "Tab"
	case tcell.KeyRight:
		k.Scancode = scancodeRight
		k.Name = "Right"
	case tcell.KeyLeft:
		k.Scancode = scancodeLeft
		k.Name = "Left"
	case tcell.KeyDown:
		k.Scancode = scancodeDown
		k.Name = "Down"
	case tcell.KeyUp:
		k.Scancode = scancodeUp
		k.Name = "Up"
	default:
		k.Name = ev.Name()
	}

	return backend.Event{Type: backend.EventKeyDown, Key: k}
}

func (plt *Platform) translateMouse(ev *tcell.EventMouse) []backend.Event {
	var out []backend.Event

	cx, cy := ev.Position()
	x, y := plt.toWindow(cx, cy)
	mask := ev.Buttons()

	held := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	if plt.mouse.seen && (x != plt.mouse.x || y != plt.mouse.y) {
		out = append(out, backend.Event{
			Type: backend.EventMouseMotion,
			Motion: backend.Motion{
				State: motionState(plt.mouse.buttons),
				X:     x,
				Y:     y,
				XRel:  x - plt.mouse.x,
				YRel:  y - plt.mouse.y,
			},
		})
	}

	for i, b := range buttons {
		now := held&b != 0
		before := plt.mouse.buttons&b != 0
		if now == before {
			continue
		}
		e := backend.Event{
			Button: backend.Button{
				Button: uint8(i + 1),
				Clicks: 1,
				X:      x,
				Y:      y,
			},
		}
		if now {
			e.Type = backend.EventMouseButtonDown
			e.Button.State = 1
		} else {
			e.Type = backend.EventMouseButtonUp
		}
		out = append(out, e)
	}

	var w backend.Wheel
	if mask&tcell.WheelUp != 0 {
		w.Y++
	}
	if mask&tcell.WheelDown != 0 {
		w.Y--
	}
	if mask&tcell.WheelLeft != 0 {
		w.X--
	}
	if mask&tcell.WheelRight != 0 {
		w.X++
	}
	if w.X != 0 || w.Y != 0 {
		out = append(out, backend.Event{Type: backend.EventMouseWheel, Wheel: w})
	}

	plt.mouse = mouseState{seen: true, x: x, y: y, buttons: held}

	return out
}

// motionState converts held buttons into the native button state bitmask.
func motionState(held tcell.ButtonMask) uint32 {
	var s uint32
	for i, b := range buttons {
		if held&b != 0 {
			s |= 1 << i
		}
	}
	return s
}
