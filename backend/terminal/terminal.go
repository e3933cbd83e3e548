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
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/backend/software"
	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/prefs"
)

// the size of the tcell event channel.
const eventQueueLen = 64

// Preferences for the terminal backend.
type Preferences struct {
	Mouse prefs.Bool
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	if err := p.Mouse.Set(true); err != nil {
		return nil, err
	}
	if _, err := prefs.Override("terminal.mouse", &p.Mouse); err != nil {
		return nil, err
	}
	return p, nil
}

// Platform implements the backend.Platform interface. Drawing, images and
// text are provided by the software backend.
type Platform struct {
	*software.Platform

	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	Prefs *Preferences

	mouse mouseState
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. If screen is nil then a screen for the current terminal is created
// during Init().
func NewPlatform(screen tcell.Screen) *Platform {
	return &Platform{
		Platform: software.NewPlatform(),
		screen:   screen,
	}
}

// Init implements the backend.Platform interface.
func (plt *Platform) Init() error {
	var err error

	plt.Prefs, err = newPreferences()
	if err != nil {
		return err
	}

	if plt.screen == nil {
		plt.screen, err = tcell.NewScreen()
		if err != nil {
			return err
		}
	}

	if err := plt.screen.Init(); err != nil {
		return err
	}
	plt.screen.HideCursor()
	if plt.Prefs.Mouse.Get().(bool) {
		plt.screen.EnableMouse()
	}
	plt.screen.Clear()

	if err := plt.Platform.Init(); err != nil {
		plt.screen.Fini()
		return err
	}

	plt.mouse = mouseState{}
	plt.events = make(chan tcell.Event, eventQueueLen)
	plt.done = make(chan struct{})
	go plt.poll(plt.screen, plt.events, plt.done)

	plt.Platform.OnPresent = plt.present

	w, h := plt.screen.Size()
	logger.Logf(logger.Allow, "terminal", "screen is %dx%d cells", w, h)

	return nil
}

// poll forwards tcell events to the channel. the screen returns nil from
// PollEvent() once Fini() has been called.
func (plt *Platform) poll(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// CreateWindow implements the backend.Platform interface. The window is a
// framebuffer of the requested size. It is scaled to fit the terminal when it
// is presented.
func (plt *Platform) CreateWindow(title string, w, h int) (backend.Window, error) {
	win, err := plt.Platform.CreateWindow(title, w, h)
	if err != nil {
		return nil, err
	}
	cols, rows := plt.screen.Size()
	logger.Logf(logger.Allow, "terminal", "%q (%dx%d) presented in %dx%d cells", title, w, h, cols, rows)
	return win, nil
}

// PollEvent implements the backend.Platform interface.
func (plt *Platform) PollEvent() (backend.Event, bool) {
	for done := false; !done; {
		select {
		case ev := <-plt.events:
			for _, e := range plt.translate(ev) {
				plt.Push(e)
			}
		default:
			done = true
		}
	}
	return plt.Platform.PollEvent()
}

// Quit implements the backend.Platform interface.
func (plt *Platform) Quit() {
	if plt.done != nil {
		close(plt.done)
		plt.done = nil
	}
	if plt.screen != nil {
		plt.screen.Fini()
	}
	plt.Platform.Quit()
}

// present draws the framebuffer to the terminal.
func (plt *Platform) present(img *image.RGBA) {
	cols, rows := plt.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	b := img.Bounds()
	for y := 0; y < rows; y++ {
		top := b.Min.Y + (y*2)*b.Dy()/(rows*2)
		bottom := b.Min.Y + (y*2+1)*b.Dy()/(rows*2)
		for x := 0; x < cols; x++ {
			px := b.Min.X + x*b.Dx()/cols
			fg := img.RGBAAt(px, top)
			bg := img.RGBAAt(px, bottom)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
				Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
			plt.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	plt.screen.Show()
}

// toWindow converts a cell position to window coordinates.
func (plt *Platform) toWindow(x, y int) (int32, int32) {
	win := plt.Window()
	cols, rows := plt.screen.Size()
	if win == nil || cols <= 0 || rows <= 0 {
		return int32(x), int32(y)
	}
	w, h := win.Size()
	return int32(x * w / cols), int32(y * h / rows)
}
