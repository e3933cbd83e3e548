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
	"os"
	"sync/atomic"

	"github.com/jetsetilly/s2d/assert"
	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/errors"
	"github.com/jetsetilly/s2d/events"
)

// live is true while a session exists.
var live atomic.Bool

// Session is the single window, its render target and the draw state.
type Session struct {
	plt backend.Platform
	win backend.Window
	rnd backend.Renderer

	state     State
	drawState DrawState
	handlers  events.Handlers

	Prefs *Preferences

	// called by the quit handler after teardown
	exit func(code int)
}

// Initialise the backend and create the session. Fails with the
// errors.Initialise code if a session already exists or if the backend could
// not be initialised.
func Initialise(plt backend.Platform) (*Session, error) {
	if !live.CompareAndSwap(false, true) {
		return nil, errors.New(errors.Initialise, errors.SessionExists)
	}

	sess := &Session{
		plt:  plt,
		exit: os.Exit,
	}

	var err error
	sess.Prefs, err = newPreferences()
	if err != nil {
		live.Store(false)
		return nil, errors.New(errors.Initialise, err)
	}

	sess.handlers.Reset(sess.quit)

	if err := plt.Init(); err != nil {
		live.Store(false)
		return nil, errors.New(errors.Initialise, err)
	}

	assert.SetMainThread()

	sess.state = Initialised
	sess.log("initialised")

	return sess, nil
}

// State returns the current state of the session.
func (sess *Session) State() State {
	return sess.state
}

// notReady returns an error if the session can not draw.
func (sess *Session) notReady() error {
	assert.CheckMainThread()
	if !sess.state.ready() {
		return errors.New(errors.Unspecified, errors.NotReady)
	}
	return nil
}

// CreateWindow creates the window and the render target. The window is
// centered on the screen.
//
// Fails with errors.CreateWindow or errors.CreateRenderer. If the render
// target could not be created the window remains but the session can not be
// used for drawing.
func (sess *Session) CreateWindow(title string, w, h int) error {
	assert.CheckMainThread()

	if sess.state != Initialised {
		return errors.New(errors.CreateWindow, errors.NotReady)
	}

	if sess.win == nil {
		win, err := sess.plt.CreateWindow(title, w, h)
		if err != nil {
			return errors.New(errors.CreateWindow, err)
		}
		sess.win = win
	}

	sess.plt.SetEventFilter(events.Accept)

	sess.drawState.Width, sess.drawState.Height = sess.win.Size()

	rnd, err := sess.win.CreateRenderer()
	if err != nil {
		return errors.New(errors.CreateRenderer, err)
	}
	sess.rnd = rnd
	sess.state = WindowReady

	if err := sess.SetDrawColor(colors.Default); err != nil {
		return err
	}

	if scale := float32(sess.Prefs.Scale.Get().(float64)); scale != 1.0 {
		if err := sess.SetRenderScale(scale, scale); err != nil {
			return err
		}
	}

	if err := sess.Clear(); err != nil {
		return err
	}
	sess.rnd.Present()

	sess.log("window created (%dx%d)", sess.drawState.Width, sess.drawState.Height)

	return nil
}

// SetRenderScale sets the scale of all subsequent drawing. The draw state is
// not changed. Fails with errors.SetRenderScale.
func (sess *Session) SetRenderScale(x, y float32) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.SetScale(x, y); err != nil {
		return errors.New(errors.SetRenderScale, err)
	}
	return nil
}

// SetDrawColor sets the colour used by the drawing functions. The draw state
// is only changed if the backend accepts the colour. Fails with
// errors.SetDrawColor.
func (sess *Session) SetDrawColor(code colors.Code) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	c := code.Color()
	if err := sess.rnd.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return errors.New(errors.SetDrawColor, err)
	}
	sess.drawState.Color = code
	return nil
}

// DrawState returns a copy of the current draw state.
func (sess *Session) DrawState() DrawState {
	return sess.drawState
}

// Clear the render target with the draw colour. Fails with
// errors.ClearScreen.
func (sess *Session) Clear() error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.Clear(); err != nil {
		return errors.New(errors.ClearScreen, err)
	}
	return nil
}

// Present the render target to the window.
func (sess *Session) Present() error {
	if err := sess.notReady(); err != nil {
		return err
	}
	sess.rnd.Present()
	if sess.state == WindowReady {
		sess.state = Running
		sess.log("running")
	}
	return nil
}

// Delay blocks for the number of milliseconds.
func (sess *Session) Delay(ms int) {
	assert.CheckMainThread()
	sess.plt.Delay(ms)
}

// Ticks returns the number of milliseconds since the session was initialised.
func (sess *Session) Ticks() uint32 {
	assert.CheckMainThread()
	return sess.plt.Ticks()
}

// Destroy releases the render target and the window and quits the backend.
// The session can not be used after Destroy() and a new session may be
// initialised. Textures should be destroyed before the session.
func (sess *Session) Destroy() {
	assert.CheckMainThread()

	if sess.state == Quit || sess.state == Uninitialised {
		return
	}

	if sess.rnd != nil {
		if err := sess.rnd.Destroy(); err != nil {
			sess.log("%v", err)
		}
		sess.rnd = nil
	}
	if sess.win != nil {
		if err := sess.win.Destroy(); err != nil {
			sess.log("%v", err)
		}
		sess.win = nil
	}
	sess.plt.Quit()

	sess.state = Quit
	live.Store(false)

	sess.log("quit")
}

// quit is the built-in handler for quit events.
func (sess *Session) quit(_ any) {
	sess.Destroy()
	sess.exit(0)
}
