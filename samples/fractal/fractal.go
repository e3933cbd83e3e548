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

package fractal

import (
	"context"
	"runtime"

	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/events"
	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/regions"
	"github.com/jetsetilly/s2d/session"
)

// Dimensions of the window.
const (
	WindowWidth  = 1600
	WindowHeight = 1024
)

const (
	// change in scale for each step of the mouse wheel
	zoomFactor = 1.25

	// milliseconds between each check of the event queue
	pollInterval = 16
)

// viewer is the state shared between the event handlers and the main loop.
type viewer struct {
	params  Params
	workers int

	// the image must be recomputed
	dirty bool

	// the program should end
	done bool
}

// Run the program. The session must be initialised but the window must not
// have been created. Run returns when the escape key is pressed.
func Run(ctx context.Context, sess *session.Session) error {
	err := sess.CreateWindow("Fractals", WindowWidth, WindowHeight)
	if err != nil {
		return err
	}

	v := &viewer{
		params:  DefaultParams,
		workers: runtime.NumCPU(),
		dirty:   true,
	}

	sess.AddKeyboardEventHandler(keyboard)
	sess.AddMouseEventHandler(mouse)

	var tex *session.Texture
	defer func() {
		sess.DestroyTexture(tex)
	}()

	for !v.done {
		if v.dirty {
			t, err := v.render(ctx, sess)
			if err != nil {
				return err
			}
			sess.DestroyTexture(tex)
			tex = t
			v.dirty = false

			if err := draw(sess, tex); err != nil {
				return err
			}
		}

		for sess.Dequeue(v) {
		}
		sess.Delay(pollInterval)
	}

	logger.Log(logger.Allow, "fractal", "finished")
	return nil
}

// render computes the image and creates a texture from it.
func (v *viewer) render(ctx context.Context, sess *session.Session) (*session.Texture, error) {
	start := sess.Ticks()

	w, h := sess.DrawState().Width, sess.DrawState().Height
	buf := regions.NewBuffer(w, h)
	if err := Render(ctx, buf, v.workers, v.params); err != nil {
		return nil, err
	}

	t, err := sess.CreateTextureFromImage(buf.Image())
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "fractal", "scale %.1f rendered in %dms with %d workers",
		v.params.Scaler, sess.Ticks()-start, v.workers)

	return t, nil
}

func draw(sess *session.Session, tex *session.Texture) error {
	if err := sess.SetDrawColor(colors.Transparent); err != nil {
		return err
	}
	if err := sess.Clear(); err != nil {
		return err
	}
	if err := sess.DrawTextureNative(tex, geometry.Vector{}); err != nil {
		return err
	}
	return sess.Present()
}

// zoom changes the scale of the image by the number of wheel steps.
func (v *viewer) zoom(steps float32) {
	if steps == 0 {
		return
	}
	s := v.params.Scaler
	if steps > 0 {
		for i := float32(0); i < steps; i++ {
			s *= zoomFactor
		}
	} else {
		for i := float32(0); i > steps; i-- {
			s /= zoomFactor
		}
	}
	if s < 1 {
		s = 1
	}
	if s != v.params.Scaler {
		v.params.Scaler = s
		v.dirty = true
	}
}

func keyboard(ev *events.Keyboard, data any) {
	v, ok := data.(*viewer)
	if !ok {
		return
	}
	if ev.State == events.Pressed && ev.Keycode == events.KeyEscape {
		v.done = true
	}
}

func mouse(ev events.MouseEvent, data any) {
	v, ok := data.(*viewer)
	if !ok {
		return
	}
	if w, ok := ev.(*events.MouseWheel); ok {
		v.zoom(w.Vertical)
	}
}
