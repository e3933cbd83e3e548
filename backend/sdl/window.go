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
	"fmt"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/logger"
	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	plt *Platform
	win *sdl.Window
}

// Size implements the backend.Window interface.
func (w *window) Size() (int, int) {
	ww, wh := w.win.GetSize()
	return int(ww), int(wh)
}

// CreateRenderer implements the backend.Window interface.
func (w *window) CreateRenderer() (backend.Renderer, error) {
	quality := w.plt.Prefs.Quality.String()
	if !sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, quality) {
		logger.Logf(logger.Allow, "sdl", "scale quality %q not accepted", quality)
	}

	rnd, err := sdl.CreateRenderer(w.win, -1, w.plt.Prefs.rendererFlags())
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &renderer{rnd: rnd}, nil
}

// Destroy implements the backend.Window interface.
func (w *window) Destroy() error {
	if w.plt.window == w {
		w.plt.window = nil
	}
	return w.win.Destroy()
}

type renderer struct {
	rnd *sdl.Renderer
}

func rect(r geometry.Rectangle) *sdl.Rect {
	return &sdl.Rect{X: int32(r.Origin.X), Y: int32(r.Origin.Y), W: int32(r.W), H: int32(r.H)}
}

func rectF(r geometry.RectangleF) *sdl.FRect {
	return &sdl.FRect{X: r.Origin.X, Y: r.Origin.Y, W: r.W, H: r.H}
}

// SetDrawColor implements the backend.Renderer interface.
func (r *renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	return r.rnd.SetDrawColor(red, green, blue, alpha)
}

// SetScale implements the backend.Renderer interface.
func (r *renderer) SetScale(x, y float32) error {
	return r.rnd.SetScale(x, y)
}

// Clear implements the backend.Renderer interface.
func (r *renderer) Clear() error {
	return r.rnd.Clear()
}

// Present implements the backend.Renderer interface.
func (r *renderer) Present() {
	r.rnd.Present()
}

// DrawPoint implements the backend.Renderer interface.
func (r *renderer) DrawPoint(x, y int) error {
	return r.rnd.DrawPoint(int32(x), int32(y))
}

// DrawPointF implements the backend.Renderer interface.
func (r *renderer) DrawPointF(x, y float32) error {
	return r.rnd.DrawPointF(x, y)
}

// DrawPoints implements the backend.Renderer interface.
func (r *renderer) DrawPoints(points []geometry.Vector) error {
	if len(points) == 0 {
		return nil
	}
	p := make([]sdl.Point, len(points))
	for i, v := range points {
		p[i] = sdl.Point{X: int32(v.X), Y: int32(v.Y)}
	}
	return r.rnd.DrawPoints(p)
}

// DrawPointsF implements the backend.Renderer interface.
func (r *renderer) DrawPointsF(points []geometry.VectorF) error {
	if len(points) == 0 {
		return nil
	}
	p := make([]sdl.FPoint, len(points))
	for i, v := range points {
		p[i] = sdl.FPoint{X: v.X, Y: v.Y}
	}
	return r.rnd.DrawPointsF(p)
}

// DrawLine implements the backend.Renderer interface.
func (r *renderer) DrawLine(x0, y0, x1, y1 int) error {
	return r.rnd.DrawLine(int32(x0), int32(y0), int32(x1), int32(y1))
}

// DrawLineF implements the backend.Renderer interface.
func (r *renderer) DrawLineF(x0, y0, x1, y1 float32) error {
	return r.rnd.DrawLineF(x0, y0, x1, y1)
}

// DrawRect implements the backend.Renderer interface.
func (r *renderer) DrawRect(rc geometry.Rectangle) error {
	return r.rnd.DrawRect(rect(rc))
}

// DrawRectF implements the backend.Renderer interface.
func (r *renderer) DrawRectF(rc geometry.RectangleF) error {
	return r.rnd.DrawRectF(rectF(rc))
}

// FillRect implements the backend.Renderer interface.
func (r *renderer) FillRect(rc geometry.Rectangle) error {
	return r.rnd.FillRect(rect(rc))
}

// FillRectF implements the backend.Renderer interface.
func (r *renderer) FillRectF(rc geometry.RectangleF) error {
	return r.rnd.FillRectF(rectF(rc))
}

// CreateDrawable implements the backend.Renderer interface.
func (r *renderer) CreateDrawable(s backend.Surface) (backend.Drawable, error) {
	ss, ok := s.(*surface)
	if !ok || ss.s == nil {
		return nil, fmt.Errorf("sdl: invalid surface")
	}

	t, err := r.rnd.CreateTextureFromSurface(ss.s)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &drawable{t: t}, nil
}

// Copy implements the backend.Renderer interface.
func (r *renderer) Copy(d backend.Drawable, dst geometry.Rectangle) error {
	dd, ok := d.(*drawable)
	if !ok || dd.t == nil {
		return fmt.Errorf("sdl: invalid drawable")
	}
	return r.rnd.Copy(dd.t, nil, rect(dst))
}

// Destroy implements the backend.Renderer interface.
func (r *renderer) Destroy() error {
	return r.rnd.Destroy()
}

type drawable struct {
	t *sdl.Texture
}

// Destroy implements the backend.Drawable interface.
func (d *drawable) Destroy() error {
	if d.t == nil {
		return fmt.Errorf("sdl: drawable already destroyed")
	}
	err := d.t.Destroy()
	d.t = nil
	return err
}
