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

package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/geometry"
	xdraw "golang.org/x/image/draw"
)

// Renderer implements the backend.Renderer interface.
type Renderer struct {
	win    *Window
	faults faults

	// the back buffer is drawn to. it is copied to the screen on Present()
	fb     *image.RGBA
	screen *image.RGBA
	frames int

	color  color.NRGBA
	scaleX float32
	scaleY float32

	// drawables that have not been destroyed. they are released when the
	// renderer is destroyed
	drawables map[*Drawable]bool

	destroyed bool
}

// Fail makes the operation fail until Recover() is called.
func (r *Renderer) Fail(op Op) {
	r.faults[op] = true
}

// Recover reverses the effect of an earlier call to Fail().
func (r *Renderer) Recover(op Op) {
	delete(r.faults, op)
}

// Framebuffer returns the back buffer. The back buffer is changed by every
// draw call.
func (r *Renderer) Framebuffer() *image.RGBA {
	return r.fb
}

// Screen returns the framebuffer as it was at the most recent call to
// Present().
func (r *Renderer) Screen() *image.RGBA {
	return r.screen
}

// Frames returns the number of calls to Present().
func (r *Renderer) Frames() int {
	return r.frames
}

// DrawColor returns the current draw colour.
func (r *Renderer) DrawColor() color.NRGBA {
	return r.color
}

// Scale returns the current render scale.
func (r *Renderer) Scale() (float32, float32) {
	return r.scaleX, r.scaleY
}

func (r *Renderer) check(op Op) error {
	if r.destroyed {
		return fmt.Errorf("software: %s: renderer has been destroyed", op)
	}
	return r.faults.check(op)
}

// SetDrawColor implements the backend.Renderer interface.
func (r *Renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	if err := r.check(OpSetDrawColor); err != nil {
		return err
	}
	r.color = color.NRGBA{R: red, G: green, B: blue, A: alpha}
	return nil
}

// SetScale implements the backend.Renderer interface.
func (r *Renderer) SetScale(x, y float32) error {
	if err := r.check(OpSetScale); err != nil {
		return err
	}
	if x <= 0 || y <= 0 {
		return fmt.Errorf("software: scale must be positive (%f, %f)", x, y)
	}
	r.scaleX = x
	r.scaleY = y
	return nil
}

// Clear implements the backend.Renderer interface. The render scale has no
// effect on clearing.
func (r *Renderer) Clear() error {
	if err := r.check(OpClear); err != nil {
		return err
	}
	draw.Draw(r.fb, r.fb.Bounds(), image.NewUniform(r.color), image.Point{}, draw.Src)
	return nil
}

// Present implements the backend.Renderer interface.
func (r *Renderer) Present() {
	if r.destroyed {
		return
	}
	copy(r.screen.Pix, r.fb.Pix)
	r.frames++
	if r.win.plt.OnPresent != nil {
		r.win.plt.OnPresent(r.screen)
	}
}

// physical converts a logical area to framebuffer coordinates. the area is
// always at least one framebuffer pixel in size.
func (r *Renderer) physical(x0, y0, x1, y1 float64) image.Rectangle {
	sx := float64(r.scaleX)
	sy := float64(r.scaleY)
	rect := image.Rectangle{
		Min: image.Point{X: int(math.Floor(x0 * sx)), Y: int(math.Floor(y0 * sy))},
		Max: image.Point{X: int(math.Floor(x1 * sx)), Y: int(math.Floor(y1 * sy))},
	}
	if rect.Max.X <= rect.Min.X {
		rect.Max.X = rect.Min.X + 1
	}
	if rect.Max.Y <= rect.Min.Y {
		rect.Max.Y = rect.Min.Y + 1
	}
	return rect
}

// fill an area given in logical coordinates with the draw colour. the area is
// clipped to the framebuffer.
func (r *Renderer) fill(x0, y0, x1, y1 float64) {
	rect := r.physical(x0, y0, x1, y1).Intersect(r.fb.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.fb, rect, image.NewUniform(r.color), image.Point{}, draw.Src)
}

func (r *Renderer) point(x, y float64) {
	x = math.Floor(x)
	y = math.Floor(y)
	r.fill(x, y, x+1, y+1)
}

// line plots a line between two logical points with Bresenham's algorithm.
func (r *Renderer) line(x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := -(y1 - y0)
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		r.point(float64(x0), float64(y0))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *Renderer) outline(x0, y0, x1, y1 float64) {
	r.fill(x0, y0, x1, y0+1)
	r.fill(x0, y1-1, x1, y1)
	r.fill(x0, y0, x0+1, y1)
	r.fill(x1-1, y0, x1, y1)
}

// DrawPoint implements the backend.Renderer interface.
func (r *Renderer) DrawPoint(x, y int) error {
	if err := r.check(OpDrawPoint); err != nil {
		return err
	}
	r.point(float64(x), float64(y))
	return nil
}

// DrawPointF implements the backend.Renderer interface.
func (r *Renderer) DrawPointF(x, y float32) error {
	if err := r.check(OpDrawPoint); err != nil {
		return err
	}
	r.point(float64(x), float64(y))
	return nil
}

// DrawPoints implements the backend.Renderer interface.
func (r *Renderer) DrawPoints(points []geometry.Vector) error {
	if err := r.check(OpDrawPoint); err != nil {
		return err
	}
	for _, p := range points {
		r.point(float64(p.X), float64(p.Y))
	}
	return nil
}

// DrawPointsF implements the backend.Renderer interface.
func (r *Renderer) DrawPointsF(points []geometry.VectorF) error {
	if err := r.check(OpDrawPoint); err != nil {
		return err
	}
	for _, p := range points {
		r.point(float64(p.X), float64(p.Y))
	}
	return nil
}

// DrawLine implements the backend.Renderer interface.
func (r *Renderer) DrawLine(x0, y0, x1, y1 int) error {
	if err := r.check(OpDrawLine); err != nil {
		return err
	}
	r.line(x0, y0, x1, y1)
	return nil
}

// DrawLineF implements the backend.Renderer interface.
func (r *Renderer) DrawLineF(x0, y0, x1, y1 float32) error {
	if err := r.check(OpDrawLine); err != nil {
		return err
	}
	f := func(v float32) int { return int(math.Floor(float64(v))) }
	r.line(f(x0), f(y0), f(x1), f(y1))
	return nil
}

// DrawRect implements the backend.Renderer interface.
func (r *Renderer) DrawRect(rect geometry.Rectangle) error {
	if err := r.check(OpDrawRect); err != nil {
		return err
	}
	if rect.Empty() {
		return nil
	}
	x0, y0 := float64(rect.Origin.X), float64(rect.Origin.Y)
	r.outline(x0, y0, x0+float64(rect.W), y0+float64(rect.H))
	return nil
}

// DrawRectF implements the backend.Renderer interface.
func (r *Renderer) DrawRectF(rect geometry.RectangleF) error {
	if err := r.check(OpDrawRect); err != nil {
		return err
	}
	if rect.Empty() {
		return nil
	}
	x0, y0 := float64(rect.Origin.X), float64(rect.Origin.Y)
	r.outline(x0, y0, x0+float64(rect.W), y0+float64(rect.H))
	return nil
}

// FillRect implements the backend.Renderer interface.
func (r *Renderer) FillRect(rect geometry.Rectangle) error {
	if err := r.check(OpFillRect); err != nil {
		return err
	}
	if rect.Empty() {
		return nil
	}
	x0, y0 := float64(rect.Origin.X), float64(rect.Origin.Y)
	r.fill(x0, y0, x0+float64(rect.W), y0+float64(rect.H))
	return nil
}

// FillRectF implements the backend.Renderer interface.
func (r *Renderer) FillRectF(rect geometry.RectangleF) error {
	if err := r.check(OpFillRect); err != nil {
		return err
	}
	if rect.Empty() {
		return nil
	}
	x0, y0 := float64(rect.Origin.X), float64(rect.Origin.Y)
	r.fill(x0, y0, x0+float64(rect.W), y0+float64(rect.H))
	return nil
}

// CreateDrawable implements the backend.Renderer interface.
func (r *Renderer) CreateDrawable(surface backend.Surface) (backend.Drawable, error) {
	if err := r.check(OpCreateDrawable); err != nil {
		return nil, err
	}
	img, ok := surfaceImage(surface)
	if !ok {
		return nil, fmt.Errorf("software: unsupported surface")
	}
	d := &Drawable{
		rnd: r,
		img: image.NewRGBA(img.Bounds()),
	}
	draw.Draw(d.img, d.img.Bounds(), img, image.Point{}, draw.Src)
	if r.drawables == nil {
		r.drawables = make(map[*Drawable]bool)
	}
	r.drawables[d] = true
	return d, nil
}

// Copy implements the backend.Renderer interface.
func (r *Renderer) Copy(drawable backend.Drawable, dst geometry.Rectangle) error {
	if err := r.check(OpCopy); err != nil {
		return err
	}
	d, ok := drawable.(*Drawable)
	if !ok || d.img == nil {
		return fmt.Errorf("software: invalid drawable")
	}
	if dst.Empty() {
		return nil
	}

	x0, y0 := float64(dst.Origin.X), float64(dst.Origin.Y)
	rect := r.physical(x0, y0, x0+float64(dst.W), y0+float64(dst.H))

	if rect.Size() == d.img.Bounds().Size() {
		draw.Draw(r.fb, rect, d.img, image.Point{}, draw.Over)
	} else {
		xdraw.NearestNeighbor.Scale(r.fb, rect, d.img, d.img.Bounds(), xdraw.Over, nil)
	}
	return nil
}

// Destroy implements the backend.Renderer interface.
func (r *Renderer) Destroy() error {
	r.destroyed = true
	for d := range r.drawables {
		d.img = nil
	}
	r.drawables = nil
	if r.win.renderer == r {
		r.win.renderer = nil
	}
	return nil
}

// Drawable implements the backend.Drawable interface. It is a copy of the
// surface it was created from.
type Drawable struct {
	rnd *Renderer
	img *image.RGBA
}

// Destroy implements the backend.Drawable interface. Drawables are released
// with the renderer so it is an error to destroy a drawable after the
// renderer.
func (d *Drawable) Destroy() error {
	if d.rnd.destroyed {
		return fmt.Errorf("software: drawable destroyed after renderer")
	}
	if d.img == nil {
		return fmt.Errorf("software: drawable already destroyed")
	}
	d.img = nil
	delete(d.rnd.drawables, d)
	return nil
}

// Image returns the pixels of the drawable. Returns nil if the drawable has
// been destroyed.
func (d *Drawable) Image() *image.RGBA {
	return d.img
}
