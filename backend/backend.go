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

import (
	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/geometry"
)

// PixelFormatRGBA32 is the format code of a surface with four bytes per pixel
// in the byte order R, G, B, A. This is the same value as SDL's
// PIXELFORMAT_RGBA32 on a little-endian machine.
const PixelFormatRGBA32 uint32 = 0x16762004

// Platform is the entry point to a native backend.
type Platform interface {
	// Init must be called before any other function. Platform may not be
	// reused after Quit()
	Init() error

	// CreateWindow creates the window centered on the screen. Only one window
	// is ever created.
	CreateWindow(title string, w, h int) (Window, error)

	// SetEventFilter installs a function that decides which native events are
	// queued. Rejected events are dropped before they reach PollEvent().
	SetEventFilter(filter func(Event) bool)

	// PollEvent returns the next queued event without blocking. The boolean is
	// false if the queue is empty.
	PollEvent() (Event, bool)

	// LoadImage decodes the image file into a new surface with the
	// PixelFormatRGBA32 format.
	LoadImage(path string) (Surface, error)

	// RenderText rasterises the text into a new surface with the
	// PixelFormatRGBA32 format. Fonts are opened and closed within the call.
	RenderText(spec TextSpec) (Surface, error)

	// CreateSurface creates a blank surface with the PixelFormatRGBA32
	// format.
	CreateSurface(w, h int) (Surface, error)

	// Delay blocks for the number of milliseconds.
	Delay(ms int)

	// Ticks returns the number of milliseconds since Init().
	Ticks() uint32

	// Quit releases the backend.
	Quit()
}

// Window is a native window.
type Window interface {
	// Size returns the size of the window's drawable area.
	Size() (w, h int)

	// CreateRenderer creates the render target for the window.
	CreateRenderer() (Renderer, error)

	Destroy() error
}

// Renderer is the render target of a window. Primitives are drawn in the
// current draw colour and are subject to the current scale.
type Renderer interface {
	SetDrawColor(r, g, b, a uint8) error
	SetScale(x, y float32) error
	Clear() error
	Present()

	DrawPoint(x, y int) error
	DrawPointF(x, y float32) error
	DrawPoints(points []geometry.Vector) error
	DrawPointsF(points []geometry.VectorF) error
	DrawLine(x0, y0, x1, y1 int) error
	DrawLineF(x0, y0, x1, y1 float32) error
	DrawRect(rect geometry.Rectangle) error
	DrawRectF(rect geometry.RectangleF) error
	FillRect(rect geometry.Rectangle) error
	FillRectF(rect geometry.RectangleF) error

	// CreateDrawable uploads the surface. The drawable is a copy of the
	// surface at the time of the call and does not follow later changes to
	// the surface's pixels.
	CreateDrawable(surface Surface) (Drawable, error)

	// Copy draws the drawable into the destination rectangle, scaling as
	// required.
	Copy(drawable Drawable, dst geometry.Rectangle) error

	Destroy() error
}

// Surface is an image held in CPU memory.
type Surface interface {
	Format() uint32
	Size() (w, h int)
	BytesPerPixel() int

	// Pitch is the number of bytes in a row. It may be larger than
	// width*BytesPerPixel()
	Pitch() int

	// Pixels returns the pixel memory of the surface. Writes to the slice
	// change the surface.
	Pixels() []byte

	Free()
}

// Drawable is an image held by the renderer, usually in GPU memory.
type Drawable interface {
	Destroy() error
}

// Direction of text.
type Direction int

// List of valid Direction values.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left to right"
	case RightToLeft:
		return "right to left"
	case TopToBottom:
		return "top to bottom"
	case BottomToTop:
		return "bottom to top"
	}
	return "unknown direction"
}

// TextSpec describes text to be rasterised by RenderText().
type TextSpec struct {
	// path to a TTF or OTF font file
	FontPath string

	// point size of the font
	Size int

	Color colors.Color

	// lines are wrapped at word boundaries when they are wider than the
	// number of pixels. zero means only wrap at newline characters
	WrapWidth int

	// only LeftToRight is honoured by the backends
	Direction Direction

	Text string
}
