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
	"image"

	"github.com/jetsetilly/s2d/backend"
)

// Surface implements the backend.Surface interface.
type Surface struct {
	img *image.RGBA
	w   int
	h   int
}

// newSurface creates a surface with padding bytes at the end of every row.
func newSurface(w, h int, padding int) *Surface {
	stride := w*4 + padding
	return &Surface{
		img: &image.RGBA{
			Pix:    make([]byte, stride*h),
			Stride: stride,
			Rect:   image.Rect(0, 0, w, h),
		},
		w: w,
		h: h,
	}
}

// Format implements the backend.Surface interface.
func (s *Surface) Format() uint32 {
	return backend.PixelFormatRGBA32
}

// Size implements the backend.Surface interface.
func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// BytesPerPixel implements the backend.Surface interface.
func (s *Surface) BytesPerPixel() int {
	return 4
}

// Pitch implements the backend.Surface interface.
func (s *Surface) Pitch() int {
	if s.img == nil {
		return 0
	}
	return s.img.Stride
}

// Pixels implements the backend.Surface interface.
func (s *Surface) Pixels() []byte {
	if s.img == nil {
		return nil
	}
	return s.img.Pix
}

// Free implements the backend.Surface interface.
func (s *Surface) Free() {
	s.img = nil
}

// Image returns the surface as an image.RGBA sharing the surface's pixels.
// Returns nil if the surface has been freed.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// surfaceImage returns an image.RGBA view of any surface with the RGBA32
// format.
func surfaceImage(s backend.Surface) (*image.RGBA, bool) {
	if s, ok := s.(*Surface); ok {
		return s.img, s.img != nil
	}
	if s.Format() != backend.PixelFormatRGBA32 || s.Pixels() == nil {
		return nil, false
	}
	w, h := s.Size()
	return &image.RGBA{
		Pix:    s.Pixels(),
		Stride: s.Pitch(),
		Rect:   image.Rect(0, 0, w, h),
	}, true
}
