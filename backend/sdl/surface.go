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
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

type surface struct {
	s *sdl.Surface
}

// Format implements the backend.Surface interface.
func (s *surface) Format() uint32 {
	return s.s.Format.Format
}

// Size implements the backend.Surface interface.
func (s *surface) Size() (int, int) {
	return int(s.s.W), int(s.s.H)
}

// BytesPerPixel implements the backend.Surface interface.
func (s *surface) BytesPerPixel() int {
	return s.s.BytesPerPixel()
}

// Pitch implements the backend.Surface interface.
func (s *surface) Pitch() int {
	return int(s.s.Pitch)
}

// Pixels implements the backend.Surface interface.
func (s *surface) Pixels() []byte {
	return s.s.Pixels()
}

// Free implements the backend.Surface interface.
func (s *surface) Free() {
	if s.s != nil {
		s.s.Free()
		s.s = nil
	}
}

// toRGBA32 converts the surface to the RGBA32 format. The original surface
// is freed.
func toRGBA32(s *sdl.Surface) (*surface, error) {
	if s.Format.Format == uint32(sdl.PIXELFORMAT_RGBA32) {
		return &surface{s: s}, nil
	}
	defer s.Free()

	c, err := s.ConvertFormat(uint32(sdl.PIXELFORMAT_RGBA32), 0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &surface{s: c}, nil
}

// LoadImage implements the backend.Platform interface.
func (plt *Platform) LoadImage(path string) (backend.Surface, error) {
	s, err := img.Load(path)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return toRGBA32(s)
}

// CreateSurface implements the backend.Platform interface.
func (plt *Platform) CreateSurface(w, h int) (backend.Surface, error) {
	s, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &surface{s: s}, nil
}
