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
	"github.com/jetsetilly/s2d/logger"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText implements the backend.Platform interface.
func (plt *Platform) RenderText(spec backend.TextSpec) (backend.Surface, error) {
	if spec.Text == "" {
		return nil, fmt.Errorf("sdl: no text to render")
	}

	if spec.Direction != backend.LeftToRight {
		logger.Logf(logger.Allow, "sdl", "text direction not supported: %s", spec.Direction)
	}

	font, err := ttf.OpenFont(spec.FontPath, spec.Size)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	defer font.Close()

	col := sdl.Color{R: spec.Color.R, G: spec.Color.G, B: spec.Color.B, A: spec.Color.A}

	s, err := font.RenderUTF8BlendedWrapped(spec.Text, col, spec.WrapWidth)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return toRGBA32(s)
}
