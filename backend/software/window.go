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

	"github.com/jetsetilly/s2d/backend"
)

// Window implements the backend.Window interface.
type Window struct {
	plt   *Platform
	title string
	w     int
	h     int

	renderer *Renderer
}

// Title of the window.
func (win *Window) Title() string {
	return win.title
}

// Size implements the backend.Window interface.
func (win *Window) Size() (int, int) {
	return win.w, win.h
}

// CreateRenderer implements the backend.Window interface.
func (win *Window) CreateRenderer() (backend.Renderer, error) {
	if err := win.plt.faults.check(OpCreateRenderer); err != nil {
		return nil, err
	}
	if win.renderer != nil {
		return nil, fmt.Errorf("software: renderer already exists")
	}
	win.renderer = &Renderer{
		win:    win,
		faults: win.plt.faults,
		fb:     image.NewRGBA(image.Rect(0, 0, win.w, win.h)),
		screen: image.NewRGBA(image.Rect(0, 0, win.w, win.h)),
		scaleX: 1,
		scaleY: 1,
	}
	win.renderer.color.A = 0xff
	return win.renderer, nil
}

// Renderer returns the renderer created by CreateRenderer(). Returns nil if
// there is no renderer.
func (win *Window) Renderer() *Renderer {
	return win.renderer
}

// Destroy implements the backend.Window interface.
func (win *Window) Destroy() error {
	if win.plt.window == win {
		win.plt.window = nil
	}
	win.renderer = nil
	return nil
}
