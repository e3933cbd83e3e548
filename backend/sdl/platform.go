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
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	rendererAccelerated = sdl.RENDERER_ACCELERATED
	rendererSoftware    = sdl.RENDERER_SOFTWARE
	rendererVSync       = sdl.RENDERER_PRESENTVSYNC
)

// Platform implements the backend.Platform interface.
type Platform struct {
	Prefs *Preferences

	window *window
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform() *Platform {
	return &Platform{}
}

// Init implements the backend.Platform interface.
func (plt *Platform) Init() error {
	var err error

	plt.Prefs, err = newPreferences()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER | sdl.INIT_EVENTS)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logger.Logf(logger.Allow, "sdl", "image loader: %v", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	return nil
}

// CreateWindow implements the backend.Platform interface.
func (plt *Platform) CreateWindow(title string, w, h int) (backend.Window, error) {
	if plt.window != nil {
		return nil, fmt.Errorf("sdl: window already exists")
	}

	win, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(w), int32(h), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.window = &window{
		plt: plt,
		win: win,
	}

	return plt.window, nil
}

// SetEventFilter implements the backend.Platform interface.
func (plt *Platform) SetEventFilter(filter func(backend.Event) bool) {
	sdl.SetEventFilterFunc(func(ev sdl.Event, _ interface{}) bool {
		return filter(convertEvent(ev))
	}, nil)
}

// PollEvent implements the backend.Platform interface.
func (plt *Platform) PollEvent() (backend.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return backend.Event{}, false
	}
	return convertEvent(ev), true
}

// Delay implements the backend.Platform interface.
func (plt *Platform) Delay(ms int) {
	if ms > 0 {
		sdl.Delay(uint32(ms))
	}
}

// Ticks implements the backend.Platform interface.
func (plt *Platform) Ticks() uint32 {
	return sdl.GetTicks()
}

// Quit implements the backend.Platform interface.
func (plt *Platform) Quit() {
	plt.window = nil
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
