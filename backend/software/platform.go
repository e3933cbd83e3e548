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
	"time"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/logger"
)

// Platform implements the backend.Platform interface.
type Platform struct {
	faults faults

	initialised bool
	start       time.Time

	window *Window

	filter func(backend.Event) bool
	queue  []backend.Event

	// SurfacePadding is the number of bytes added to the end of every row of
	// a new surface. Padding makes the pitch of a surface larger than its
	// width, which is allowed by the backend.Surface interface.
	SurfacePadding int

	// OnPresent is called with the framebuffer every time the renderer is
	// presented. The image must not be retained after the function returns.
	OnPresent func(*image.RGBA)
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform() *Platform {
	return &Platform{
		faults: make(faults),
	}
}

// Fail makes the operation fail until Recover() is called.
func (plt *Platform) Fail(op Op) {
	plt.faults[op] = true
}

// Recover reverses the effect of an earlier call to Fail().
func (plt *Platform) Recover(op Op) {
	delete(plt.faults, op)
}

// Init implements the backend.Platform interface.
func (plt *Platform) Init() error {
	if err := plt.faults.check(OpInit); err != nil {
		return err
	}
	plt.initialised = true
	plt.start = time.Now()
	plt.queue = plt.queue[:0]
	return nil
}

// CreateWindow implements the backend.Platform interface.
func (plt *Platform) CreateWindow(title string, w, h int) (backend.Window, error) {
	if !plt.initialised {
		return nil, fmt.Errorf("software: not initialised")
	}
	if err := plt.faults.check(OpCreateWindow); err != nil {
		return nil, err
	}
	if plt.window != nil {
		return nil, fmt.Errorf("software: window already exists")
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("software: window size must be positive (%dx%d)", w, h)
	}
	plt.window = &Window{
		plt:   plt,
		title: title,
		w:     w,
		h:     h,
	}
	logger.Logf(logger.Allow, "software", "created window %q (%dx%d)", title, w, h)
	return plt.window, nil
}

// Window returns the window created by CreateWindow(). Returns nil if there
// is no window.
func (plt *Platform) Window() *Window {
	return plt.window
}

// SetEventFilter implements the backend.Platform interface.
func (plt *Platform) SetEventFilter(filter func(backend.Event) bool) {
	plt.filter = filter
}

// Push adds an event to the end of the event queue, subject to the event
// filter. Returns false if the filter rejected the event.
func (plt *Platform) Push(ev backend.Event) bool {
	if plt.filter != nil && !plt.filter(ev) {
		return false
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = plt.Ticks()
	}
	plt.queue = append(plt.queue, ev)
	return true
}

// Pending returns the number of events in the queue.
func (plt *Platform) Pending() int {
	return len(plt.queue)
}

// PollEvent implements the backend.Platform interface.
func (plt *Platform) PollEvent() (backend.Event, bool) {
	if len(plt.queue) == 0 {
		return backend.Event{}, false
	}
	ev := plt.queue[0]
	plt.queue = plt.queue[1:]
	return ev, true
}

// CreateSurface implements the backend.Platform interface.
func (plt *Platform) CreateSurface(w, h int) (backend.Surface, error) {
	if err := plt.faults.check(OpCreateSurface); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("software: surface size must be positive (%dx%d)", w, h)
	}
	return newSurface(w, h, plt.SurfacePadding), nil
}

// Delay implements the backend.Platform interface.
func (plt *Platform) Delay(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Ticks implements the backend.Platform interface.
func (plt *Platform) Ticks() uint32 {
	if !plt.initialised {
		return 0
	}
	return uint32(time.Since(plt.start).Milliseconds())
}

// Quit implements the backend.Platform interface.
func (plt *Platform) Quit() {
	plt.initialised = false
	plt.window = nil
	plt.queue = nil
	plt.filter = nil
}
