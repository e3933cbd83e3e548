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

	"github.com/jetsetilly/s2d/prefs"
)

// Preferences for the SDL backend.
type Preferences struct {
	// use a hardware accelerated renderer
	Accelerated prefs.Bool

	// synchronise presentation with the display refresh
	VSync prefs.Bool

	// scale quality. one of "nearest", "linear" or "best"
	Quality prefs.String
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.Quality.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "nearest", "linear", "best":
			return nil
		}
		return fmt.Errorf("unknown scale quality (%v)", v)
	})

	if err := p.Accelerated.Set(true); err != nil {
		return nil, err
	}
	if err := p.VSync.Set(true); err != nil {
		return nil, err
	}
	if err := p.Quality.Set("nearest"); err != nil {
		return nil, err
	}

	for _, o := range []struct {
		key string
		p   prefs.Pref
	}{
		{"sdl.accelerated", &p.Accelerated},
		{"sdl.vsync", &p.VSync},
		{"sdl.quality", &p.Quality},
	} {
		if _, err := prefs.Override(o.key, o.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// rendererFlags returns the flags for sdl.CreateRenderer().
func (p *Preferences) rendererFlags() uint32 {
	var flags uint32
	if p.Accelerated.Get().(bool) {
		flags |= uint32(rendererAccelerated)
	} else {
		flags |= uint32(rendererSoftware)
	}
	if p.VSync.Get().(bool) {
		flags |= uint32(rendererVSync)
	}
	return flags
}
