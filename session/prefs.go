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

package session

import (
	"fmt"

	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/prefs"
)

// Preferences for the session.
type Preferences struct {
	// whether the session adds entries to the log
	Log prefs.Bool

	// render scale applied when the window is created
	Scale prefs.Float
}

// newPreferences sets defaults and collects any command line values.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	if err := p.Log.Set(true); err != nil {
		return nil, err
	}
	if err := p.Scale.Set(1.0); err != nil {
		return nil, err
	}
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("scale must be positive")
		}
		return nil
	})

	if _, err := prefs.Override("session.log", &p.Log); err != nil {
		return nil, err
	}
	if _, err := prefs.Override("session.scale", &p.Scale); err != nil {
		return nil, err
	}

	return p, nil
}

// AllowLogging implements the logger.Permission interface.
func (sess *Session) AllowLogging() bool {
	return sess.Prefs.Log.Get().(bool)
}

func (sess *Session) log(detail string, args ...any) {
	logger.Logf(sess, "session", detail, args...)
}
