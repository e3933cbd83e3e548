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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// group is a single entry on the command line stack. it maps preference keys
// to the unparsed string given on the command line.
type group map[string]string

// the command line stack is guarded because preferences may be created on a
// goroutine other than the one that pushed the group.
var stack struct {
	crit   sync.Mutex
	groups []group
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	stack.crit.Lock()
	defer stack.crit.Unlock()
	return len(stack.groups)
}

// PushCommandLineStack parses a string of "key::value" pairs, separated by
// semi-colons, and adds it as a new group. Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			g[k] = strings.TrimSpace(v)
		}
	}

	stack.crit.Lock()
	defer stack.crit.Unlock()
	stack.groups = append(stack.groups, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the preferences in the group that were never
// collected, in the same form as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	stack.crit.Lock()
	defer stack.crit.Unlock()

	if len(stack.groups) == 0 {
		return ""
	}

	g := stack.groups[len(stack.groups)-1]
	stack.groups = stack.groups[:len(stack.groups)-1]

	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, g[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// The value is deleted from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	stack.crit.Lock()
	defer stack.crit.Unlock()

	if len(stack.groups) == 0 {
		return false, nil
	}

	g := stack.groups[len(stack.groups)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}
	return false, nil
}

// Override sets the preference to the command line value for key, if there is
// one. Returns false if there was no value for the key.
func Override(key string, p Pref) (bool, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return false, nil
	}
	if err := p.Set(v); err != nil {
		return true, fmt.Errorf("prefs: %s: %w", key, err)
	}
	return true, nil
}
