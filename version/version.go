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

// Package version reports the application name and the version of the
// running binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "s2d"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/s2d/version.number=v0.1.0"
var number string

// Info describes the build of the running binary.
type Info struct {
	// Version is the release number. Manual builds are "unreleased" and builds
	// without vcs information (eg. "go run .") are "local".
	Version string

	// Revision is the vcs revision, suffixed with "+dirty" if the working tree
	// had uncommitted changes.
	Revision string

	// Release is true if Version is a release number.
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

var info Info

// Version returns the build information for the running binary.
func Version() Info {
	return info
}

func init() {
	info = readBuild(number)
}

func readBuild(number string) Info {
	var vcs bool
	var revision string
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	var i Info

	if revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = revision + "+dirty"
	} else {
		i.Revision = revision
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
