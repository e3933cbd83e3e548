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

// Package prefs holds the typed preference values used to configure the
// session and the backends. Values are atomic and may be read from any
// goroutine.
//
// There is no preferences file. Values start at their defaults and may be
// overridden by a group of "key::value" pairs pushed onto the command line
// stack. For example:
//
//	prefs.PushCommandLineStack("sdl.vsync::false; session.scale::2.0")
//	defer prefs.PopCommandLineStack()
//
// The owner of a preference collects any override for its key with the
// Override() function when it is created.
package prefs
