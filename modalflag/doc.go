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

// Package modalflag is a wrapper for the flag package in the standard library.
// It adds the idea of modes. A mode is a word that selects a group of flags,
// for example:
//
//	s2d -backend TERMINAL snake -speed 64
//
// Here "snake" is a sub-mode of the top level and "-speed" is only meaningful
// once the SNAKE mode has been selected. The first sub-mode added is the
// default and is selected when the next argument is not a recognised mode.
//
// Idiomatic usage:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SNAKE", "FRACTAL")
//	backend := md.AddString("backend", "SDL", "graphics backend")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//	switch md.Mode() {
//	case "SNAKE":
//		md.NewMode()
//		...
//	}
//
// Sub-mode comparisons are case insensitive.
package modalflag
