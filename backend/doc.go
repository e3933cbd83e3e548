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

// Package backend defines the interfaces that a native windowing and graphics
// system must satisfy in order to be driven by a session.
//
// Three implementations are provided. The sdl package is the production
// backend and requires a display. The software package renders to an
// image.RGBA in memory and is used for headless operation and testing. The
// terminal package presents the software framebuffer in a terminal.
//
// None of the interfaces are safe for concurrent use. All calls must be made
// from the goroutine that called Platform.Init().
package backend
