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

// Package terminal is a backend that presents the framebuffer of the software
// backend in a terminal, using tcell.
//
// Every terminal cell shows two vertically adjacent pixels with the upper half
// block character. The top pixel is the foreground colour of the cell and the
// bottom pixel is the background colour. The framebuffer is sampled to fit the
// terminal.
//
// Terminals report key presses but not key releases, so only key down events
// are produced. Ctrl-C produces a quit event. Mouse reporting is controlled by
// the "terminal.mouse" preference.
package terminal
