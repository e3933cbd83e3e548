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

// Package sdl is the backend for SDL2, using go-sdl2. Images are loaded with
// SDL_image and text is rendered with SDL_ttf.
//
// SDL requires that all calls are made from the main thread of the program.
// The main() function of a program using this backend should lock the main
// goroutine to the OS thread with runtime.LockOSThread() before creating the
// session.
//
// The renderer is configured by the "sdl.accelerated", "sdl.vsync" and
// "sdl.quality" preferences.
package sdl
