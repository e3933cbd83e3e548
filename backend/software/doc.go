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

// Package software is a backend that renders into an image.RGBA held in
// memory. It needs no display and is used for headless operation and for
// testing the session.
//
// Native events are synthesised with the Push() function. The event filter
// installed with SetEventFilter() is applied at the time of the push, the same
// as for a real event source.
//
// The Fail() function of Platform and Renderer makes the named operation fail
// until Recover() is called. This stands in for the native backend rejecting a
// call.
//
// Rendering follows SDL's default behaviour. Primitives overwrite the
// framebuffer without blending. Drawables are blended over the framebuffer and
// scaled with nearest neighbour sampling. A render scale maps every logical
// pixel to a block of framebuffer pixels.
package software
