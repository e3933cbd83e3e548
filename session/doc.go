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

// Package session owns the window, the render target and the draw state, and
// provides the drawing, texture and event functions that the samples are
// written against.
//
// Only one Session may exist at a time. It is created with Initialise(),
// which takes the backend to drive, and is usable for drawing once
// CreateWindow() has succeeded:
//
//	sess, err := session.Initialise(software.NewPlatform())
//	if err != nil {
//		return err
//	}
//	err = sess.CreateWindow("example", 640, 480)
//
// A frame consists of draining the event queue with Dequeue(), setting the
// draw colour, clearing the screen, drawing and presenting:
//
//	for sess.Dequeue(game) {
//	}
//	sess.SetDrawColor(colors.Black)
//	sess.Clear()
//	sess.FillRectangle(geometry.NewRectangle(10, 10, 16, 16))
//	sess.Present()
//
// A quit event is not returned to the caller. The built-in quit handler tears
// down the session and exits the process. Destroy() performs the same
// teardown without exiting.
//
// All functions must be called from the goroutine that created the session.
// The check is only made when the program is built with the "assertions"
// build tag.
//
// Calls that need a window, made before CreateWindow() has succeeded or after
// the session has been destroyed, return an error with the code
// errors.Unspecified.
package session
