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

// Package events translates native backend events into typed keyboard and
// mouse events and dispatches them to at most one handler per class.
//
// Translation happens in two stages. Accept() is the coarse filter that is
// installed in the backend. It lets through quit, keyboard and mouse events
// and drops everything else before it is queued. The Handlers type then
// translates each dequeued event and calls the handler for its class.
//
// A class is enabled when a handler has been added for it. There is no way of
// disabling a class once it has been enabled, other than replacing the
// handler with another one.
package events
