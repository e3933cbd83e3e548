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

// Package assert contains checks that are only compiled into the program when
// the "assertions" build tag is present. Without the build tag the checks are
// empty functions and cost nothing.
//
// The graphics backends must be driven from the goroutine that created them.
// The session records the goroutine that initialised it with SetMainThread()
// and each entry point calls CheckMainThread().
package assert
