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

//go:build !assertions

package assert

// SetMainThread records the calling goroutine as the main thread.
func SetMainThread() {}

// CheckMainThread panics if the calling goroutine is not the goroutine that
// most recently called SetMainThread().
func CheckMainThread() {}
