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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and DemandEquality() functions are generic and will
// accept any comparable type. The Demand*() variants end the test immediately
// on failure and should be used when the remainder of the test depends on the
// condition. For example, checking that a texture was created before testing
// its pixels.
//
// ExpectSuccess() and ExpectFailure() test for "success" or "failure" under
// generic conditions. The documentation for those functions describe the
// currently supported types.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is consistent with how errors usually work (nil to indicate
// no error).
//
// The CompareWriter type is an implementation of the io.Writer interface and
// should be used to capture output. The CompareWriter.Compare() function can
// then be used to test for equality.
package test
