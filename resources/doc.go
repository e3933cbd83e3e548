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

// Package resources finds the files used by the sample programs, such as
// images and fonts.
//
// The Find() function looks for the file in the resource directory. The
// resource directory depends on how the binary was built.
//
// For builds with the "release" build tag, the resource directory is in the
// user's configuration directory. On modern Linux systems the full path would
// be something like:
//
//	/home/user/.config/s2d/
//
// For non-"release" builds, the resource directory is in the current working
// directory:
//
//	.s2d
//
// The package never creates files or directories.
package resources
