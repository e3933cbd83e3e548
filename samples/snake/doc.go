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

// Package snake is a sample program for the session package. The snake is
// steered with the arrow keys and grows every time it eats an apple. The game
// ends when the snake leaves the window or runs into itself.
//
// The apple is drawn with a texture loaded from an image file. If no image
// is available a red square is drawn instead. The score and the game over
// message are rendered with a font, if one is given.
package snake
