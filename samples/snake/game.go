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

package snake

import (
	"math/rand/v2"

	"github.com/jetsetilly/s2d/geometry"
)

// Dimensions of the play area.
const (
	WindowWidth  = 768
	WindowHeight = 768
	TileSize     = 16
)

const (
	startX = 256
	startY = 256

	// base value of an apple. see Game.EatApple()
	baseScore = 4
)

// Heading is the direction the snake is moving in. The values are in the
// same order as the arrow keys in the events package.
type Heading int

// List of valid Heading values.
const (
	Right Heading = iota
	Left
	Down
	Up
)

func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "unknown heading"
}

// opposite returns true if the two headings point in opposite directions.
func (h Heading) opposite(o Heading) bool {
	return h^1 == o
}

// delta is the movement of one step in the heading.
func (h Heading) delta() geometry.Vector {
	switch h {
	case Right:
		return geometry.Vector{X: TileSize}
	case Left:
		return geometry.Vector{X: -TileSize}
	case Down:
		return geometry.Vector{Y: TileSize}
	case Up:
		return geometry.Vector{Y: -TileSize}
	}
	return geometry.Vector{}
}

// Game is the state of the snake and the apple.
type Game struct {
	// position of each tile of the snake. the head is the first entry
	Tiles []geometry.Vector

	Heading Heading
	Apple   geometry.Rectangle
	Score   int
	Over    bool

	rnd *rand.Rand
}

// NewGame is the preferred method of initialisation for the Game type. The
// apple is given the size of the texture used to draw it.
func NewGame(rnd *rand.Rand, appleW, appleH int) *Game {
	g := &Game{
		Tiles:   []geometry.Vector{{X: startX, Y: startY}},
		Heading: Heading(rnd.IntN(4)),
		Apple:   geometry.Rectangle{W: appleW, H: appleH},
		rnd:     rnd,
	}
	g.placeApple()
	return g
}

// Head returns the area covered by the head of the snake.
func (g *Game) Head() geometry.Rectangle {
	return geometry.Rectangle{Origin: g.Tiles[0], W: TileSize, H: TileSize}
}

// Steer the snake. The snake can not turn back on itself so a heading
// opposite to the current heading is ignored.
func (g *Game) Steer(h Heading) {
	if g.Over || h.opposite(g.Heading) {
		return
	}
	g.Heading = h
}

// Step moves the snake one tile in the current heading. The tail moves into
// the position vacated by the head. Returns true if the game is over.
func (g *Game) Step() bool {
	if g.Over {
		return true
	}

	head := g.Tiles[0].Add(g.Heading.delta())
	copy(g.Tiles[1:], g.Tiles[:len(g.Tiles)-1])
	g.Tiles[0] = head

	g.Over = g.collision()
	return g.Over
}

// collision returns true if any part of the snake is outside the window or
// if the head is on the same tile as another part of the snake.
func (g *Game) collision() bool {
	head := g.Tiles[0]
	for i, t := range g.Tiles {
		if t.X < 0 || t.X >= WindowWidth || t.Y < 0 || t.Y >= WindowHeight {
			return true
		}
		if i > 0 && t == head {
			return true
		}
	}
	return false
}

// EatApple checks if the head of the snake is touching the apple. If it is
// the score increases, the apple is moved and the snake grows by one tile.
// The value of an apple increases with the length of the snake.
func (g *Game) EatApple() bool {
	if g.Over || !g.Head().Overlaps(g.Apple) {
		return false
	}

	n := len(g.Tiles)
	g.Score += baseScore * n * (1 + n/10)
	g.placeApple()
	g.grow()

	return true
}

// grow adds a tile to the end of the snake. The new tile continues the line
// of the last two tiles or, if the snake is a single tile, is placed behind
// the head.
func (g *Game) grow() {
	n := len(g.Tiles)
	tail := g.Tiles[n-1]

	var d geometry.Vector
	if n == 1 {
		d = g.Heading.delta()
		d = geometry.Vector{X: -d.X, Y: -d.Y}
	} else {
		prev := g.Tiles[n-2]
		d = geometry.Vector{X: tail.X - prev.X, Y: tail.Y - prev.Y}
	}

	g.Tiles = append(g.Tiles, tail.Add(d))
}

func (g *Game) placeApple() {
	g.Apple.Origin.X = g.rnd.IntN(WindowWidth - g.Apple.W)
	g.Apple.Origin.Y = g.rnd.IntN(WindowHeight - g.Apple.H)
}
