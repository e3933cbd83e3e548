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
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/s2d/backend/software"
	"github.com/jetsetilly/s2d/events"
	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/session"
	"github.com/jetsetilly/s2d/test"
)

func newGame(h Heading) *Game {
	g := NewGame(rand.New(rand.NewPCG(1, 2)), TileSize, TileSize)
	g.Heading = h
	return g
}

func TestHeading(t *testing.T) {
	test.ExpectSuccess(t, Right.opposite(Left))
	test.ExpectSuccess(t, Left.opposite(Right))
	test.ExpectSuccess(t, Up.opposite(Down))
	test.ExpectSuccess(t, Down.opposite(Up))
	test.ExpectFailure(t, Right.opposite(Up))
	test.ExpectFailure(t, Down.opposite(Down))

	g := newGame(Right)
	g.Steer(Left)
	test.ExpectEquality(t, g.Heading, Right)
	g.Steer(Up)
	test.ExpectEquality(t, g.Heading, Up)
	g.Steer(Down)
	test.ExpectEquality(t, g.Heading, Up)
}

func TestKeyboard(t *testing.T) {
	g := newGame(Right)

	keyboard(&events.Keyboard{State: events.Pressed, Keycode: events.KeyArrowDown}, g)
	test.ExpectEquality(t, g.Heading, Down)

	// releases and other keys are ignored
	keyboard(&events.Keyboard{State: events.Released, Keycode: events.KeyArrowLeft}, g)
	test.ExpectEquality(t, g.Heading, Down)
	keyboard(&events.Keyboard{State: events.Pressed, Keycode: events.KeyA}, g)
	test.ExpectEquality(t, g.Heading, Down)

	// data that is not a game is ignored
	keyboard(&events.Keyboard{State: events.Pressed, Keycode: events.KeyArrowLeft}, nil)
	test.ExpectEquality(t, g.Heading, Down)
}

func TestStep(t *testing.T) {
	g := newGame(Right)
	test.ExpectFailure(t, g.Step())
	test.ExpectEquality(t, g.Tiles[0], geometry.Vector{X: startX + TileSize, Y: startY})

	g.Steer(Down)
	test.ExpectFailure(t, g.Step())
	test.ExpectEquality(t, g.Tiles[0], geometry.Vector{X: startX + TileSize, Y: startY + TileSize})

	// leaving the window ends the game
	g.Tiles[0] = geometry.Vector{X: 0, Y: WindowHeight - TileSize}
	test.ExpectSuccess(t, g.Step())
	test.ExpectSuccess(t, g.Over)

	// steering is ignored once the game is over
	g.Steer(Right)
	test.ExpectEquality(t, g.Heading, Down)
}

func TestSelfCollision(t *testing.T) {
	g := newGame(Up)
	g.Tiles = []geometry.Vector{
		{X: 32, Y: 32},
		{X: 48, Y: 32},
		{X: 48, Y: 16},
		{X: 32, Y: 16},
		{X: 16, Y: 16},
	}

	// the head moves up to 32,16 which is where the last tile moves to
	test.ExpectSuccess(t, g.Step())
}

func TestEatApple(t *testing.T) {
	g := newGame(Right)
	g.Apple.Origin = geometry.Vector{}
	test.ExpectFailure(t, g.EatApple())

	g.Apple.Origin = g.Tiles[0].Add(geometry.Vector{X: 8, Y: 8})
	test.ExpectSuccess(t, g.EatApple())
	test.ExpectEquality(t, g.Score, baseScore)
	test.ExpectEquality(t, len(g.Tiles), 2)
	test.ExpectEquality(t, g.Tiles[1], geometry.Vector{X: startX - TileSize, Y: startY})

	// apple has moved to somewhere inside the window
	test.ExpectSuccess(t, g.Apple.Origin.X >= 0 && g.Apple.Origin.X < WindowWidth-g.Apple.W)
	test.ExpectSuccess(t, g.Apple.Origin.Y >= 0 && g.Apple.Origin.Y < WindowHeight-g.Apple.H)

	// the new tile continues the line of the snake
	g.Apple.Origin = g.Tiles[0]
	test.ExpectSuccess(t, g.EatApple())
	test.ExpectEquality(t, g.Score, baseScore+baseScore*2)
	test.ExpectEquality(t, g.Tiles[2], geometry.Vector{X: startX - 2*TileSize, Y: startY})

	// apples are worth more for longer snakes
	for len(g.Tiles) < 10 {
		g.grow()
	}
	score := g.Score
	g.Apple.Origin = g.Tiles[0]
	test.ExpectSuccess(t, g.EatApple())
	test.ExpectEquality(t, g.Score-score, baseScore*10*2)
}

func TestDraw(t *testing.T) {
	plt := software.NewPlatform()
	sess, err := session.Initialise(plt)
	test.DemandSuccess(t, err)
	t.Cleanup(sess.Destroy)

	test.DemandSuccess(t, sess.CreateWindow("Snake", WindowWidth, WindowHeight))

	v := newView(sess, Options{})
	defer v.destroy()

	w, h := v.appleSize()
	test.ExpectEquality(t, w, TileSize)
	test.ExpectEquality(t, h, TileSize)

	g := newGame(Right)
	g.Apple.Origin = geometry.Vector{X: 600, Y: 600}
	test.DemandSuccess(t, v.draw(g))

	screen := plt.Window().Renderer().Screen()
	grey := color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	red := color.RGBA{R: 0xff, A: 0xff}

	test.ExpectEquality(t, screen.RGBAAt(0, 0), grey)
	test.ExpectEquality(t, screen.RGBAAt(startX+8, startY+8), green)
	test.ExpectEquality(t, screen.RGBAAt(608, 608), red)

	// no banner before the game is over
	r := v.bannerRect()
	test.ExpectSuccess(t, r.Empty())

	g.Over = true
	v.animate(bannerDuration)
	r = v.bannerRect()
	test.ExpectEquality(t, r.W, WindowWidth/8*bannerScale)
	test.DemandSuccess(t, v.draw(g))

	screen = plt.Window().Renderer().Screen()
	c := r.Origin.Add(geometry.Vector{X: r.W / 2, Y: r.H / 2})
	test.ExpectEquality(t, screen.RGBAAt(c.X, c.Y), color.RGBA{R: 100, G: 255, A: 255})
}
