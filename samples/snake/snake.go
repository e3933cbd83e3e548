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
	"fmt"
	"math/rand/v2"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/events"
	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/session"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timings in milliseconds.
const (
	MovementInterval = 128
	RerenderInterval = 16

	// events continue to be processed for this long after the game has ended
	GameOverPeriod = 4000
)

const (
	background colors.Code = 0xffc0c0c0
	snakeColor             = colors.Green
	appleColor             = colors.Red

	fontSize    = 20
	bannerText  = "GAME OVER!"
	bannerScale = 4

	// length of the banner animation in seconds
	bannerDuration = 1.0
)

var (
	scoreColor  = colors.Blue.Color()
	bannerColor = colors.Color{R: 100, G: 255, A: 255}
)

// Options for Run().
type Options struct {
	// path to the image file for the apple. may be empty
	ApplePath string

	// path to the font for the score and game over message. may be empty
	FontPath string

	// seed for the random number generator
	Seed uint64
}

// Run the game. The session must be initialised but the window must not have
// been created. Run returns when the game is over and the game over period
// has elapsed.
func Run(sess *session.Session, opts Options) error {
	err := sess.CreateWindow("Snake", WindowWidth, WindowHeight)
	if err != nil {
		return err
	}
	sess.AddKeyboardEventHandler(keyboard)

	v := newView(sess, opts)
	defer v.destroy()

	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5eed))
	aw, ah := v.appleSize()
	g := NewGame(rnd, aw, ah)
	logger.Logf(logger.Allow, "snake", "starting %s", g.Heading)

	last := sess.Ticks()
	for !g.Over {
		sess.Dequeue(g)

		now := sess.Ticks()
		if now-last >= MovementInterval {
			if g.Step() {
				logger.Logf(logger.Allow, "snake", "game over: score %d, length %d", g.Score, len(g.Tiles))
			}
			last = now
		}

		if g.EatApple() {
			logger.Logf(logger.Allow, "snake", "apple eaten: score %d", g.Score)
		}

		sess.Delay(RerenderInterval)
		if err := v.draw(g); err != nil {
			return err
		}
	}

	start := sess.Ticks()
	last = start
	for sess.Ticks()-start < GameOverPeriod {
		for sess.Dequeue(g) {
		}

		now := sess.Ticks()
		v.animate(float32(now-last) / 1000)
		last = now

		sess.Delay(RerenderInterval)
		if err := v.draw(g); err != nil {
			return err
		}
	}

	return nil
}

// keyboard is the keyboard handler. The data value is the *Game.
func keyboard(ev *events.Keyboard, data any) {
	g, ok := data.(*Game)
	if !ok || ev.State != events.Pressed {
		return
	}
	d := int(ev.Keycode) - int(events.KeyArrowRight)
	if d >= 0 && d <= int(Up) {
		g.Steer(Heading(d))
	}
}

// view holds the textures used to draw the game.
type view struct {
	sess *session.Session
	opts Options

	// apple is nil if the image could not be loaded
	apple *session.Texture

	// score texture and the score it shows
	score      *session.Texture
	scoreValue int

	// banner is nil if there is no font
	banner *session.Texture
	tween  *gween.Tween
	scale  float32
}

func newView(sess *session.Session, opts Options) *view {
	v := &view{
		sess:       sess,
		opts:       opts,
		scoreValue: -1,
		tween:      gween.New(0, bannerScale, bannerDuration, ease.OutBounce),
	}

	if opts.ApplePath != "" {
		var err error
		v.apple, err = sess.CreateTexture(opts.ApplePath)
		if err != nil {
			logger.Logf(logger.Allow, "snake", "apple texture: %v", err)
		}
	}

	if opts.FontPath != "" {
		var err error
		v.banner, err = sess.CreateUTF8Texture(backend.TextSpec{
			FontPath: opts.FontPath,
			Size:     fontSize,
			Color:    bannerColor,
			Text:     bannerText,
		})
		if err != nil {
			logger.Logf(logger.Allow, "snake", "game over texture: %v", err)
		}
	}

	return v
}

// appleSize returns the size of the apple texture, or the size of a tile if
// there is no texture.
func (v *view) appleSize() (int, int) {
	if v.apple != nil {
		return v.apple.Width, v.apple.Height
	}
	return TileSize, TileSize
}

// animate advances the game over banner by dt seconds.
func (v *view) animate(dt float32) {
	var done bool
	v.scale, done = v.tween.Update(dt)
	if done {
		v.scale = bannerScale
	}
}

// updateScore recreates the score texture if the score has changed.
func (v *view) updateScore(score int) error {
	if v.opts.FontPath == "" || score == v.scoreValue {
		return nil
	}

	t, err := v.sess.CreateUTF8Texture(backend.TextSpec{
		FontPath: v.opts.FontPath,
		Size:     fontSize,
		Color:    scoreColor,
		Text:     fmt.Sprintf("SCORE: %d", score),
	})
	if err != nil {
		return err
	}

	v.sess.DestroyTexture(v.score)
	v.score = t
	v.scoreValue = score

	return nil
}

// bannerRect is the area of the game over banner at the current scale. The
// banner grows from the centre of its final position.
func (v *view) bannerRect() geometry.Rectangle {
	var w, h int
	if v.banner != nil {
		w, h = v.banner.Width, v.banner.Height
	} else {
		w, h = WindowWidth/8, TileSize
	}

	cx := WindowWidth/4 + w*bannerScale/2
	cy := WindowHeight/4 + h*bannerScale/2
	sw := int(float32(w) * v.scale)
	sh := int(float32(h) * v.scale)

	return geometry.NewRectangle(cx-sw/2, cy-sh/2, sw, sh)
}

func (v *view) draw(g *Game) error {
	if err := v.sess.SetDrawColor(background); err != nil {
		return err
	}
	if err := v.sess.Clear(); err != nil {
		return err
	}

	if err := v.sess.SetDrawColor(snakeColor); err != nil {
		return err
	}
	for _, t := range g.Tiles {
		err := v.sess.DrawFillRectangle(geometry.Rectangle{Origin: t, W: TileSize, H: TileSize})
		if err != nil {
			return err
		}
	}

	if v.apple != nil {
		if err := v.sess.DrawTexture(v.apple, g.Apple); err != nil {
			return err
		}
	} else {
		if err := v.sess.SetDrawColor(appleColor); err != nil {
			return err
		}
		if err := v.sess.FillRectangle(g.Apple); err != nil {
			return err
		}
	}

	if err := v.updateScore(g.Score); err != nil {
		return err
	}
	if v.score != nil {
		if err := v.sess.DrawTextureNative(v.score, geometry.Vector{X: 8, Y: 8}); err != nil {
			return err
		}
	}

	if g.Over {
		r := v.bannerRect()
		if !r.Empty() {
			if v.banner != nil {
				if err := v.sess.DrawTexture(v.banner, r); err != nil {
					return err
				}
			} else {
				if err := v.sess.SetDrawColor(bannerColor.Code()); err != nil {
					return err
				}
				if err := v.sess.FillRectangle(r); err != nil {
					return err
				}
			}
		}
	}

	return v.sess.Present()
}

func (v *view) destroy() {
	v.sess.DestroyTexture(v.apple)
	v.sess.DestroyTexture(v.score)
	v.sess.DestroyTexture(v.banner)
}
