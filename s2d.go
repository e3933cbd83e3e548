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

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/backend/sdl"
	"github.com/jetsetilly/s2d/backend/terminal"
	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/modalflag"
	"github.com/jetsetilly/s2d/prefs"
	"github.com/jetsetilly/s2d/resources"
	"github.com/jetsetilly/s2d/samples/fractal"
	"github.com/jetsetilly/s2d/samples/snake"
	"github.com/jetsetilly/s2d/session"
	"github.com/jetsetilly/s2d/statsview"
	"github.com/jetsetilly/s2d/version"
)

// the session must be used from the thread that created the window. SDL
// further requires that thread to be the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("SNAKE", "FRACTAL", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SNAKE":
		err = playSnake(md)

	case "FRACTAL":
		err = drawFractal(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// common flags for modes that open a window
type common struct {
	backend   *string
	log       *bool
	prefs     *string
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		backend: md.AddString("backend", "SDL", "backend to use: SDL, TERMINAL"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:   md.AddString("prefs", "", "preferences for this session. eg. \"session.scale::2; sdl.vsync::false\""),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// newPlatform returns the backend with the name. The name is not case
// sensitive.
func newPlatform(name string) (backend.Platform, error) {
	switch strings.ToUpper(name) {
	case "SDL":
		return sdl.NewPlatform(), nil
	case "TERMINAL":
		return terminal.NewPlatform(nil), nil
	}
	return nil, fmt.Errorf("unknown backend (%s)", name)
}

// start the session with the options in the common flags
func (c common) start() (*session.Session, error) {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch()
	}

	plt, err := newPlatform(*c.backend)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*c.prefs)

	sess, err := session.Initialise(plt)
	if err != nil {
		prefs.PopCommandLineStack()
		return nil, err
	}

	return sess, nil
}

// end the session. any preferences from the command line that were not used
// are logged
func (c common) end(sess *session.Session) {
	sess.Destroy()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "s2d", "unused preferences: %s", unused)
	}
}

func playSnake(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	apple := md.AddString("apple", resources.FindOr("snake", "apple.png"), "image file for the apple")
	font := md.AddString("font", resources.FindOr("snake", "font.ttf"), "font file for the score (TTF or OTF)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sess, err := c.start()
	if err != nil {
		return err
	}
	defer c.end(sess)

	return snake.Run(sess, snake.Options{
		ApplePath: *apple,
		FontPath:  *font,
		Seed:      uint64(time.Now().UnixNano()),
	})
}

func drawFractal(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sess, err := c.start()
	if err != nil {
		return err
	}
	defer c.end(sess)

	return fractal.Run(context.Background(), sess)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v := version.Version()
	fmt.Println(v.String())
	if *revision && v.Revision != "" {
		fmt.Println(v.Revision)
	}

	return nil
}
