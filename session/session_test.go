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

package session

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/backend/software"
	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/errors"
	"github.com/jetsetilly/s2d/events"
	"github.com/jetsetilly/s2d/geometry"
	"github.com/jetsetilly/s2d/logger"
	"github.com/jetsetilly/s2d/prefs"
	"github.com/jetsetilly/s2d/test"
	"golang.org/x/image/font/gofont/goregular"
)

var red = color.RGBA{R: 0xff, A: 0xff}
var black = color.RGBA{A: 0xff}

// exitCode records the most recent call to the session's exit function.
var exitCode = -1

func initialise(t *testing.T) (*Session, *software.Platform) {
	t.Helper()
	plt := software.NewPlatform()
	sess, err := Initialise(plt)
	test.DemandSuccess(t, err)
	sess.exit = func(code int) {
		exitCode = code
	}
	t.Cleanup(sess.Destroy)
	return sess, plt
}

func newSession(t *testing.T, w, h int) (*Session, *software.Platform, *software.Renderer) {
	t.Helper()
	sess, plt := initialise(t)
	test.DemandSuccess(t, sess.CreateWindow("T", w, h))
	return sess, plt, plt.Window().Renderer()
}

func TestSingleton(t *testing.T) {
	sess, _ := initialise(t)
	test.ExpectEquality(t, sess.State(), Initialised)

	_, err := Initialise(software.NewPlatform())
	test.ExpectEquality(t, errors.Code(err), errors.Initialise)

	// the claim is released by Destroy()
	sess.Destroy()
	test.ExpectEquality(t, sess.State(), Quit)

	other, err := Initialise(software.NewPlatform())
	test.DemandSuccess(t, err)
	other.Destroy()
}

func TestInitialiseFailure(t *testing.T) {
	plt := software.NewPlatform()
	plt.Fail(software.OpInit)
	_, err := Initialise(plt)
	test.ExpectEquality(t, errors.Code(err), errors.Initialise)

	// failed initialisation does not hold the claim
	plt.Recover(software.OpInit)
	sess, err := Initialise(plt)
	test.DemandSuccess(t, err)
	sess.Destroy()
}

func TestScenario(t *testing.T) {
	sess, _ := initialise(t)
	test.ExpectSuccess(t, sess.CreateWindow("T", 100, 100))
	test.ExpectEquality(t, sess.State(), WindowReady)

	ds := sess.DrawState()
	test.ExpectEquality(t, ds.Width, 100)
	test.ExpectEquality(t, ds.Height, 100)
	test.ExpectEquality(t, ds.Color, colors.Default)

	test.ExpectSuccess(t, sess.SetDrawColor(0xff0000ff))
	test.ExpectEquality(t, sess.DrawState().Color, 0xff0000ff)
	test.ExpectSuccess(t, sess.Clear())
	test.ExpectSuccess(t, sess.Present())
	test.ExpectEquality(t, sess.State(), Running)

	rnd := sess.rnd.(*software.Renderer)
	test.ExpectEquality(t, rnd.Screen().RGBAAt(50, 50), red)

	// window creation presents one frame and the call to Present() another
	test.ExpectEquality(t, rnd.Frames(), 2)
}

func TestNotReady(t *testing.T) {
	sess, plt := initialise(t)

	err := sess.DrawPoint(geometry.Vector{})
	test.ExpectEquality(t, errors.Code(err), errors.Unspecified)
	test.ExpectEquality(t, errors.Code(sess.Clear()), errors.Unspecified)
	test.ExpectEquality(t, errors.Code(sess.Present()), errors.Unspecified)
	_, err = sess.CreateTexture("missing.png")
	test.ExpectEquality(t, errors.Code(err), errors.Unspecified)

	plt.Push(backend.Event{Type: backend.EventKeyDown})
	test.ExpectFailure(t, sess.Dequeue(nil))

	test.DemandSuccess(t, sess.CreateWindow("T", 10, 10))
	test.ExpectSuccess(t, sess.DrawPoint(geometry.Vector{}))

	// a second window is not allowed
	test.ExpectEquality(t, errors.Code(sess.CreateWindow("T", 10, 10)), errors.CreateWindow)

	sess.Destroy()
	test.ExpectEquality(t, errors.Code(sess.DrawPoint(geometry.Vector{})), errors.Unspecified)
	test.ExpectFailure(t, sess.Dequeue(nil))
}

func TestCreateWindowFailure(t *testing.T) {
	sess, plt := initialise(t)

	plt.Fail(software.OpCreateWindow)
	test.ExpectEquality(t, errors.Code(sess.CreateWindow("T", 10, 10)), errors.CreateWindow)
	test.ExpectEquality(t, sess.State(), Initialised)
	plt.Recover(software.OpCreateWindow)

	plt.Fail(software.OpCreateRenderer)
	test.ExpectEquality(t, errors.Code(sess.CreateWindow("T", 10, 10)), errors.CreateRenderer)
	test.ExpectEquality(t, sess.State(), Initialised)

	// window remains allocated but the session can not draw
	test.ExpectSuccess(t, plt.Window() != nil)
	test.ExpectEquality(t, errors.Code(sess.Clear()), errors.Unspecified)

	// a second attempt reuses the window
	plt.Recover(software.OpCreateRenderer)
	test.ExpectSuccess(t, sess.CreateWindow("T", 10, 10))
	test.ExpectEquality(t, sess.State(), WindowReady)
}

func TestSetDrawColor(t *testing.T) {
	sess, _, rnd := newSession(t, 10, 10)

	test.ExpectSuccess(t, sess.SetDrawColor(colors.Yellow))
	test.ExpectSuccess(t, sess.SetDrawColor(colors.Yellow))
	test.ExpectEquality(t, sess.DrawState().Color, colors.Yellow)

	// draw state is unchanged if the backend rejects the colour
	rnd.Fail(software.OpSetDrawColor)
	test.ExpectEquality(t, errors.Code(sess.SetDrawColor(colors.Blue)), errors.SetDrawColor)
	test.ExpectEquality(t, sess.DrawState().Color, colors.Yellow)
}

func TestRenderScale(t *testing.T) {
	prefs.PushCommandLineStack("session.scale::2")
	defer prefs.PopCommandLineStack()

	sess, _, rnd := newSession(t, 10, 10)
	x, y := rnd.Scale()
	test.ExpectEquality(t, x, 2)
	test.ExpectEquality(t, y, 2)

	// scale does not change the draw state
	test.ExpectEquality(t, sess.DrawState().Width, 10)

	test.ExpectSuccess(t, sess.SetRenderScale(1, 3))
	x, y = rnd.Scale()
	test.ExpectEquality(t, x, 1)
	test.ExpectEquality(t, y, 3)

	rnd.Fail(software.OpSetScale)
	test.ExpectEquality(t, errors.Code(sess.SetRenderScale(1, 1)), errors.SetRenderScale)
}

func TestPrimitiveErrors(t *testing.T) {
	sess, _, rnd := newSession(t, 10, 10)

	rnd.Fail(software.OpDrawPoint)
	test.ExpectEquality(t, errors.Code(sess.DrawPoint(geometry.Vector{})), errors.DrawCoord)
	test.ExpectEquality(t, errors.Code(sess.DrawPointF(geometry.VectorF{})), errors.DrawCoord)
	test.ExpectEquality(t, errors.Code(sess.DrawPoints(nil)), errors.DrawCoord)
	test.ExpectEquality(t, errors.Code(sess.DrawPointsF(nil)), errors.DrawCoord)

	rnd.Fail(software.OpDrawLine)
	test.ExpectEquality(t, errors.Code(sess.DrawLine(geometry.Vector{}, geometry.Vector{})), errors.DrawLine)
	test.ExpectEquality(t, errors.Code(sess.DrawLineF(geometry.VectorF{}, geometry.VectorF{})), errors.DrawLine)

	rnd.Fail(software.OpClear)
	test.ExpectEquality(t, errors.Code(sess.Clear()), errors.ClearScreen)
}

func TestDrawFillRectangle(t *testing.T) {
	sess, _, rnd := newSession(t, 10, 10)
	fb := rnd.Framebuffer()
	r := geometry.NewRectangle(2, 2, 6, 6)

	test.DemandSuccess(t, sess.SetDrawColor(colors.Red))

	// outline fails so the fill is not attempted
	rnd.Fail(software.OpDrawRect)
	test.ExpectEquality(t, errors.Code(sess.DrawFillRectangle(r)), errors.DrawRect)
	test.ExpectEquality(t, errors.Code(sess.DrawFillRectangleF(r.Float())), errors.DrawRect)
	test.ExpectEquality(t, fb.RGBAAt(4, 4), black)
	rnd.Recover(software.OpDrawRect)

	// fill fails after the outline has been drawn
	rnd.Fail(software.OpFillRect)
	test.ExpectEquality(t, errors.Code(sess.DrawFillRectangle(r)), errors.RectFill)
	test.ExpectEquality(t, fb.RGBAAt(2, 2), red)
	test.ExpectEquality(t, fb.RGBAAt(4, 4), black)
	rnd.Recover(software.OpFillRect)

	test.ExpectSuccess(t, sess.DrawFillRectangleF(r.Float()))
	test.ExpectEquality(t, fb.RGBAAt(4, 4), red)
	test.ExpectEquality(t, fb.RGBAAt(8, 8), black)
}

func TestPrimitives(t *testing.T) {
	sess, _, rnd := newSession(t, 10, 10)
	fb := rnd.Framebuffer()

	test.DemandSuccess(t, sess.SetDrawColor(colors.Red))
	test.ExpectSuccess(t, sess.DrawPoint(geometry.Vector{X: 1, Y: 1}))
	test.ExpectSuccess(t, sess.DrawPointsF([]geometry.VectorF{{X: 2.5, Y: 2.5}}))
	test.ExpectSuccess(t, sess.DrawLine(geometry.Vector{X: 0, Y: 9}, geometry.Vector{X: 9, Y: 9}))
	test.ExpectSuccess(t, sess.DrawRectangle(geometry.NewRectangle(5, 0, 3, 3)))

	test.ExpectEquality(t, fb.RGBAAt(1, 1), red)
	test.ExpectEquality(t, fb.RGBAAt(2, 2), red)
	test.ExpectEquality(t, fb.RGBAAt(5, 9), red)
	test.ExpectEquality(t, fb.RGBAAt(7, 2), red)
	test.ExpectEquality(t, fb.RGBAAt(6, 1), black)
}

func TestTextureLifecycle(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)
	plt.SurfacePadding = 8

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(3, 2, red)

	tx, err := sess.CreateTextureFromImage(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tx.Width, 4)
	test.ExpectEquality(t, tx.Height, 3)
	test.ExpectEquality(t, tx.BytesPerPixel, 4)
	test.ExpectEquality(t, tx.Pitch, 4*4+8)
	test.ExpectEquality(t, tx.Format, backend.PixelFormatRGBA32)

	// pixels are inside the bounds of the texture only
	for y := range tx.Height {
		for x := range tx.Width {
			p, ok := tx.Pixel(x, y)
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, len(p), 4)
		}
	}
	for _, c := range [][2]int{{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		_, ok := tx.Pixel(c[0], c[1])
		test.ExpectFailure(t, ok, c)
	}

	p, ok := tx.Pixel(3, 2)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, string(p), string([]byte{0xff, 0, 0, 0xff}))

	test.ExpectSuccess(t, sess.DrawTextureNative(tx, geometry.Vector{}))

	sess.DestroyTexture(tx)
	test.ExpectFailure(t, tx.Live())
	test.ExpectSuccess(t, tx.pixels == nil)
	test.ExpectSuccess(t, tx.internal == nil)

	_, ok = tx.Pixel(0, 0)
	test.ExpectFailure(t, ok)

	for range 3 {
		err := sess.DrawTexture(tx, geometry.NewRectangle(0, 0, 4, 3))
		test.ExpectEquality(t, errors.Code(err), errors.DestroyedTexture)
	}
	test.ExpectEquality(t, errors.Code(sess.DrawTextureNative(tx, geometry.Vector{})), errors.DestroyedTexture)
	test.ExpectEquality(t, errors.Code(sess.UpdateTexture(tx)), errors.DestroyedTexture)
	test.ExpectEquality(t, errors.Code(tx.CopyFrom(img)), errors.DestroyedTexture)

	// destroying twice does nothing
	sess.DestroyTexture(tx)
	sess.DestroyTexture(nil)
}

func TestTextureUpdate(t *testing.T) {
	sess, _, rnd := newSession(t, 4, 4)
	fb := rnd.Framebuffer()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetRGBA(x, y, black)
		}
	}
	tx, err := sess.CreateTextureFromImage(img)
	test.DemandSuccess(t, err)
	defer sess.DestroyTexture(tx)

	// pixel changes are not seen until the texture is updated
	p, ok := tx.Pixel(0, 0)
	test.DemandSuccess(t, ok)
	copy(p, []byte{0xff, 0, 0, 0xff})

	test.DemandSuccess(t, sess.SetDrawColor(colors.White))
	test.DemandSuccess(t, sess.Clear())
	test.ExpectSuccess(t, sess.DrawTexture(tx, geometry.NewRectangle(0, 0, 2, 2)))
	test.ExpectEquality(t, fb.RGBAAt(0, 0), black)

	test.ExpectSuccess(t, sess.UpdateTexture(tx))
	test.ExpectSuccess(t, sess.DrawTexture(tx, geometry.NewRectangle(0, 0, 2, 2)))
	test.ExpectEquality(t, fb.RGBAAt(0, 0), red)

	// failed update keeps the previous drawable
	copy(p, []byte{0, 0, 0xff, 0xff})
	rnd.Fail(software.OpCreateDrawable)
	test.ExpectEquality(t, errors.Code(sess.UpdateTexture(tx)), errors.CreateTexture)
	rnd.Recover(software.OpCreateDrawable)
	test.ExpectSuccess(t, sess.DrawTexture(tx, geometry.NewRectangle(2, 2, 2, 2)))
	test.ExpectEquality(t, fb.RGBAAt(2, 2), red)

	rnd.Fail(software.OpCopy)
	test.ExpectEquality(t, errors.Code(sess.DrawTexture(tx, geometry.NewRectangle(0, 0, 2, 2))), errors.DrawTexture)
	rnd.Recover(software.OpCopy)

	// whole image transfer
	img.SetRGBA(1, 1, red)
	test.ExpectSuccess(t, tx.CopyFrom(img))
	p, _ = tx.Pixel(1, 1)
	test.ExpectEquality(t, string(p), string([]byte{0xff, 0, 0, 0xff}))
	test.ExpectEquality(t, errors.Code(tx.CopyFrom(image.NewRGBA(image.Rect(0, 0, 3, 3)))), errors.Unspecified)
}

func TestCreateTexture(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)

	tx, err := sess.CreateTexture(filepath.Join(t.TempDir(), "missing.png"))
	test.ExpectEquality(t, errors.Code(err), errors.CreateTexture)
	test.ExpectSuccess(t, tx == nil)

	img := image.NewNRGBA(image.Rect(0, 0, 5, 7))
	img.Set(4, 6, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})
	path := filepath.Join(t.TempDir(), "apple.png")
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, png.Encode(f, img))
	test.DemandSuccess(t, f.Close())

	tx, err = sess.CreateTexture(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tx.Width, 5)
	test.ExpectEquality(t, tx.Height, 7)
	p, ok := tx.Pixel(4, 6)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 3, 0xff}))
	sess.DestroyTexture(tx)

	// drawable creation fails
	plt.Window().Renderer().Fail(software.OpCreateDrawable)
	_, err = sess.CreateTexture(path)
	test.ExpectEquality(t, errors.Code(err), errors.CreateTexture)
}

func TestCreateUTF8Texture(t *testing.T) {
	sess, _, _ := newSession(t, 10, 10)

	path := filepath.Join(t.TempDir(), "goregular.ttf")
	test.DemandSuccess(t, os.WriteFile(path, goregular.TTF, 0o644))

	spec := backend.TextSpec{
		FontPath:  path,
		Size:      12,
		Color:     colors.White.Color(),
		Direction: backend.TopToBottom,
		Text:      "score 100",
	}
	tx, err := sess.CreateUTF8Texture(spec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tx.Width > 0)
	test.ExpectSuccess(t, tx.Height > 0)
	sess.DestroyTexture(tx)

	spec.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	tx, err = sess.CreateUTF8Texture(spec)
	test.ExpectEquality(t, errors.Code(err), errors.CreateTexture)
	test.ExpectSuccess(t, tx == nil)
}

func TestEventOrdering(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)

	type record struct {
		class events.Class
		time  uint32
	}
	var got []record
	data := &got

	sess.AddKeyboardEventHandler(func(ev *events.Keyboard, d any) {
		r := d.(*[]record)
		*r = append(*r, record{class: events.ClassKeyboard, time: ev.Time})
	})
	sess.AddMouseEventHandler(func(ev events.MouseEvent, d any) {
		r := d.(*[]record)
		*r = append(*r, record{class: events.ClassMouse, time: ev.Timestamp()})
	})
	test.ExpectSuccess(t, sess.EventsEnabled(events.ClassKeyboard))
	test.ExpectSuccess(t, sess.EventsEnabled(events.ClassMouse))

	types := []backend.EventType{
		backend.EventKeyDown, backend.EventMouseMotion, backend.EventMouseButtonDown,
		backend.EventKeyUp, backend.EventMouseWheel, backend.EventMouseButtonUp,
		backend.EventKeyDown, backend.EventKeyDown, backend.EventMouseMotion,
	}
	for i, e := range types {
		test.DemandSuccess(t, plt.Push(backend.Event{Type: e, Timestamp: uint32(i + 1)}))
	}

	// window events never reach the queue
	test.ExpectFailure(t, plt.Push(backend.Event{Type: backend.EventWindow}))

	var n int
	for sess.Dequeue(data) {
		n++
	}
	test.ExpectEquality(t, n, len(types))
	test.DemandEquality(t, len(got), len(types))

	for i, e := range types {
		test.ExpectEquality(t, got[i].time, uint32(i+1), i)
		test.ExpectEquality(t, got[i].class, events.Classify(backend.Event{Type: e}), i)
	}
}

func TestDisabledClass(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)

	var keys int
	sess.AddKeyboardEventHandler(func(*events.Keyboard, any) { keys++ })
	test.ExpectFailure(t, sess.EventsEnabled(events.ClassMouse))

	test.DemandSuccess(t, plt.Push(backend.Event{Type: backend.EventMouseMotion}))
	test.DemandSuccess(t, plt.Push(backend.Event{Type: backend.EventTextInput}))
	test.DemandSuccess(t, plt.Push(backend.Event{Type: backend.EventKeyDown}))

	// events with no handler are still consumed
	test.ExpectSuccess(t, sess.Dequeue(nil))
	test.ExpectEquality(t, keys, 0)
	test.ExpectSuccess(t, sess.Dequeue(nil))
	test.ExpectEquality(t, keys, 0)
	test.ExpectSuccess(t, sess.Dequeue(nil))
	test.ExpectEquality(t, keys, 1)
	test.ExpectFailure(t, sess.Dequeue(nil))
}

func TestKeyboardPress(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)

	var got *events.Keyboard
	sess.AddKeyboardEventHandler(func(ev *events.Keyboard, _ any) {
		got = ev
	})

	test.DemandSuccess(t, plt.Push(backend.Event{
		Type: backend.EventKeyDown,
		Key:  backend.Key{State: 1, Scancode: uint16(events.KeyA), Name: "A"},
	}))
	test.ExpectSuccess(t, sess.Dequeue(nil))

	test.DemandSuccess(t, got != nil)
	test.ExpectEquality(t, got.State, events.Pressed)
	test.ExpectFailure(t, got.Repeated)
	test.ExpectEquality(t, got.Keycode, events.KeyA)
	test.ExpectInequality(t, got.Label[0], 0)
}

func TestQuit(t *testing.T) {
	sess, plt, _ := newSession(t, 10, 10)

	var keys int
	sess.AddKeyboardEventHandler(func(*events.Keyboard, any) { keys++ })

	exitCode = -1
	test.DemandSuccess(t, plt.Push(backend.Event{Type: backend.EventQuit}))
	test.DemandSuccess(t, plt.Push(backend.Event{Type: backend.EventKeyDown}))

	test.ExpectSuccess(t, sess.Dequeue(nil))
	test.ExpectEquality(t, exitCode, 0)
	test.ExpectEquality(t, sess.State(), Quit)
	test.ExpectEquality(t, keys, 0)

	// the session is unusable and a new session may be created
	test.ExpectFailure(t, sess.Dequeue(nil))
	other, err := Initialise(software.NewPlatform())
	test.DemandSuccess(t, err)
	other.Destroy()
}

func TestPreferences(t *testing.T) {
	prefs.PushCommandLineStack("session.log::false; session.scale::-1")
	defer prefs.PopCommandLineStack()

	_, err := Initialise(software.NewPlatform())
	test.ExpectEquality(t, errors.Code(err), errors.Initialise)

	prefs.PushCommandLineStack("session.log::false")
	defer prefs.PopCommandLineStack()

	sess, _ := initialise(t)
	test.ExpectFailure(t, sess.AllowLogging())
}

func TestDestroyTextureAfterSession(t *testing.T) {
	sess, _, _ := newSession(t, 10, 10)

	tx, err := sess.CreateTextureFromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	test.DemandSuccess(t, err)
	d, ok := tx.internal.drawable.(*software.Drawable)
	test.DemandSuccess(t, ok)

	sess.Destroy()
	test.ExpectEquality(t, sess.State(), Quit)

	// the drawable was released with the renderer
	test.ExpectSuccess(t, d.Image() == nil)

	logger.Clear()
	sess.DestroyTexture(tx)
	test.ExpectFailure(t, tx.Live())
	test.ExpectSuccess(t, tx.pixels == nil)

	// the backend was not asked to destroy the drawable a second time
	var s strings.Builder
	logger.Write(&s)
	test.ExpectFailure(t, strings.Contains(s.String(), "drawable"))
}
