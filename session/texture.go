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
	"fmt"
	"image"
	"image/draw"

	"github.com/jetsetilly/s2d/backend"
	"github.com/jetsetilly/s2d/errors"
	"github.com/jetsetilly/s2d/geometry"
)

// handle pairs the drawable with the surface it was created from.
type handle struct {
	drawable backend.Drawable
	surface  backend.Surface
}

// Texture is an image that can be drawn to the render target. A Texture is
// held both as a surface in CPU memory and as a drawable that belongs to the
// render target.
//
// Changes to the pixels of the surface, through Pixel() or CopyFrom(), are
// not seen by DrawTexture() until UpdateTexture() has been called.
type Texture struct {
	Format        uint32
	Width         int
	Height        int
	BytesPerPixel int

	// number of bytes in a row of pixels. may be larger than
	// Width*BytesPerPixel
	Pitch int

	pixels   []byte
	internal *handle
}

// Live returns false if the texture has been destroyed.
func (t *Texture) Live() bool {
	return t != nil && t.internal != nil
}

// Pixel returns the bytes of the pixel at the coordinates. The slice refers
// to the pixel memory of the texture and can be written to. Returns false if
// the texture has been destroyed or the coordinates are out of range.
func (t *Texture) Pixel(x, y int) ([]byte, bool) {
	if !t.Live() {
		return nil, false
	}
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return nil, false
	}
	o := y*t.Pitch + x*t.BytesPerPixel
	return t.pixels[o : o+t.BytesPerPixel : o+t.BytesPerPixel], true
}

// CopyFrom copies an image to the pixel memory of the texture. The image must
// be the same size as the texture.
func (t *Texture) CopyFrom(img *image.RGBA) error {
	if !t.Live() {
		return errors.New(errors.DestroyedTexture, errors.TextureNotLive)
	}
	if t.Format != backend.PixelFormatRGBA32 {
		return errors.New(errors.Unspecified, fmt.Sprintf("unsupported texture format (%#x)", t.Format))
	}

	b := img.Bounds()
	if b.Dx() != t.Width || b.Dy() != t.Height {
		return errors.New(errors.Unspecified, fmt.Sprintf("image is %dx%d but texture is %dx%d",
			b.Dx(), b.Dy(), t.Width, t.Height))
	}

	n := t.Width * t.BytesPerPixel
	for y := 0; y < t.Height; y++ {
		s := img.PixOffset(b.Min.X, b.Min.Y+y)
		d := y * t.Pitch
		copy(t.pixels[d:d+n], img.Pix[s:s+n])
	}

	return nil
}

// newTexture creates the drawable for a surface. The surface is freed if the
// drawable can not be created.
func (sess *Session) newTexture(surface backend.Surface) (*Texture, error) {
	if surface.Format() != backend.PixelFormatRGBA32 {
		surface.Free()
		return nil, errors.New(errors.CreateTexture, fmt.Sprintf("unsupported surface format (%#x)", surface.Format()))
	}

	drawable, err := sess.rnd.CreateDrawable(surface)
	if err != nil {
		surface.Free()
		return nil, errors.New(errors.CreateTexture, err)
	}

	w, h := surface.Size()
	return &Texture{
		Format:        surface.Format(),
		Width:         w,
		Height:        h,
		BytesPerPixel: surface.BytesPerPixel(),
		Pitch:         surface.Pitch(),
		pixels:        surface.Pixels(),
		internal: &handle{
			drawable: drawable,
			surface:  surface,
		},
	}, nil
}

// CreateTexture loads an image file into a new texture. The pixels of the
// texture are four bytes in the order R, G, B, A. Fails with
// errors.CreateTexture.
func (sess *Session) CreateTexture(path string) (*Texture, error) {
	if err := sess.notReady(); err != nil {
		return nil, err
	}

	surface, err := sess.plt.LoadImage(path)
	if err != nil {
		return nil, errors.New(errors.CreateTexture, err)
	}

	return sess.newTexture(surface)
}

// CreateUTF8Texture renders text into a new texture. Only left to right text
// is supported. Text with any other direction is rendered left to right. Fails
// with errors.CreateTexture.
func (sess *Session) CreateUTF8Texture(spec backend.TextSpec) (*Texture, error) {
	if err := sess.notReady(); err != nil {
		return nil, err
	}

	if spec.Direction != backend.LeftToRight {
		sess.log("%s text is not supported", spec.Direction)
		spec.Direction = backend.LeftToRight
	}

	surface, err := sess.plt.RenderText(spec)
	if err != nil {
		return nil, errors.New(errors.CreateTexture, err)
	}

	return sess.newTexture(surface)
}

// CreateTextureFromImage creates a new texture from an image. Fails with
// errors.CreateTexture.
func (sess *Session) CreateTextureFromImage(img image.Image) (*Texture, error) {
	if err := sess.notReady(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	surface, err := sess.plt.CreateSurface(b.Dx(), b.Dy())
	if err != nil {
		return nil, errors.New(errors.CreateTexture, err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	// the texture is assembled without a drawable so that CopyFrom() can be
	// used to fill the surface
	t := &Texture{
		Format:        surface.Format(),
		Width:         b.Dx(),
		Height:        b.Dy(),
		BytesPerPixel: surface.BytesPerPixel(),
		Pitch:         surface.Pitch(),
		pixels:        surface.Pixels(),
		internal:      &handle{surface: surface},
	}
	if err := t.CopyFrom(rgba); err != nil {
		surface.Free()
		return nil, errors.New(errors.CreateTexture, err)
	}

	return sess.newTexture(surface)
}

// UpdateTexture recreates the drawable of the texture from its pixels. The
// previous drawable is released only if the new drawable is created. Fails
// with errors.DestroyedTexture or errors.CreateTexture.
func (sess *Session) UpdateTexture(t *Texture) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if !t.Live() {
		return errors.New(errors.DestroyedTexture, errors.TextureNotLive)
	}

	drawable, err := sess.rnd.CreateDrawable(t.internal.surface)
	if err != nil {
		return errors.New(errors.CreateTexture, err)
	}

	if err := t.internal.drawable.Destroy(); err != nil {
		sess.log("%v", err)
	}
	t.internal.drawable = drawable

	return nil
}

// DrawTexture draws the texture into the rectangle, scaling as required.
// Fails with errors.DestroyedTexture or errors.DrawTexture.
func (sess *Session) DrawTexture(t *Texture, dst geometry.Rectangle) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if !t.Live() {
		return errors.New(errors.DestroyedTexture, errors.TextureNotLive)
	}
	if err := sess.rnd.Copy(t.internal.drawable, dst); err != nil {
		return errors.New(errors.DrawTexture, err)
	}
	return nil
}

// DrawTextureNative draws the texture at its own size with its top-left
// corner at origin.
func (sess *Session) DrawTextureNative(t *Texture, origin geometry.Vector) error {
	if !t.Live() {
		if err := sess.notReady(); err != nil {
			return err
		}
		return errors.New(errors.DestroyedTexture, errors.TextureNotLive)
	}
	return sess.DrawTexture(t, geometry.Rectangle{Origin: origin, W: t.Width, H: t.Height})
}

// DestroyTexture releases both the drawable and the surface of the texture.
// Destroying a texture that has already been destroyed does nothing.
//
// Drawables belong to the render target and are released with it. If the
// session is no longer ready only the surface is freed.
func (sess *Session) DestroyTexture(t *Texture) {
	if !t.Live() {
		return
	}
	if t.internal.drawable != nil && sess.state.ready() {
		if err := t.internal.drawable.Destroy(); err != nil {
			sess.log("%v", err)
		}
	}
	t.internal.surface.Free()
	t.internal = nil
	t.pixels = nil
}
