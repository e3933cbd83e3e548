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

package software

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/s2d/backend"
)

// LoadImage implements the backend.Platform interface. Supported formats are
// PNG, JPEG, GIF, BMP, TIFF and WebP.
func (plt *Platform) LoadImage(path string) (backend.Surface, error) {
	if err := plt.faults.check(OpLoadImage); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("software: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("software: %s: %w", path, err)
	}

	return plt.surfaceFromImage(img), nil
}

// surfaceFromImage converts any image to a new surface with the RGBA32 format.
func (plt *Platform) surfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := newSurface(b.Dx(), b.Dy(), plt.SurfacePadding)
	draw.Draw(s.img, s.img.Bounds(), img, b.Min, draw.Src)
	return s
}
