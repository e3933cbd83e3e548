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

package regions

import (
	"context"
	"fmt"
	"image"

	"github.com/jetsetilly/s2d/colors"
	"golang.org/x/sync/errgroup"
)

// Buffer is the pixel buffer shared by all regions.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Size returns the width and height of the buffer.
func (b *Buffer) Size() (int, int) {
	return b.img.Bounds().Dx(), b.img.Bounds().Dy()
}

// Image returns the buffer as an image. It should not be called while
// Process() is running.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Region is a band of rows in a Buffer. Coordinates are in buffer space but
// only the rows in the range [Top, Bottom) can be written.
type Region struct {
	idx    int
	top    int
	bottom int
	width  int
	pix    []uint8
	stride int
}

// Split the buffer into n bands of rows. Rows that do not divide evenly are
// given to the earlier bands. A band is never empty so the number of regions
// will be less than n if the buffer has fewer than n rows.
func (b *Buffer) Split(n int) []Region {
	w, h := b.Size()
	if n < 1 {
		n = 1
	}
	if n > h {
		n = h
	}

	regs := make([]Region, 0, n)

	top := 0
	for i := range n {
		rows := h / n
		if i < h%n {
			rows++
		}

		start := b.img.PixOffset(0, top)
		end := start + rows*b.img.Stride

		regs = append(regs, Region{
			idx:    i,
			top:    top,
			bottom: top + rows,
			width:  w,
			pix:    b.img.Pix[start:end:end],
			stride: b.img.Stride,
		})

		top += rows
	}

	return regs
}

func (r Region) String() string {
	return fmt.Sprintf("region %d: rows %d to %d", r.idx, r.top, r.bottom-1)
}

// Index of the region in the list returned by Split().
func (r Region) Index() int {
	return r.idx
}

// Top is the first row of the region.
func (r Region) Top() int {
	return r.top
}

// Bottom is one more than the last row of the region.
func (r Region) Bottom() int {
	return r.bottom
}

// Width of the region, which is the same as the width of the buffer.
func (r Region) Width() int {
	return r.width
}

// Contains returns true if the coordinates are inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= 0 && x < r.width && y >= r.top && y < r.bottom
}

// Set the pixel at the coordinates. Returns false if the coordinates are
// outside the region.
func (r Region) Set(x, y int, col colors.Color) bool {
	if !r.Contains(x, y) {
		return false
	}
	i := (y-r.top)*r.stride + x*4
	p := r.pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = col.A
	return true
}

// Work is the function run for each region.
type Work func(ctx context.Context, r Region) error

// Process splits the buffer into n regions and runs work for each region
// concurrently. It returns when every region has finished. The first error
// cancels the context passed to the other workers and is returned.
func Process(ctx context.Context, buf *Buffer, n int, work Work) error {
	grp, ctx := errgroup.WithContext(ctx)
	for _, r := range buf.Split(n) {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := work(ctx, r); err != nil {
				return fmt.Errorf("regions: %s: %w", r, err)
			}
			return nil
		})
	}
	return grp.Wait()
}
