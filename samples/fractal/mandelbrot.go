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

package fractal

import (
	"context"

	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/regions"
)

// Params for the Mandelbrot calculation.
type Params struct {
	// maximum number of iterations for each point
	MaxN int

	// the square of the magnitude at which a point is said to escape
	Boundary float32

	// number of pixels per unit of the complex plane
	Scaler float32
}

// DefaultParams are the parameters for the initial image.
var DefaultParams = Params{
	MaxN:     100,
	Boundary: 4.0,
	Scaler:   512,
}

// Point returns the number of iterations before the point escapes and the
// squared magnitude at the final iteration.
func Point(cr, ci float32, p Params) (int, float32) {
	var zr, zi float32
	var abs float32
	n := 0
	for {
		abs = zr*zr + zi*zi
		if abs >= p.Boundary || n >= p.MaxN {
			break
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n, abs
}

// Color of a point.
func Color(n int, abs float32) colors.Color {
	return colors.Color{
		R: uint8(n * 2),
		G: uint8(min(2*abs, 255)),
		A: 0xff,
	}
}

// Render the set into the buffer. The centre of the buffer is the origin of
// the complex plane.
func Render(ctx context.Context, buf *regions.Buffer, workers int, p Params) error {
	w, h := buf.Size()
	return regions.Process(ctx, buf, workers, func(ctx context.Context, r regions.Region) error {
		for y := r.Top(); y < r.Bottom(); y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			ci := float32(y-h/2) / p.Scaler
			for x := range r.Width() {
				cr := float32(x-w/2) / p.Scaler
				r.Set(x, y, Color(Point(cr, ci, p)))
			}
		}
		return nil
	})
}
