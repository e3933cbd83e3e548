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

package regions_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/s2d/colors"
	"github.com/jetsetilly/s2d/regions"
	"github.com/jetsetilly/s2d/test"
)

func TestSplit(t *testing.T) {
	buf := regions.NewBuffer(10, 10)

	regs := buf.Split(3)
	test.ExpectEquality(t, len(regs), 3)
	test.ExpectEquality(t, regs[0].Top(), 0)
	test.ExpectEquality(t, regs[0].Bottom(), 4)
	test.ExpectEquality(t, regs[1].Top(), 4)
	test.ExpectEquality(t, regs[1].Bottom(), 7)
	test.ExpectEquality(t, regs[2].Top(), 7)
	test.ExpectEquality(t, regs[2].Bottom(), 10)

	for i, r := range regs {
		test.ExpectEquality(t, r.Index(), i)
		test.ExpectEquality(t, r.Width(), 10)
	}

	// more regions than rows
	regs = buf.Split(20)
	test.ExpectEquality(t, len(regs), 10)

	// zero regions is treated as one
	regs = buf.Split(0)
	test.ExpectEquality(t, len(regs), 1)
	test.ExpectEquality(t, regs[0].Bottom(), 10)
}

func TestRegionBounds(t *testing.T) {
	buf := regions.NewBuffer(4, 4)
	regs := buf.Split(2)

	test.ExpectSuccess(t, regs[0].Set(0, 0, colors.Red.Color()))
	test.ExpectSuccess(t, regs[0].Set(3, 1, colors.Red.Color()))
	test.ExpectFailure(t, regs[0].Set(0, 2, colors.Red.Color()))
	test.ExpectFailure(t, regs[0].Set(4, 0, colors.Red.Color()))
	test.ExpectFailure(t, regs[0].Set(-1, 0, colors.Red.Color()))

	test.ExpectFailure(t, regs[1].Set(0, 1, colors.Red.Color()))
	test.ExpectSuccess(t, regs[1].Set(0, 2, colors.Blue.Color()))
	test.ExpectFailure(t, regs[1].Set(0, 4, colors.Blue.Color()))

	img := buf.Image()
	test.ExpectEquality(t, colors.FromColor(img.At(0, 0)).Code(), colors.Red)
	test.ExpectEquality(t, colors.FromColor(img.At(3, 1)).Code(), colors.Red)
	test.ExpectEquality(t, colors.FromColor(img.At(0, 2)).Code(), colors.Blue)
	test.ExpectEquality(t, colors.FromColor(img.At(1, 2)).Code(), colors.Transparent)
}

func TestProcess(t *testing.T) {
	const w = 33
	const h = 47

	buf := regions.NewBuffer(w, h)

	var count atomic.Int32
	err := regions.Process(context.Background(), buf, 5, func(_ context.Context, r regions.Region) error {
		count.Add(1)
		col := colors.Color{R: uint8(r.Index()), A: 0xff}
		for y := r.Top(); y < r.Bottom(); y++ {
			for x := range r.Width() {
				if !r.Set(x, y, col) {
					return fmt.Errorf("set failed at %d,%d", x, y)
				}
			}
		}
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count.Load(), int32(5))

	// every pixel is written by the region that owns the row
	regs := buf.Split(5)
	img := buf.Image()
	for _, r := range regs {
		for y := r.Top(); y < r.Bottom(); y++ {
			for x := range w {
				c := img.RGBAAt(x, y)
				if c.R != uint8(r.Index()) || c.A != 0xff {
					t.Fatalf("pixel %d,%d not written by region %d", x, y, r.Index())
				}
			}
		}
	}
}

func TestProcessError(t *testing.T) {
	buf := regions.NewBuffer(8, 8)

	err := regions.Process(context.Background(), buf, 4, func(ctx context.Context, r regions.Region) error {
		if r.Index() == 2 {
			return fmt.Errorf("test error")
		}
		<-ctx.Done()
		return ctx.Err()
	})
	test.ExpectFailure(t, err)
}

func TestProcessCancelled(t *testing.T) {
	buf := regions.NewBuffer(8, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count atomic.Int32
	err := regions.Process(ctx, buf, 4, func(_ context.Context, _ regions.Region) error {
		count.Add(1)
		return nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, count.Load(), int32(0))
}
