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

// Package regions divides an RGBA buffer into disjoint bands of rows so that
// the pixels of the buffer can be computed in parallel without locking.
//
// Each Region can only write to its own rows. The buffer must not be read
// until Process() has returned, at which point every worker has finished.
//
//	buf := regions.NewBuffer(w, h)
//	err := regions.Process(ctx, buf, runtime.NumCPU(), func(ctx context.Context, r regions.Region) error {
//		for y := r.Top(); y < r.Bottom(); y++ {
//			for x := 0; x < r.Width(); x++ {
//				r.Set(x, y, col)
//			}
//		}
//		return nil
//	})
package regions
