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
	"github.com/jetsetilly/s2d/errors"
	"github.com/jetsetilly/s2d/geometry"
)

// DrawPoint draws a single point in the draw colour. Fails with
// errors.DrawCoord.
func (sess *Session) DrawPoint(p geometry.Vector) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawPoint(p.X, p.Y); err != nil {
		return errors.New(errors.DrawCoord, err)
	}
	return nil
}

// DrawPointF draws a single point at sub-pixel precision. Fails with
// errors.DrawCoord.
func (sess *Session) DrawPointF(p geometry.VectorF) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawPointF(p.X, p.Y); err != nil {
		return errors.New(errors.DrawCoord, err)
	}
	return nil
}

// DrawPoints draws every point in the list. Fails with errors.DrawCoord.
func (sess *Session) DrawPoints(points []geometry.Vector) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawPoints(points); err != nil {
		return errors.New(errors.DrawCoord, err)
	}
	return nil
}

// DrawPointsF draws every point in the list at sub-pixel precision. Fails
// with errors.DrawCoord.
func (sess *Session) DrawPointsF(points []geometry.VectorF) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawPointsF(points); err != nil {
		return errors.New(errors.DrawCoord, err)
	}
	return nil
}

// DrawLine draws a line between two points. Fails with errors.DrawLine.
func (sess *Session) DrawLine(a, b geometry.Vector) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawLine(a.X, a.Y, b.X, b.Y); err != nil {
		return errors.New(errors.DrawLine, err)
	}
	return nil
}

// DrawLineF draws a line between two points at sub-pixel precision. Fails
// with errors.DrawLine.
func (sess *Session) DrawLineF(a, b geometry.VectorF) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawLineF(a.X, a.Y, b.X, b.Y); err != nil {
		return errors.New(errors.DrawLine, err)
	}
	return nil
}

// DrawRectangle draws the outline of the rectangle. Fails with
// errors.DrawRect.
func (sess *Session) DrawRectangle(r geometry.Rectangle) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawRect(r); err != nil {
		return errors.New(errors.DrawRect, err)
	}
	return nil
}

// DrawRectangleF draws the outline of the rectangle at sub-pixel precision.
// Fails with errors.DrawRect.
func (sess *Session) DrawRectangleF(r geometry.RectangleF) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.DrawRectF(r); err != nil {
		return errors.New(errors.DrawRect, err)
	}
	return nil
}

// FillRectangle fills the interior of the rectangle. Fails with
// errors.RectFill.
func (sess *Session) FillRectangle(r geometry.Rectangle) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.FillRect(r); err != nil {
		return errors.New(errors.RectFill, err)
	}
	return nil
}

// FillRectangleF fills the interior of the rectangle at sub-pixel precision.
// Fails with errors.RectFill.
func (sess *Session) FillRectangleF(r geometry.RectangleF) error {
	if err := sess.notReady(); err != nil {
		return err
	}
	if err := sess.rnd.FillRectF(r); err != nil {
		return errors.New(errors.RectFill, err)
	}
	return nil
}

// DrawFillRectangle draws the outline and then fills the interior. The fill
// is not attempted if the outline fails.
func (sess *Session) DrawFillRectangle(r geometry.Rectangle) error {
	if err := sess.DrawRectangle(r); err != nil {
		return err
	}
	return sess.FillRectangle(r)
}

// DrawFillRectangleF draws the outline and then fills the interior at
// sub-pixel precision. The fill is not attempted if the outline fails.
func (sess *Session) DrawFillRectangleF(r geometry.RectangleF) error {
	if err := sess.DrawRectangleF(r); err != nil {
		return err
	}
	return sess.FillRectangleF(r)
}
