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

package errors_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/s2d/errors"
	"github.com/jetsetilly/s2d/test"
)

func TestMessage(t *testing.T) {
	e := errors.New(errors.CreateTexture, "missing.png")
	test.ExpectEquality(t, e.Error(), "create texture: missing.png")

	// packing errors of the same type next to each other causes one of them
	// to be dropped
	f := errors.New(errors.CreateTexture, e)
	test.ExpectEquality(t, f.Error(), "create texture: missing.png")

	// more than one value
	g := errors.New(errors.CreateTexture, "missing.png", io.EOF)
	test.ExpectEquality(t, g.Error(), "create texture: missing.png: EOF")

	// no values at all
	h := errors.New(errors.ClearScreen)
	test.ExpectEquality(t, h.Error(), "clear screen")

	u := errors.New(errors.Unspecified, errors.NotReady)
	test.ExpectEquality(t, u.Error(), errors.NotReady)
}

func TestCode(t *testing.T) {
	test.ExpectEquality(t, errors.Code(nil), errors.Errno(0))
	test.ExpectEquality(t, errors.Code(errors.New(errors.DrawLine, "foo")), errors.DrawLine)
	test.ExpectEquality(t, errors.Code(fmt.Errorf("foreign")), errors.Unspecified)

	// the numeric values are part of the public contract
	test.ExpectEquality(t, int(errors.Initialise), 0x01)
	test.ExpectEquality(t, int(errors.CreateTexture), 0x0b)
	test.ExpectEquality(t, int(errors.DestroyedTexture), 0x0d)
	test.ExpectEquality(t, int(errors.Unspecified), 0xff)
}

func TestIsAndHas(t *testing.T) {
	inner := errors.New(errors.CreateRenderer, "no driver")
	outer := errors.New(errors.CreateWindow, inner)

	test.ExpectSuccess(t, errors.Is(outer, errors.CreateWindow))
	test.ExpectFailure(t, errors.Is(outer, errors.CreateRenderer))
	test.ExpectSuccess(t, errors.Has(outer, errors.CreateRenderer))
	test.ExpectFailure(t, errors.Has(outer, errors.DrawLine))
	test.ExpectFailure(t, errors.Has(fmt.Errorf("foreign"), errors.DrawLine))
	test.ExpectFailure(t, errors.IsAny(nil))
	test.ExpectSuccess(t, errors.IsAny(outer))
}

func TestUnwrap(t *testing.T) {
	e := errors.New(errors.CreateTexture, "font.ttf", io.ErrUnexpectedEOF)
	test.ExpectEquality(t, e.Unwrap(), io.ErrUnexpectedEOF)

	e = errors.New(errors.CreateTexture, "font.ttf")
	test.ExpectEquality(t, e.Unwrap(), nil)
}
