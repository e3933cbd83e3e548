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

package test_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/s2d/test"
)

func TestSuccessAndFailure(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("test error"))

	var err error
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, err)
	test.DemandFailure(t, io.EOF)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, uint32(0xff), 0xfe)
	test.DemandEquality(t, true, true)
}

func TestImplements(t *testing.T) {
	var w test.CompareWriter
	test.ExpectImplements[io.Writer](t, &w)
	test.ExpectImplements[fmt.Stringer](t, &w)
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(&w, "foo %d", 1)
	test.ExpectSuccess(t, w.Compare("foo 1"))
	test.ExpectEquality(t, w.String(), "foo 1")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
