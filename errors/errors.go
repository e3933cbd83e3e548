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

package errors

import (
	"fmt"
	"strings"
)

// Values is the type used to specify arguments for an Error.
type Values []interface{}

// Error is the error type returned by all fallible operations of the library.
type Error struct {
	Errno  Errno
	Values Values
}

// New is used to create a new Error. Note that the message is not formatted
// here. Formatting takes place in the Error() function.
func New(errno Errno, values ...interface{}) Error {
	return Error{
		Errno:  errno,
		Values: values,
	}
}

func (er Error) Error() string {
	pattern, ok := messages[er.Errno]
	if !ok {
		pattern = messages[Unspecified]
	}

	// an Error with more than one value has those values joined into a single
	// detail string. the message patterns all accept a single %v
	var s string
	switch len(er.Values) {
	case 0:
		s = strings.TrimSuffix(pattern, ": %v")
		if s == "%v" {
			s = "unspecified error"
		}
	case 1:
		s = fmt.Sprintf(pattern, er.Values[0])
	default:
		p := make([]string, len(er.Values))
		for i, v := range er.Values {
			p[i] = fmt.Sprintf("%v", v)
		}
		s = fmt.Sprintf(pattern, strings.Join(p, ": "))
	}

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return s
}

// Unwrap returns the first value that is itself an error. Allows the standard
// library errors.Is() and errors.As() functions to see through an Error.
func (er Error) Unwrap() error {
	for _, v := range er.Values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if error is of the Error type.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(Error)
	return ok
}

// Is checks if error is an Error with the specified Errno.
func Is(err error, errno Errno) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(Error); ok {
		return er.Errno == errno
	}
	return false
}

// Has checks if the Errno is found anywhere in the error chain. The chain is
// formed by Error values being used as arguments to other Error values.
func Has(err error, errno Errno) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, errno) {
		return true
	}

	for _, v := range err.(Error).Values {
		if e, ok := v.(Error); ok {
			if Has(e, errno) {
				return true
			}
		}
	}

	return false
}

// Code returns the Errno of the error. A nil error returns zero, which is the
// success code. An error not created by this package returns Unspecified.
func Code(err error) Errno {
	if err == nil {
		return 0
	}
	if er, ok := err.(Error); ok {
		return er.Errno
	}
	return Unspecified
}
