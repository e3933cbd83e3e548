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

// Package errors is a helper package for the error type. It defines the Error
// type, an implementation of the error interface that carries a stable Errno
// alongside the values used to format the message.
//
// Every fallible operation in the session package returns an Error (or nil).
// The Errno is the stable part of the contract and can be retrieved with the
// Code() function:
//
//	if errors.Code(err) == errors.CreateTexture {
//		...
//	}
//
// Code() returns zero for a nil error and Unspecified for an error that was
// not created by this package.
//
// The most useful feature of the message formatting is deduplication of
// wrapped errors. An Error that wraps another Error of the same Errno will not
// repeat the message prefix. For example:
//
//	err := errors.New(errors.CreateTexture, "missing.png", io.EOF)
//	err = errors.New(errors.CreateTexture, err)
//
// The message of the outer error will be
//
//	create texture: missing.png: EOF
//
// and not
//
//	create texture: create texture: missing.png: EOF
package errors
