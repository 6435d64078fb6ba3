// seehuhn.de/go/chanview - zero-copy channel views of pixel arrays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is wrapped by all *IndexError values.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrShapeMismatch is wrapped by all *ShapeError values.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// IndexError indicates that an index was outside the bounds of an array.
type IndexError struct {
	Index []int
	Shape []int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("index %v out of bounds for shape %v", err.Index, err.Shape)
}

func (err *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

// ShapeError indicates that the shape or rank of an array did not have the
// required value.
type ShapeError struct {
	// Op is the operation which failed.
	Op string

	// Msg describes what was expected.
	Msg string

	// Want and Got are the expected and actual values, if applicable.
	Want, Got int
}

func (err *ShapeError) Error() string {
	msg := err.Op + ": " + err.Msg
	if err.Want != err.Got {
		msg += fmt.Sprintf(" (expected %d, got %d)", err.Want, err.Got)
	}
	return msg
}

func (err *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
