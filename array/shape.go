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

import "slices"

// Len returns the number of elements of an array with the given shape.
// The result is 1 for an empty shape.
func Len(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	return slices.Equal(a, b)
}

// CheckIndex verifies that idx is a valid index for an array of the given
// shape.  Every coordinate must be in the range [0, extent).
func CheckIndex(shape, idx []int) error {
	if len(idx) != len(shape) {
		return &IndexError{Index: slices.Clone(idx), Shape: slices.Clone(shape)}
	}
	for i, x := range idx {
		if x < 0 || x >= shape[i] {
			return &IndexError{Index: slices.Clone(idx), Shape: slices.Clone(shape)}
		}
	}
	return nil
}

// CheckOffset verifies that i is a valid column-major offset for an array of
// the given shape.
func CheckOffset(shape []int, i int) error {
	if i < 0 || i >= Len(shape) {
		return &IndexError{Index: []int{i}, Shape: []int{Len(shape)}}
	}
	return nil
}

// Unravel converts the column-major offset i into coordinates for an array of
// the given shape.  The coordinates are written to idx, which must have the
// same length as shape.
func Unravel(shape []int, i int, idx []int) error {
	if err := CheckOffset(shape, i); err != nil {
		return err
	}
	for k, d := range shape {
		idx[k] = i % d
		i /= d
	}
	return nil
}

// Ravel converts coordinates into a column-major offset.
// The index must be valid for the given shape.
func Ravel(shape, idx []int) int {
	offs := 0
	stride := 1
	for k, d := range shape {
		offs += idx[k] * stride
		stride *= d
	}
	return offs
}

// columnMajorStrides returns the strides, counted in elements, of a dense
// column-major array.
func columnMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for k, d := range shape {
		strides[k] = stride
		stride *= d
	}
	return strides
}

func checkExtents(op string, shape []int) {
	for _, d := range shape {
		if d < 0 {
			panic("array." + op + ": negative extent")
		}
	}
}
