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

// Package array defines n-dimensional arrays and provides dense and strided
// implementations.
//
// Arrays use 0-based indices.  Dense storage is column-major: the first axis
// varies fastest.  Linear offsets, as used by [Linear.AtLinear], follow the
// same order for every array, regardless of how it is stored.
package array

// Array is an n-dimensional array with elements of type E.
type Array[E any] interface {
	// Shape returns the extent of every axis.
	// The returned slice must not be modified.
	Shape() []int

	// At returns the element at the given index.
	// A *IndexError is returned if the index is out of bounds.
	At(idx ...int) (E, error)

	// Set stores v at the given index.
	// A *IndexError is returned if the index is out of bounds.
	Set(v E, idx ...int) error
}

// Linear is implemented by arrays which can be addressed by a single
// column-major offset.
type Linear[E any] interface {
	Array[E]

	// Len returns the total number of elements.
	Len() int

	// AtLinear returns the element at the given offset.
	AtLinear(i int) (E, error)

	// SetLinear stores v at the given offset.
	SetLinear(v E, i int) error
}

// IndexStyle describes the most efficient way to address the elements of an
// array.
type IndexStyle int

// These are the supported index styles.
const (
	// IndexCartesian means that elements are best addressed by one
	// coordinate per axis.
	IndexCartesian IndexStyle = iota

	// IndexLinear means that elements can be addressed by a single offset
	// without converting it to coordinates first.
	IndexLinear
)

func (s IndexStyle) String() string {
	switch s {
	case IndexCartesian:
		return "cartesian"
	case IndexLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Styler is implemented by arrays which decide their index style at run
// time.  Views use this to pass on the index style of the array they wrap.
type Styler interface {
	IndexStyle() IndexStyle
}

// Style returns the index style of a.  An array has linear index style if it
// implements [Linear] and, in case it also implements [Styler], reports
// IndexLinear.
func Style[E any](a Array[E]) IndexStyle {
	if _, ok := a.(Linear[E]); !ok {
		return IndexCartesian
	}
	if s, ok := a.(Styler); ok {
		return s.IndexStyle()
	}
	return IndexLinear
}

// GetLinear returns the element of a at the given column-major offset.
// Arrays which do not implement [Linear] are accessed via coordinates.
func GetLinear[E any](a Array[E], i int) (E, error) {
	if l, ok := a.(Linear[E]); ok {
		return l.AtLinear(i)
	}
	shape := a.Shape()
	idx := make([]int, len(shape))
	if err := Unravel(shape, i, idx); err != nil {
		var zero E
		return zero, err
	}
	return a.At(idx...)
}

// SetLinear stores v in a at the given column-major offset.
// Arrays which do not implement [Linear] are accessed via coordinates.
func SetLinear[E any](a Array[E], v E, i int) error {
	if l, ok := a.(Linear[E]); ok {
		return l.SetLinear(v, i)
	}
	shape := a.Shape()
	idx := make([]int, len(shape))
	if err := Unravel(shape, i, idx); err != nil {
		return err
	}
	return a.Set(v, idx...)
}

// Collect returns all elements of a in column-major order.
func Collect[E any](a Array[E]) ([]E, error) {
	n := Len(a.Shape())
	res := make([]E, n)
	for i := range res {
		v, err := GetLinear(a, i)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// Fill stores v in every element of a.
func Fill[E any](a Array[E], v E) error {
	n := Len(a.Shape())
	for i := 0; i < n; i++ {
		if err := SetLinear(a, v, i); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b have the same shape and the same elements.
func Equal[E comparable](a, b Array[E]) bool {
	if !SameShape(a.Shape(), b.Shape()) {
		return false
	}
	n := Len(a.Shape())
	for i := 0; i < n; i++ {
		x, err := GetLinear(a, i)
		if err != nil {
			return false
		}
		y, err := GetLinear(b, i)
		if err != nil {
			return false
		}
		if x != y {
			return false
		}
	}
	return true
}
