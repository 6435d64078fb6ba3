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
	"slices"
	"unsafe"
)

// Dense is an array which stores its elements contiguously in column-major
// order.
type Dense[E any] struct {
	data  []E
	shape []int

	// origin is the array this one was reinterpreted from, or nil.
	origin any
}

// compile-time interface checks
var (
	_ Linear[float32] = (*Dense[float32])(nil)
	_ Array[float32]  = (*Strided[float32])(nil)
)

// NewDense allocates a zero-filled array with the given shape.
// NewDense panics if one of the extents is negative.
func NewDense[E any](shape ...int) *Dense[E] {
	checkExtents("NewDense", shape)
	return &Dense[E]{
		data:  make([]E, Len(shape)),
		shape: slices.Clone(shape),
	}
}

// FromSlice returns an array which uses data as its storage.
// The length of data must equal the number of elements of the shape.
func FromSlice[E any](data []E, shape ...int) (*Dense[E], error) {
	for _, d := range shape {
		if d < 0 {
			return nil, &ShapeError{Op: "array.FromSlice", Msg: "negative extent"}
		}
	}
	if n := Len(shape); n != len(data) {
		return nil, &ShapeError{
			Op:   "array.FromSlice",
			Msg:  "data length does not match shape",
			Want: n,
			Got:  len(data),
		}
	}
	return &Dense[E]{
		data:  data,
		shape: slices.Clone(shape),
	}, nil
}

// Shape implements the [Array] interface.
func (d *Dense[E]) Shape() []int {
	return d.shape
}

// Len implements the [Linear] interface.
func (d *Dense[E]) Len() int {
	return len(d.data)
}

// Data returns the underlying storage in column-major order.
// Modifying the returned slice modifies the array.
func (d *Dense[E]) Data() []E {
	return d.data
}

// Origin returns the array d was created from by [Reinterpret], or nil if d
// owns its storage.
func (d *Dense[E]) Origin() any {
	return d.origin
}

// At implements the [Array] interface.
func (d *Dense[E]) At(idx ...int) (E, error) {
	if err := CheckIndex(d.shape, idx); err != nil {
		var zero E
		return zero, err
	}
	return d.data[Ravel(d.shape, idx)], nil
}

// Set implements the [Array] interface.
func (d *Dense[E]) Set(v E, idx ...int) error {
	if err := CheckIndex(d.shape, idx); err != nil {
		return err
	}
	d.data[Ravel(d.shape, idx)] = v
	return nil
}

// AtLinear implements the [Linear] interface.
func (d *Dense[E]) AtLinear(i int) (E, error) {
	if i < 0 || i >= len(d.data) {
		var zero E
		return zero, &IndexError{Index: []int{i}, Shape: []int{len(d.data)}}
	}
	return d.data[i], nil
}

// SetLinear implements the [Linear] interface.
func (d *Dense[E]) SetLinear(v E, i int) error {
	if i < 0 || i >= len(d.data) {
		return &IndexError{Index: []int{i}, Shape: []int{len(d.data)}}
	}
	d.data[i] = v
	return nil
}

// Section returns a view of d restricted to the range [lo, hi) along the
// given axis.  The view shares storage with d.
func (d *Dense[E]) Section(axis, lo, hi int) (*Strided[E], error) {
	s := &Strided[E]{
		data:    d.data,
		shape:   d.shape,
		strides: columnMajorStrides(d.shape),
	}
	return s.Section(axis, lo, hi)
}

// Slice returns a view of d with the given axis fixed at coordinate i.
// The result has one axis fewer than d and shares storage with d.
func (d *Dense[E]) Slice(axis, i int) (*Strided[E], error) {
	s := &Strided[E]{
		data:    d.data,
		shape:   d.shape,
		strides: columnMajorStrides(d.shape),
	}
	return s.Slice(axis, i)
}

// Strided is an array view with arbitrary per-axis strides.
// Strided arrays only support cartesian indexing.
type Strided[E any] struct {
	data    []E
	shape   []int
	strides []int
	offset  int
}

// Shape implements the [Array] interface.
func (s *Strided[E]) Shape() []int {
	return s.shape
}

// At implements the [Array] interface.
func (s *Strided[E]) At(idx ...int) (E, error) {
	if err := CheckIndex(s.shape, idx); err != nil {
		var zero E
		return zero, err
	}
	return s.data[s.pos(idx)], nil
}

// Set implements the [Array] interface.
func (s *Strided[E]) Set(v E, idx ...int) error {
	if err := CheckIndex(s.shape, idx); err != nil {
		return err
	}
	s.data[s.pos(idx)] = v
	return nil
}

func (s *Strided[E]) pos(idx []int) int {
	p := s.offset
	for k, x := range idx {
		p += x * s.strides[k]
	}
	return p
}

// Section returns a view of s restricted to the range [lo, hi) along the
// given axis.  The view shares storage with s.
func (s *Strided[E]) Section(axis, lo, hi int) (*Strided[E], error) {
	if axis < 0 || axis >= len(s.shape) {
		return nil, &ShapeError{
			Op:   "array.Section",
			Msg:  "axis out of range",
			Want: len(s.shape),
			Got:  axis,
		}
	}
	if lo < 0 || hi < lo || hi > s.shape[axis] {
		return nil, &IndexError{Index: []int{lo, hi}, Shape: []int{s.shape[axis]}}
	}
	shape := slices.Clone(s.shape)
	shape[axis] = hi - lo
	return &Strided[E]{
		data:    s.data,
		shape:   shape,
		strides: s.strides,
		offset:  s.offset + lo*s.strides[axis],
	}, nil
}

// Slice returns a view of s with the given axis fixed at coordinate i.
// The result has one axis fewer than s and shares storage with s.
func (s *Strided[E]) Slice(axis, i int) (*Strided[E], error) {
	if axis < 0 || axis >= len(s.shape) {
		return nil, &ShapeError{
			Op:   "array.Slice",
			Msg:  "axis out of range",
			Want: len(s.shape),
			Got:  axis,
		}
	}
	if i < 0 || i >= s.shape[axis] {
		return nil, &IndexError{Index: []int{i}, Shape: []int{s.shape[axis]}}
	}
	return &Strided[E]{
		data:    s.data,
		shape:   slices.Delete(slices.Clone(s.shape), axis, axis+1),
		strides: slices.Delete(slices.Clone(s.strides), axis, axis+1),
		offset:  s.offset + i*s.strides[axis],
	}, nil
}

// Reinterpret returns an array of type To which shares the storage of d.
// The total size in bytes of the new shape must equal the size of d, and the
// storage must be suitably aligned for To.  The elements of d are not
// converted in any way; the caller must make sure that the memory layout of
// the two element types is compatible.
//
// If d itself was obtained from an array of type *Dense[To] with the same
// shape, that array is returned.
func Reinterpret[To, From any](d *Dense[From], shape ...int) (*Dense[To], error) {
	var from From
	var to To
	fromSize := int(unsafe.Sizeof(from))
	toSize := int(unsafe.Sizeof(to))

	for _, n := range shape {
		if n < 0 {
			return nil, &ShapeError{Op: "array.Reinterpret", Msg: "negative extent"}
		}
	}
	n := Len(shape)
	if n*toSize != len(d.data)*fromSize {
		return nil, &ShapeError{
			Op:   "array.Reinterpret",
			Msg:  "size in bytes does not match",
			Want: len(d.data) * fromSize,
			Got:  n * toSize,
		}
	}

	if o, ok := d.origin.(*Dense[To]); ok && SameShape(o.shape, shape) {
		return o, nil
	}

	var data []To
	if n > 0 {
		if toSize == 0 || fromSize == 0 {
			return nil, &ShapeError{Op: "array.Reinterpret", Msg: "zero-sized element type"}
		}
		p := unsafe.Pointer(unsafe.SliceData(d.data))
		if uintptr(p)%unsafe.Alignof(to) != 0 {
			return nil, &ShapeError{Op: "array.Reinterpret", Msg: "storage is not aligned"}
		}
		data = unsafe.Slice((*To)(p), n)
	}
	return &Dense[To]{
		data:   data,
		shape:  slices.Clone(shape),
		origin: d,
	}, nil
}
