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

package chanview

import (
	"fmt"

	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/pixel"
)

// ColorView presents an array of scalars as an array of pixel values of type
// C.  The leading axis of the parent array holds the components of each
// pixel, in constructor order.  For single-component pixel types with
// [SqueezeSingleChannel] set, there is no such axis and every scalar is one
// pixel.
//
// A ColorView does not store any samples.  All reads and writes go to the
// parent array.
type ColorView[T pixel.Scalar, C pixel.Color[T, C]] struct {
	parent array.Array[T]
	shape  []int
	k      int
}

// compile-time interface checks
var (
	_ array.Linear[pixel.RGB[float32]] = (*ColorView[float32, pixel.RGB[float32]])(nil)
	_ array.Styler                     = (*ColorView[float32, pixel.RGB[float32]])(nil)
)

// NewColorView returns a color view of parent.  The leading axis of parent
// must have one entry per component of C.
func NewColorView[T pixel.Scalar, C pixel.Color[T, C]](parent array.Array[T]) (*ColorView[T, C], error) {
	var c C
	l := c.Layout()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	pshape := parent.Shape()
	if err := CheckLeadingDim(pshape, l.Arity); err != nil {
		return nil, err
	}
	return &ColorView[T, C]{
		parent: parent,
		shape:  ColorViewShape(pshape, l.Arity),
		k:      l.Arity,
	}, nil
}

// Parent returns the array of scalars the view was created from.
func (v *ColorView[T, C]) Parent() array.Array[T] {
	return v.parent
}

// Layout returns the layout of the pixel type C.
func (v *ColorView[T, C]) Layout() pixel.Layout {
	var c C
	return c.Layout()
}

// Shape implements the [array.Array] interface.
func (v *ColorView[T, C]) Shape() []int {
	return v.shape
}

// Len implements the [array.Linear] interface.
func (v *ColorView[T, C]) Len() int {
	return array.Len(v.shape)
}

// IndexStyle implements the [array.Styler] interface.
// A color view can only be addressed linearly if the channel axis is
// squeezed and the parent array supports linear indexing.
func (v *ColorView[T, C]) IndexStyle() array.IndexStyle {
	if squeezed(v.k) {
		return array.Style(v.parent)
	}
	return array.IndexCartesian
}

// At implements the [array.Array] interface.
func (v *ColorView[T, C]) At(idx ...int) (C, error) {
	var c C
	if err := array.CheckIndex(v.shape, idx); err != nil {
		return c, err
	}
	if squeezed(v.k) {
		x, err := v.parent.At(idx...)
		if err != nil {
			return c, err
		}
		return c.WithComponents([pixel.MaxArity]T{x}), nil
	}

	pidx := parentIndex(idx)
	var comps [pixel.MaxArity]T
	for ch := 0; ch < v.k; ch++ {
		pidx[0] = ch
		x, err := v.parent.At(pidx...)
		if err != nil {
			return c, err
		}
		comps[ch] = x
	}
	return c.WithComponents(comps), nil
}

// Set implements the [array.Array] interface.
// The components of c are stored in constructor order, independent of the
// memory layout of C.
func (v *ColorView[T, C]) Set(c C, idx ...int) error {
	if err := array.CheckIndex(v.shape, idx); err != nil {
		return err
	}
	comps := c.Components()
	if squeezed(v.k) {
		return v.parent.Set(comps[0], idx...)
	}

	pidx := parentIndex(idx)
	for ch := 0; ch < v.k; ch++ {
		pidx[0] = ch
		if err := v.parent.Set(comps[ch], pidx...); err != nil {
			return err
		}
	}
	return nil
}

// Assign converts src to the pixel type C and stores the result at the
// given index.  A *pixel.ConversionError is returned if src cannot be
// converted.
func (v *ColorView[T, C]) Assign(src any, idx ...int) error {
	c, err := pixel.Convert[T, C](src)
	if err != nil {
		return err
	}
	return v.Set(c, idx...)
}

// AtLinear implements the [array.Linear] interface.
func (v *ColorView[T, C]) AtLinear(i int) (C, error) {
	if v.IndexStyle() == array.IndexLinear {
		var c C
		x, err := v.parent.(array.Linear[T]).AtLinear(i)
		if err != nil {
			return c, err
		}
		return c.WithComponents([pixel.MaxArity]T{x}), nil
	}
	idx := make([]int, len(v.shape))
	if err := array.Unravel(v.shape, i, idx); err != nil {
		var c C
		return c, err
	}
	return v.At(idx...)
}

// SetLinear implements the [array.Linear] interface.
func (v *ColorView[T, C]) SetLinear(c C, i int) error {
	if v.IndexStyle() == array.IndexLinear {
		return v.parent.(array.Linear[T]).SetLinear(c.Components()[0], i)
	}
	idx := make([]int, len(v.shape))
	if err := array.Unravel(v.shape, i, idx); err != nil {
		return err
	}
	return v.Set(c, idx...)
}

// Similar allocates a new array of scalars and returns a color view of it.
// If no shape is given, the shape of v is used.
func (v *ColorView[T, C]) Similar(shape ...int) (*ColorView[T, C], error) {
	return SimilarColorView[T, C](v, shape...)
}

// SimilarColorView allocates a new array of scalars of type T2 and returns a
// color view of it, presenting the samples as pixels of type C2.  If no shape
// is given, the shape of v is used.
func SimilarColorView[T2 pixel.Scalar, C2 pixel.Color[T2, C2], T pixel.Scalar, C pixel.Color[T, C]](v *ColorView[T, C], shape ...int) (*ColorView[T2, C2], error) {
	if len(shape) == 0 {
		shape = v.shape
	}
	if err := checkExtents("chanview.SimilarColorView", shape); err != nil {
		return nil, err
	}
	var c2 C2
	parent := array.NewDense[T2](ChannelViewShape(shape, c2.Layout().Arity)...)
	return NewColorView[T2, C2](parent)
}

// SimilarScalar allocates a new plain array of scalars of type E.
// Unlike [SimilarColorView], the result is not wrapped in a view.
// If no shape is given, the shape of v is used.
func SimilarScalar[E any, T pixel.Scalar, C pixel.Color[T, C]](v *ColorView[T, C], shape ...int) (*array.Dense[E], error) {
	if len(shape) == 0 {
		shape = v.shape
	}
	if err := checkExtents("chanview.SimilarScalar", shape); err != nil {
		return nil, err
	}
	return array.NewDense[E](shape...), nil
}

func (v *ColorView[T, C]) String() string {
	return fmt.Sprintf("ColorView[%s] %v", v.Layout(), v.shape)
}

// parentIndex returns a parent index with room for the channel number in
// position 0, followed by idx.  The slice escapes through the call to the
// parent's At or Set, so it is allocated on every access.
func parentIndex(idx []int) []int {
	pidx := make([]int, len(idx)+1)
	copy(pidx[1:], idx)
	return pidx
}
