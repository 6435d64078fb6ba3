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

// ChannelView presents an array of pixel values as an array of scalars.
// The channel number becomes a new leading axis, unless the pixel type has
// a single component and [SqueezeSingleChannel] is set.
//
// A ChannelView does not store any samples.  All reads and writes go to the
// parent array.
type ChannelView[T pixel.Scalar, C pixel.Color[T, C]] struct {
	parent array.Array[C]
	shape  []int
	k      int
}

// compile-time interface checks
var (
	_ array.Linear[float32] = (*ChannelView[float32, pixel.RGB[float32]])(nil)
	_ array.Styler          = (*ChannelView[float32, pixel.RGB[float32]])(nil)
)

// NewChannelView returns a channel view of parent.
func NewChannelView[T pixel.Scalar, C pixel.Color[T, C]](parent array.Array[C]) (*ChannelView[T, C], error) {
	var c C
	l := c.Layout()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &ChannelView[T, C]{
		parent: parent,
		shape:  ChannelViewShape(parent.Shape(), l.Arity),
		k:      l.Arity,
	}, nil
}

// Parent returns the array of pixel values the view was created from.
func (v *ChannelView[T, C]) Parent() array.Array[C] {
	return v.parent
}

// Layout returns the layout of the pixel type C.
func (v *ChannelView[T, C]) Layout() pixel.Layout {
	var c C
	return c.Layout()
}

// Shape implements the [array.Array] interface.
func (v *ChannelView[T, C]) Shape() []int {
	return v.shape
}

// Len implements the [array.Linear] interface.
func (v *ChannelView[T, C]) Len() int {
	return array.Len(v.shape)
}

// IndexStyle implements the [array.Styler] interface.
// A channel view can only be addressed linearly if the channel axis is
// squeezed and the parent array supports linear indexing.
func (v *ChannelView[T, C]) IndexStyle() array.IndexStyle {
	if squeezed(v.k) {
		return array.Style(v.parent)
	}
	return array.IndexCartesian
}

// At implements the [array.Array] interface.
func (v *ChannelView[T, C]) At(idx ...int) (T, error) {
	if err := array.CheckIndex(v.shape, idx); err != nil {
		var zero T
		return zero, err
	}
	ch, pidx := SplitIndex(idx, v.k)
	c, err := v.parent.At(pidx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Components()[ch], nil
}

// Set implements the [array.Array] interface.
// Only the addressed component of the pixel is changed.
func (v *ChannelView[T, C]) Set(x T, idx ...int) error {
	if err := array.CheckIndex(v.shape, idx); err != nil {
		return err
	}
	ch, pidx := SplitIndex(idx, v.k)
	c, err := v.parent.At(pidx...)
	if err != nil {
		return err
	}
	return v.parent.Set(pixel.WithComponent[T](c, ch, x), pidx...)
}

// AtLinear implements the [array.Linear] interface.
func (v *ChannelView[T, C]) AtLinear(i int) (T, error) {
	if v.IndexStyle() == array.IndexLinear {
		c, err := v.parent.(array.Linear[C]).AtLinear(i)
		if err != nil {
			var zero T
			return zero, err
		}
		return c.Components()[0], nil
	}
	idx := make([]int, len(v.shape))
	if err := array.Unravel(v.shape, i, idx); err != nil {
		var zero T
		return zero, err
	}
	return v.At(idx...)
}

// SetLinear implements the [array.Linear] interface.
func (v *ChannelView[T, C]) SetLinear(x T, i int) error {
	if v.IndexStyle() == array.IndexLinear {
		p := v.parent.(array.Linear[C])
		c, err := p.AtLinear(i)
		if err != nil {
			return err
		}
		return p.SetLinear(pixel.WithComponent[T](c, 0, x), i)
	}
	idx := make([]int, len(v.shape))
	if err := array.Unravel(v.shape, i, idx); err != nil {
		return err
	}
	return v.Set(x, idx...)
}

// Similar allocates a new array of pixels of type C and returns a channel
// view of it.  If no shape is given, the shape of v is used.  Otherwise the
// leading axis of the shape must equal the number of components of C
// (unless the channel axis is squeezed).
func (v *ChannelView[T, C]) Similar(shape ...int) (*ChannelView[T, C], error) {
	return SimilarChannelView[T, C](v, shape...)
}

// SimilarChannelView allocates a new array of pixels of type C2 and returns a
// channel view of it.  C2 must use the same color model as the pixels of v,
// but may use a different scalar type.  If no shape is given, the shape of v
// is used.
func SimilarChannelView[T2 pixel.Scalar, C2 pixel.Color[T2, C2], T pixel.Scalar, C pixel.Color[T, C]](v *ChannelView[T, C], shape ...int) (*ChannelView[T2, C2], error) {
	var c C
	var c2 C2
	if c.Layout().Name != c2.Layout().Name {
		return nil, &ColorspaceChangeError{From: pixel.TypeName[C](), To: pixel.TypeName[C2]()}
	}
	if len(shape) == 0 {
		shape = v.shape
	}
	if err := checkExtents("chanview.SimilarChannelView", shape); err != nil {
		return nil, err
	}
	k := c2.Layout().Arity
	if err := CheckLeadingDim(shape, k); err != nil {
		return nil, err
	}
	parent := array.NewDense[C2](ColorViewShape(shape, k)...)
	return NewChannelView[T2, C2](parent)
}

func (v *ChannelView[T, C]) String() string {
	return fmt.Sprintf("ChannelView[%s] %v", v.Layout(), v.shape)
}

// parentArray and pixelType allow the dispatch functions to recognize a
// channel view without knowing its pixel type.
func (v *ChannelView[T, C]) parentArray() any { return v.parent }
func (v *ChannelView[T, C]) pixelType() string { return pixel.TypeName[C]() }
