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
	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/pixel"
)

// channelViewer is implemented by all ChannelView types.
type channelViewer interface {
	parentArray() any
	pixelType() string
}

// ToChannelView returns an array of scalars which presents the components of
// the pixels in a, using the cheapest available representation:
//
//   - If a is a [ColorView], its parent is returned.
//   - If a is a dense array and C has a trivial layout, the storage of a is
//     reinterpreted as an array of scalars.
//   - Otherwise, a [ChannelView] of a is returned.
//
// In all cases the result shares storage with a.
func ToChannelView[T pixel.Scalar, C pixel.Color[T, C]](a array.Array[C]) (array.Array[T], error) {
	if cv, ok := a.(*ColorView[T, C]); ok {
		return cv.parent, nil
	}
	if d, ok := a.(*array.Dense[C]); ok && pixel.IsTrivial[T, C]() {
		var c C
		r, err := array.Reinterpret[T](d, ChannelViewShape(d.Shape(), c.Layout().Arity)...)
		if err == nil {
			return r, nil
		}
	}
	v, err := NewChannelView[T, C](a)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ToColorView returns an array of pixels of type C which presents the
// samples in a, using the cheapest available representation:
//
//   - If a is a [ChannelView] of an array of C, that array is returned.
//     A *ColorspaceChangeError is returned for channel views of any other
//     pixel type.
//   - If a is a dense array and C has a trivial layout, the storage of a is
//     reinterpreted as an array of pixels.
//   - Otherwise, a [ColorView] of a is returned.
//
// In all cases the result shares storage with a.
func ToColorView[T pixel.Scalar, C pixel.Color[T, C]](a array.Array[T]) (array.Array[C], error) {
	if cv, ok := a.(channelViewer); ok {
		if p, ok := cv.parentArray().(array.Array[C]); ok {
			return p, nil
		}
		return nil, &ColorspaceChangeError{From: cv.pixelType(), To: pixel.TypeName[C]()}
	}

	var c C
	k := c.Layout().Arity
	if d, ok := a.(*array.Dense[T]); ok && pixel.IsTrivial[T, C]() {
		if err := CheckLeadingDim(d.Shape(), k); err != nil {
			return nil, err
		}
		r, err := array.Reinterpret[C](d, ColorViewShape(d.Shape(), k)...)
		if err == nil {
			return r, nil
		}
	}
	v, err := NewColorView[T, C](a)
	if err != nil {
		return nil, err
	}
	return v, nil
}
