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

package pixel

// Color is the constraint satisfied by pixel value types.
//
// C is the pixel type itself, so that WithComponents can return a value of
// the same type.  Generic code is written as
//
//	func F[T pixel.Scalar, C pixel.Color[T, C]](c C) { ... }
type Color[T Scalar, C any] interface {
	comparable

	// Layout describes the components of the pixel type.
	// The result does not depend on the receiver.
	Layout() Layout

	// Components returns the components in constructor order.
	// Entries beyond the arity are zero.
	Components() [MaxArity]T

	// WithComponents returns a new value built from the given components in
	// constructor order.  The receiver is not used.
	WithComponents(c [MaxArity]T) C
}

// Source is implemented by pixel values whose components can be read without
// knowing their scalar type.  All pixel types in this package implement
// Source.
type Source interface {
	Layout() Layout
	Float64s() [MaxArity]float64
}

// Decompose returns the components of c in constructor order.
func Decompose[T Scalar, C Color[T, C]](c C) [MaxArity]T {
	return c.Components()
}

// Recompose builds a pixel value from components in constructor order.
func Recompose[T Scalar, C Color[T, C]](comps [MaxArity]T) C {
	var c C
	return c.WithComponents(comps)
}

// WithComponent returns a copy of c where the component at constructor
// position pos has been replaced by v.  All other components are unchanged.
//
// WithComponent panics if pos is outside the range [0, Arity).
func WithComponent[T Scalar, C Color[T, C]](c C, pos int, v T) C {
	if pos < 0 || pos >= c.Layout().Arity {
		panic("pixel: component position out of range")
	}
	comps := c.Components()
	comps[pos] = v
	return c.WithComponents(comps)
}

// Component returns the component at constructor position pos.
//
// Component panics if pos is outside the range [0, Arity).
func Component[T Scalar, C Color[T, C]](c C, pos int) T {
	if pos < 0 || pos >= c.Layout().Arity {
		panic("pixel: component position out of range")
	}
	return c.Components()[pos]
}

func float64s[T Scalar](comps [MaxArity]T) [MaxArity]float64 {
	var res [MaxArity]float64
	for i, x := range comps {
		res[i] = float64(x)
	}
	return res
}
