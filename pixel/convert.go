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

import (
	"fmt"
	"math"
)

// ConversionError is returned when a pixel value cannot be converted to the
// requested pixel type.
type ConversionError struct {
	From, To string
}

func (err *ConversionError) Error() string {
	return "cannot convert " + err.From + " to " + err.To
}

// TypeName returns the Go type name of the pixel type C, for use in error
// messages.
func TypeName[C any]() string {
	var c C
	return fmt.Sprintf("%T", c)
}

// Convert converts a pixel value of any type to type C.
//
// Components are matched by role.  If C has an alpha channel but src has
// none, the result is opaque.  If C has red, green and blue components but
// src only has luminance, the luminance is copied to all three.  Scalars are
// converted using Go's numeric conversion rules; the value range is not
// rescaled.
//
// If src is neither a C nor a [Source], or if some component of C has no
// counterpart in src, a *ConversionError is returned.
func Convert[T Scalar, C Color[T, C]](src any) (C, error) {
	var zero C
	if c, ok := src.(C); ok {
		return c, nil
	}
	s, ok := src.(Source)
	if !ok {
		return zero, &ConversionError{From: fmt.Sprintf("%T", src), To: TypeName[C]()}
	}

	from := s.Layout()
	to := zero.Layout()
	vals := s.Float64s()
	lum := from.Index(Luminance)

	var comps [MaxArity]T
	for i := 0; i < to.Arity; i++ {
		role := to.Roles[i]
		j := from.Index(role)
		switch {
		case j >= 0:
			comps[i] = T(vals[j])
		case role == Alpha:
			comps[i] = Opaque[T]()
		case (role == Red || role == Green || role == Blue) && lum >= 0:
			comps[i] = T(vals[lum])
		default:
			return zero, &ConversionError{From: fmt.Sprintf("%T", src), To: TypeName[C]()}
		}
	}
	return zero.WithComponents(comps), nil
}

// Opaque returns the alpha value of a fully opaque pixel: 1 for floating
// point types and the maximum value for integer types.
func Opaque[T Scalar]() T {
	var x T
	switch p := any(&x).(type) {
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *uint:
		*p = math.MaxUint
	case *uintptr:
		*p = ^uintptr(0)
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *int:
		*p = math.MaxInt
	default:
		// named scalar types
		x = 1
	}
	return x
}
