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
	"errors"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types which can be used as pixel components.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Role identifies the meaning of one pixel component.
type Role uint8

// These are the supported component roles.
const (
	Luminance Role = iota + 1
	Red
	Green
	Blue
	Alpha
)

func (r Role) String() string {
	switch r {
	case Luminance:
		return "Y"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Alpha:
		return "A"
	default:
		return "?"
	}
}

// MaxArity is the largest number of components a pixel value can have.
const MaxArity = 4

// Layout describes the components of a pixel type.
type Layout struct {
	// Name is the name of the color model, for example "RGB".
	Name string

	// Arity is the number of components, between 1 and MaxArity.
	Arity int

	// Roles lists the component roles in constructor order.
	// Only the first Arity entries are used.
	Roles [MaxArity]Role

	// Trivial is set if the memory representation of the pixel type is
	// identical to an array of Arity scalars in constructor order.
	Trivial bool
}

// Predefined layouts for the pixel types in this package.
var (
	LayoutGray  = Layout{Name: "Gray", Arity: 1, Roles: [4]Role{Luminance}, Trivial: true}
	LayoutGrayA = Layout{Name: "GrayA", Arity: 2, Roles: [4]Role{Luminance, Alpha}, Trivial: true}
	LayoutRGB   = Layout{Name: "RGB", Arity: 3, Roles: [4]Role{Red, Green, Blue}, Trivial: true}
	LayoutBGR   = Layout{Name: "BGR", Arity: 3, Roles: [4]Role{Red, Green, Blue}}
	LayoutRGBA  = Layout{Name: "RGBA", Arity: 4, Roles: [4]Role{Red, Green, Blue, Alpha}, Trivial: true}
	LayoutARGB  = Layout{Name: "ARGB", Arity: 4, Roles: [4]Role{Red, Green, Blue, Alpha}}
	LayoutBGRA  = Layout{Name: "BGRA", Arity: 4, Roles: [4]Role{Red, Green, Blue, Alpha}}
	LayoutRGBX  = Layout{Name: "RGBX", Arity: 3, Roles: [4]Role{Red, Green, Blue}}
)

var errArity = errors.New("pixel layout: arity must be between 1 and 4")

// Validate checks that the layout is well-formed.
func (l Layout) Validate() error {
	if l.Arity < 1 || l.Arity > MaxArity {
		return errArity
	}
	for i := 0; i < l.Arity; i++ {
		if l.Roles[i] < Luminance || l.Roles[i] > Alpha {
			return errors.New("pixel layout " + l.Name + ": invalid component role")
		}
		for j := 0; j < i; j++ {
			if l.Roles[j] == l.Roles[i] {
				return errors.New("pixel layout " + l.Name + ": duplicate role " + l.Roles[i].String())
			}
		}
	}
	for i := l.Arity; i < MaxArity; i++ {
		if l.Roles[i] != 0 {
			return errors.New("pixel layout " + l.Name + ": role beyond arity")
		}
	}
	return nil
}

// HasAlpha reports whether one of the components is an alpha channel.
func (l Layout) HasAlpha() bool {
	return l.Index(Alpha) >= 0
}

// Index returns the constructor position of the component with the given
// role, or -1 if the layout has no such component.
func (l Layout) Index(r Role) int {
	for i := 0; i < l.Arity; i++ {
		if l.Roles[i] == r {
			return i
		}
	}
	return -1
}

// String returns the layout name followed by the component order,
// e.g. "BGR(R,G,B)".
func (l Layout) String() string {
	parts := make([]string, l.Arity)
	for i := range parts {
		parts[i] = l.Roles[i].String()
	}
	return l.Name + "(" + strings.Join(parts, ",") + ")"
}

// IsTrivial reports whether arrays of C can be reinterpreted as arrays of T
// without copying.  This requires the layout of C to be marked as trivial,
// and the size of C to equal the size of its components.
func IsTrivial[T Scalar, C Color[T, C]]() bool {
	var c C
	var x T
	l := c.Layout()
	return l.Trivial && unsafe.Sizeof(c) == uintptr(l.Arity)*unsafe.Sizeof(x)
}
