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

// Gray is a single-component luminance value.
type Gray[T Scalar] struct {
	Y T
}

// GrayA is a luminance value with alpha.
type GrayA[T Scalar] struct {
	Y, A T
}

// RGB is a red, green, blue triple, stored in this order.
type RGB[T Scalar] struct {
	R, G, B T
}

// BGR stores the same components as RGB, but with blue first in memory.
// The constructor order is still red, green, blue.
type BGR[T Scalar] struct {
	B, G, R T
}

// RGBA is an RGB value followed by alpha.
type RGBA[T Scalar] struct {
	R, G, B, A T
}

// ARGB stores alpha first in memory.
// The constructor order is red, green, blue, alpha.
type ARGB[T Scalar] struct {
	A, R, G, B T
}

// BGRA stores blue, green, red, alpha in memory.
// The constructor order is red, green, blue, alpha.
type BGRA[T Scalar] struct {
	B, G, R, A T
}

// RGBX is an RGB value padded to four scalars.
// The padding is not a component and is zero in values built by this
// package.
type RGBX[T Scalar] struct {
	R, G, B, X T
}

// The following types implement the Color constraint.
var (
	_ = isColor[float32, Gray[float32]]
	_ = isColor[float32, GrayA[float32]]
	_ = isColor[uint8, RGB[uint8]]
	_ = isColor[uint8, BGR[uint8]]
	_ = isColor[uint16, RGBA[uint16]]
	_ = isColor[uint16, ARGB[uint16]]
	_ = isColor[float64, BGRA[float64]]
	_ = isColor[float64, RGBX[float64]]
)

func isColor[T Scalar, C Color[T, C]]() {}

// NewGray returns a Gray value.
func NewGray[T Scalar](y T) Gray[T] { return Gray[T]{Y: y} }

// NewGrayA returns a GrayA value.
func NewGrayA[T Scalar](y, a T) GrayA[T] { return GrayA[T]{Y: y, A: a} }

// NewRGB returns an RGB value.
func NewRGB[T Scalar](r, g, b T) RGB[T] { return RGB[T]{R: r, G: g, B: b} }

// NewBGR returns a BGR value.  The arguments are in constructor order.
func NewBGR[T Scalar](r, g, b T) BGR[T] { return BGR[T]{B: b, G: g, R: r} }

// NewRGBA returns an RGBA value.
func NewRGBA[T Scalar](r, g, b, a T) RGBA[T] { return RGBA[T]{R: r, G: g, B: b, A: a} }

// NewARGB returns an ARGB value.  The arguments are in constructor order.
func NewARGB[T Scalar](r, g, b, a T) ARGB[T] { return ARGB[T]{A: a, R: r, G: g, B: b} }

// NewBGRA returns a BGRA value.  The arguments are in constructor order.
func NewBGRA[T Scalar](r, g, b, a T) BGRA[T] { return BGRA[T]{B: b, G: g, R: r, A: a} }

// NewRGBX returns an RGBX value with zero padding.
func NewRGBX[T Scalar](r, g, b T) RGBX[T] { return RGBX[T]{R: r, G: g, B: b} }

func (Gray[T]) Layout() Layout { return LayoutGray }
func (c Gray[T]) Components() [MaxArity]T { return [MaxArity]T{c.Y} }
func (c Gray[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (Gray[T]) WithComponents(x [MaxArity]T) Gray[T] {
	return Gray[T]{Y: x[0]}
}

func (GrayA[T]) Layout() Layout { return LayoutGrayA }
func (c GrayA[T]) Components() [MaxArity]T { return [MaxArity]T{c.Y, c.A} }
func (c GrayA[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (GrayA[T]) WithComponents(x [MaxArity]T) GrayA[T] {
	return GrayA[T]{Y: x[0], A: x[1]}
}

func (RGB[T]) Layout() Layout { return LayoutRGB }
func (c RGB[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B} }
func (c RGB[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (RGB[T]) WithComponents(x [MaxArity]T) RGB[T] {
	return RGB[T]{R: x[0], G: x[1], B: x[2]}
}

func (BGR[T]) Layout() Layout { return LayoutBGR }
func (c BGR[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B} }
func (c BGR[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (BGR[T]) WithComponents(x [MaxArity]T) BGR[T] {
	return BGR[T]{B: x[2], G: x[1], R: x[0]}
}

func (RGBA[T]) Layout() Layout { return LayoutRGBA }
func (c RGBA[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B, c.A} }
func (c RGBA[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (RGBA[T]) WithComponents(x [MaxArity]T) RGBA[T] {
	return RGBA[T]{R: x[0], G: x[1], B: x[2], A: x[3]}
}

func (ARGB[T]) Layout() Layout { return LayoutARGB }
func (c ARGB[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B, c.A} }
func (c ARGB[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (ARGB[T]) WithComponents(x [MaxArity]T) ARGB[T] {
	return ARGB[T]{A: x[3], R: x[0], G: x[1], B: x[2]}
}

func (BGRA[T]) Layout() Layout { return LayoutBGRA }
func (c BGRA[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B, c.A} }
func (c BGRA[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (BGRA[T]) WithComponents(x [MaxArity]T) BGRA[T] {
	return BGRA[T]{B: x[2], G: x[1], R: x[0], A: x[3]}
}

func (RGBX[T]) Layout() Layout { return LayoutRGBX }
func (c RGBX[T]) Components() [MaxArity]T { return [MaxArity]T{c.R, c.G, c.B} }
func (c RGBX[T]) Float64s() [MaxArity]float64 { return float64s(c.Components()) }

// WithComponents implements the Color constraint.
func (RGBX[T]) WithComponents(x [MaxArity]T) RGBX[T] {
	return RGBX[T]{R: x[0], G: x[1], B: x[2]}
}
