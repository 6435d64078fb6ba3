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

// Package pixel describes composite pixel values.
//
// A pixel value is a small immutable tuple of scalar components, for example
// the red, green and blue intensities of one sample.  Every pixel type
// carries a [Layout] which records the number of components, their roles, and
// the order in which a constructor expects them.  This constructor order is
// not necessarily the order of the fields in memory: a [BGR] value stores
// blue first, but its components are always listed as red, green, blue.
//
// The [Color] constraint gives generic code access to the components of a
// pixel value:
//
//	c := pixel.NewBGR[uint8](10, 20, 30)
//	comps := pixel.Decompose[uint8](c)          // [10 20 30 0]
//	c2 := pixel.WithComponent[uint8](c, 1, 99)  // green replaced
//
// Layouts marked as trivial have a memory representation identical to an
// array of their scalar type in constructor order.  Arrays of such pixels can
// be reinterpreted as arrays of scalars without copying.
package pixel
