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

// Package chanview converts between arrays of pixel values and arrays of
// their scalar components, without copying any samples.
//
// A [ChannelView] presents an n-dimensional array of pixels as an
// (n+1)-dimensional array of scalars, with the channel number along the new
// leading axis.  A [ColorView] does the inverse: it presents an array of
// scalars as an array of pixels, consuming the leading axis.  Pixel types
// with a single component, such as [pixel.Gray], do not gain or lose an axis
// (see [SqueezeSingleChannel]).
//
// Both views share storage with the array they wrap: writing to a view
// changes the parent array, and vice versa.
//
// The functions [ToChannelView] and [ToColorView] choose the cheapest
// representation for a given array.  They unwrap existing views, reinterpret
// dense storage when the memory layouts coincide, and fall back to the
// generic views otherwise:
//
//	img := array.NewDense[pixel.RGB[float32]](640, 480)
//	samples, err := chanview.ToChannelView[float32, pixel.RGB[float32]](img) // shape (3, 640, 480)
//	back, err := chanview.ToColorView[float32, pixel.RGB[float32]](samples)
//	// back == img
//
// Indices are 0-based, and dense arrays are stored in column-major order, so
// that the channel axis varies fastest in memory.
//
// Views perform no synchronization.  Concurrent writes through a view, or
// through a view and its parent, must be coordinated by the caller.
package chanview
