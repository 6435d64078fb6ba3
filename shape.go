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
	"slices"

	"seehuhn.de/go/chanview/array"
)

// SqueezeSingleChannel controls whether channel views of single-component
// pixel types omit the channel axis.  If set, a channel view of an array of
// [pixel.Gray] values has the same shape as the array itself, instead of
// gaining a leading axis of length 1.
const SqueezeSingleChannel = true

// squeezed reports whether pixel types with k components are viewed without
// a channel axis.
func squeezed(k int) bool {
	return SqueezeSingleChannel && k == 1
}

// ChannelViewRank returns the number of axes of a channel view over an
// n-dimensional array of pixels with k components.
func ChannelViewRank(n, k int) int {
	if squeezed(k) {
		return n
	}
	return n + 1
}

// ColorViewRank returns the number of axes of a color view over an
// n-dimensional array of scalars, where every pixel has k components.
// The result is negative if the array has no leading axis to consume.
func ColorViewRank(n, k int) int {
	if squeezed(k) {
		return n
	}
	return n - 1
}

// ChannelViewShape returns the shape of a channel view over an array of
// pixels with k components.  The result is (k, parent...), or parent
// itself if the channel axis is squeezed.
func ChannelViewShape(parent []int, k int) []int {
	if squeezed(k) {
		return slices.Clone(parent)
	}
	shape := make([]int, 0, len(parent)+1)
	shape = append(shape, k)
	return append(shape, parent...)
}

// ColorViewShape returns the shape of a color view over an array of scalars
// with the given shape, where every pixel has k components.  This is the
// parent shape without its leading axis, or the parent shape itself if the
// channel axis is squeezed.  ColorViewShape is also used to find the parent
// shape of a channel view with a given shape.
//
// The caller must have checked the shape using [CheckLeadingDim].
func ColorViewShape(parent []int, k int) []int {
	if squeezed(k) {
		return slices.Clone(parent)
	}
	return slices.Clone(parent[1:])
}

// SplitIndex splits an index into a channel view into the channel number
// and the index into the parent array.  For squeezed views the channel is
// always 0 and the parent index is idx itself.  The returned slice shares
// storage with idx.
func SplitIndex(idx []int, k int) (channel int, parent []int) {
	if squeezed(k) {
		return 0, idx
	}
	return idx[0], idx[1:]
}

// CheckLeadingDim verifies that an array of scalars with the given shape
// can hold pixels with k components along its leading axis.  For squeezed
// pixel types every shape is accepted.
func CheckLeadingDim(shape []int, k int) error {
	if squeezed(k) {
		return nil
	}
	if len(shape) == 0 {
		return &array.ShapeError{
			Op:   "chanview",
			Msg:  "no leading channel axis",
			Want: 1,
			Got:  0,
		}
	}
	if shape[0] != k {
		return &array.ShapeError{
			Op:   "chanview",
			Msg:  "leading axis length must equal the number of components",
			Want: k,
			Got:  shape[0],
		}
	}
	return nil
}

// checkExtents verifies that no axis of shape has a negative length.
func checkExtents(op string, shape []int) error {
	for _, n := range shape {
		if n < 0 {
			return &array.ShapeError{Op: op, Msg: "negative extent"}
		}
	}
	return nil
}
