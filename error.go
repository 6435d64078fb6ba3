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

import "seehuhn.de/go/chanview/array"

// These errors are re-exported from the array package, so that callers can
// check views with errors.Is without importing it.
var (
	ErrOutOfBounds   = array.ErrOutOfBounds
	ErrShapeMismatch = array.ErrShapeMismatch
)

// ColorspaceChangeError is returned when an array of one pixel type is
// requested as an array of a different pixel type.  Changing the pixel
// type requires converting every sample and cannot be done by a view.
type ColorspaceChangeError struct {
	From, To string
}

func (err *ColorspaceChangeError) Error() string {
	return "cannot reinterpret " + err.From + " as " + err.To + ": color space change"
}
