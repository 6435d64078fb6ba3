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

// Package imageio converts between Go images and pixel arrays.
//
// Arrays use column-major order with shape (width, height), so that the pixel
// at image coordinates (x, y) is found at index (x, y) and the memory layout
// of tightly packed images is shared without copying.
package imageio

import (
	"errors"
	"image"
	"io"

	// register the standard codecs with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	// register additional codecs with image.Decode
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/pixel"
)

var errRank = errors.New("imageio: image arrays must have rank 2")

// Decode reads an image in any of the registered formats and returns it as an
// array of RGBA pixels, together with the format name.
func Decode(r io.Reader) (*array.Dense[pixel.RGBA[uint8]], string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

// FromImage converts an arbitrary image to an array of non-premultiplied
// RGBA pixels.  Images of type *image.NRGBA share their storage with the
// result if possible; all other images are copied.
func FromImage(src image.Image) *array.Dense[pixel.RGBA[uint8]] {
	if img, ok := src.(*image.NRGBA); ok {
		return FromNRGBA(img)
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return FromNRGBA(img)
}

// FromNRGBA returns an array of shape (width, height) holding the pixels of
// img.  If the rows of img are tightly packed, the array shares storage with
// img.
func FromNRGBA(img *image.NRGBA) *array.Dense[pixel.RGBA[uint8]] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if img.Stride == 4*w && len(img.Pix) >= 4*w*h {
		samples, err := array.FromSlice(img.Pix[:4*w*h], 4, w, h)
		if err == nil {
			res, err := array.Reinterpret[pixel.RGBA[uint8]](samples, w, h)
			if err == nil {
				return res
			}
		}
	}

	res := array.NewDense[pixel.RGBA[uint8]](w, h)
	data := res.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			data[x+y*w] = pixel.NewRGBA(c.R, c.G, c.B, c.A)
		}
	}
	return res
}

// FromGray returns an array of shape (width, height) holding the pixels of
// img.  If the rows of img are tightly packed, the array shares storage with
// img.
func FromGray(img *image.Gray) *array.Dense[pixel.Gray[uint8]] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if img.Stride == w && len(img.Pix) >= w*h {
		samples, err := array.FromSlice(img.Pix[:w*h], w, h)
		if err == nil {
			res, err := array.Reinterpret[pixel.Gray[uint8]](samples, w, h)
			if err == nil {
				return res
			}
		}
	}

	res := array.NewDense[pixel.Gray[uint8]](w, h)
	data := res.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[x+y*w] = pixel.NewGray(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	return res
}

// ToNRGBA copies a rank 2 array of RGBA pixels into a new image.
func ToNRGBA(a array.Array[pixel.RGBA[uint8]]) (*image.NRGBA, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, errRank
	}
	w, h := shape[0], shape[1]
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := a.At(x, y)
			if err != nil {
				return nil, err
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img, nil
}

// ToGray copies a rank 2 array of gray pixels into a new image.
func ToGray(a array.Array[pixel.Gray[uint8]]) (*image.Gray, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, errRank
	}
	w, h := shape[0], shape[1]
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := a.At(x, y)
			if err != nil {
				return nil, err
			}
			img.Pix[img.PixOffset(x, y)] = c.Y
		}
	}
	return img, nil
}
