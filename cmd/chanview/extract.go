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

package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chanview"
	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/imageio"
	"seehuhn.de/go/chanview/pixel"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file] [output.png]",
	Short: "Write one channel of an image as a grayscale PNG",
	Args:  cobra.ExactArgs(2),
	RunE:  runExtract,
}

var extractChannel int

func init() {
	extractCmd.Flags().IntVarP(&extractChannel, "channel", "c", 0, "channel number, 0 to 3 for R, G, B, A")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	in, outPath := args[0], args[1]

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := imageio.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}

	plane, err := extractPlane(img, extractChannel)
	if err != nil {
		return err
	}
	gray, err := imageio.ToGray(plane)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	err = png.Encode(out, gray)
	if err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	err = out.Close()
	if err != nil {
		return err
	}

	cmd.PrintErrf("wrote channel %d of %s to %s\n", extractChannel, in, outPath)
	return nil
}

// extractPlane returns one channel of img as an array of gray pixels.
// For dense images the result shares storage with img.
func extractPlane(img array.Array[pixel.RGBA[uint8]], channel int) (array.Array[pixel.Gray[uint8]], error) {
	samples, err := chanview.ToChannelView[uint8, pixel.RGBA[uint8]](img)
	if err != nil {
		return nil, err
	}

	var plane array.Array[uint8]
	if d, ok := samples.(*array.Dense[uint8]); ok {
		s, err := d.Slice(0, channel)
		if err != nil {
			return nil, err
		}
		plane = s
	} else {
		plane, err = copyChannel(samples, channel)
		if err != nil {
			return nil, err
		}
	}

	v, err := chanview.NewColorView[uint8, pixel.Gray[uint8]](plane)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// copyChannel copies one channel out of a channel view into dense storage.
func copyChannel(samples array.Array[uint8], channel int) (*array.Dense[uint8], error) {
	shape := samples.Shape()
	if len(shape) == 0 || channel < 0 || channel >= shape[0] {
		return nil, &array.IndexError{Index: []int{channel}, Shape: shape}
	}
	res := array.NewDense[uint8](shape[1:]...)
	idx := make([]int, len(shape))
	idx[0] = channel
	for i := 0; i < res.Len(); i++ {
		if err := array.Unravel(res.Shape(), i, idx[1:]); err != nil {
			return nil, err
		}
		x, err := samples.At(idx...)
		if err != nil {
			return nil, err
		}
		if err := res.SetLinear(x, i); err != nil {
			return nil, err
		}
	}
	return res, nil
}
