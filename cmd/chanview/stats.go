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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/chanview"
	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/imageio"
	"seehuhn.de/go/chanview/pixel"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print per-channel statistics of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var statsFormat string

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(statsCmd)
}

type report struct {
	File       string         `yaml:"file" json:"file"`
	Format     string         `yaml:"format" json:"format"`
	Shape      []int          `yaml:"shape,flow" json:"shape"`
	IndexStyle string         `yaml:"index_style" json:"index_style"`
	Channels   []channelStats `yaml:"channels" json:"channels"`
}

type channelStats struct {
	Role string  `yaml:"role" json:"role"`
	Min  uint8   `yaml:"min" json:"min"`
	Max  uint8   `yaml:"max" json:"max"`
	Mean float64 `yaml:"mean" json:"mean"`
}

func runStats(cmd *cobra.Command, args []string) error {
	switch statsFormat {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q", statsFormat)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, format, err := imageio.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	samples, err := chanview.ToChannelView[uint8, pixel.RGBA[uint8]](img)
	if err != nil {
		return err
	}
	cmd.PrintErrf("%s: %s image, channel view %T\n", path, format, samples)

	channels, err := computeStats(samples, pixel.LayoutRGBA)
	if err != nil {
		return err
	}
	rep := &report{
		File:       path,
		Format:     format,
		Shape:      samples.Shape(),
		IndexStyle: array.Style(samples).String(),
		Channels:   channels,
	}
	return writeReport(cmd.OutOrStdout(), rep, statsFormat)
}

// computeStats summarises every channel of a channel view with the given
// pixel layout.  The leading axis of samples must be the channel axis.
func computeStats(samples array.Array[uint8], l pixel.Layout) ([]channelStats, error) {
	if err := chanview.CheckLeadingDim(samples.Shape(), l.Arity); err != nil {
		return nil, err
	}
	k := l.Arity
	n := array.Len(samples.Shape())

	res := make([]channelStats, k)
	sums := make([]float64, k)
	for ch := range res {
		res[ch].Role = l.Roles[ch].String()
		res[ch].Min = 255
	}
	for i := 0; i < n; i++ {
		x, err := array.GetLinear(samples, i)
		if err != nil {
			return nil, err
		}
		ch := i % k
		res[ch].Min = min(res[ch].Min, x)
		res[ch].Max = max(res[ch].Max, x)
		sums[ch] += float64(x)
	}

	count := n / k
	for ch := range res {
		if count == 0 {
			res[ch].Min = 0
			continue
		}
		res[ch].Mean = sums[ch] / float64(count)
	}
	return res, nil
}

func writeReport(w io.Writer, rep *report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "File:        %s\n", rep.File)
	fmt.Fprintf(w, "Format:      %s\n", rep.Format)
	fmt.Fprintf(w, "Shape:       %v\n", rep.Shape)
	fmt.Fprintf(w, "Index style: %s\n", rep.IndexStyle)
	for _, c := range rep.Channels {
		fmt.Fprintf(w, "  %s: min %3d  max %3d  mean %7.3f\n", c.Role, c.Min, c.Max, c.Mean)
	}
	return nil
}
