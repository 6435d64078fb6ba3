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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/chanview/array"
	"seehuhn.de/go/chanview/pixel"
)

func rgbPair(t *testing.T) *array.Dense[pixel.RGB[float32]] {
	t.Helper()
	a, err := array.FromSlice([]pixel.RGB[float32]{
		pixel.NewRGB[float32](0.1, 0.2, 0.3),
		pixel.NewRGB[float32](0.4, 0.5, 0.6),
	}, 2)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestChannelViewRGB(t *testing.T) {
	a := rgbPair(t)
	v, err := NewChannelView[float32, pixel.RGB[float32]](a)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]int{3, 2}, v.Shape()); d != "" {
		t.Errorf("shape (-want +got)\n%s", d)
	}
	if v.Len() != 6 {
		t.Errorf("Len: got %d, want 6", v.Len())
	}
	if v.IndexStyle() != array.IndexCartesian {
		t.Errorf("IndexStyle: got %s, want cartesian", v.IndexStyle())
	}

	all, err := array.Collect[float32](v)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	if d := cmp.Diff(want, all); d != "" {
		t.Errorf("elements in linear order (-want +got)\n%s", d)
	}

	x, err := v.AtLinear(3)
	if err != nil {
		t.Fatal(err)
	}
	if x != 0.4 {
		t.Errorf("AtLinear(3): got %g, want 0.4", x)
	}

	x, err = v.At(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if x != 0.6 {
		t.Errorf("At(2, 1): got %g, want 0.6", x)
	}

	if err := v.SetLinear(0.8, 1); err != nil {
		t.Fatal(err)
	}
	p, _ := a.At(0)
	if d := cmp.Diff(pixel.NewRGB[float32](0.1, 0.8, 0.3), p); d != "" {
		t.Errorf("pixel 0 after write (-want +got)\n%s", d)
	}
	p, _ = a.At(1)
	if d := cmp.Diff(pixel.NewRGB[float32](0.4, 0.5, 0.6), p); d != "" {
		t.Errorf("pixel 1 must be unchanged (-want +got)\n%s", d)
	}
}

func TestChannelViewGraySqueeze(t *testing.T) {
	a, err := array.FromSlice([]pixel.Gray[float32]{
		pixel.NewGray[float32](0.1),
		pixel.NewGray[float32](0.2),
	}, 2)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewChannelView[float32, pixel.Gray[float32]](a)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{2}, v.Shape()); d != "" {
		t.Errorf("shape (-want +got)\n%s", d)
	}
	if v.IndexStyle() != array.IndexLinear {
		t.Errorf("IndexStyle: got %s, want linear", v.IndexStyle())
	}

	if err := v.Set(0.7, 1); err != nil {
		t.Fatal(err)
	}
	p, _ := a.At(1)
	if p.Y != 0.7 {
		t.Errorf("write through: got %g, want 0.7", p.Y)
	}
	x, err := v.AtLinear(1)
	if err != nil {
		t.Fatal(err)
	}
	if x != 0.7 {
		t.Errorf("AtLinear(1): got %g, want 0.7", x)
	}
	if err := v.SetLinear(0.9, 0); err != nil {
		t.Fatal(err)
	}
	p, _ = a.At(0)
	if p.Y != 0.9 {
		t.Errorf("SetLinear: got %g, want 0.9", p.Y)
	}
}

func TestChannelViewBounds(t *testing.T) {
	v, err := NewChannelView[float32, pixel.RGB[float32]](rgbPair(t))
	if err != nil {
		t.Fatal(err)
	}

	bad := [][]int{
		{-1, 0},
		{3, 0},
		{0, -1},
		{0, 2},
		{0},
		{0, 0, 0},
	}
	for _, idx := range bad {
		if _, err := v.At(idx...); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%v): expected ErrOutOfBounds, got %v", idx, err)
		}
		if err := v.Set(1, idx...); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v): expected ErrOutOfBounds, got %v", idx, err)
		}
	}
	for _, i := range []int{-1, 6} {
		if _, err := v.AtLinear(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("AtLinear(%d): expected ErrOutOfBounds, got %v", i, err)
		}
		if err := v.SetLinear(1, i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetLinear(%d): expected ErrOutOfBounds, got %v", i, err)
		}
	}
}

// Writing one channel must leave the other channels of the pixel alone,
// for every layout.
func TestChannelViewSingleChannelWrite(t *testing.T) {
	a := array.NewDense[pixel.BGRA[uint8]](3)
	for i := 0; i < 3; i++ {
		a.Set(pixel.NewBGRA[uint8](10, 20, 30, 40), i)
	}
	v, err := NewChannelView[uint8, pixel.BGRA[uint8]](a)
	if err != nil {
		t.Fatal(err)
	}
	for ch := 0; ch < 4; ch++ {
		if err := v.Set(99, ch, ch%3); err != nil {
			t.Fatal(err)
		}
	}

	want := []pixel.BGRA[uint8]{
		pixel.NewBGRA[uint8](99, 20, 30, 99),
		pixel.NewBGRA[uint8](10, 99, 30, 40),
		pixel.NewBGRA[uint8](10, 20, 99, 40),
	}
	if d := cmp.Diff(want, a.Data()); d != "" {
		t.Errorf("pixels after channel writes (-want +got)\n%s", d)
	}

	// channel order is constructor order, not memory order
	if a.Data()[1].G != 99 || a.Data()[2].B != 99 {
		t.Error("channels written in memory order")
	}
}

func TestChannelViewStridedParent(t *testing.T) {
	a := array.NewDense[pixel.Gray[uint16]](4, 3)
	s, err := a.Section(0, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewChannelView[uint16, pixel.Gray[uint16]](s)
	if err != nil {
		t.Fatal(err)
	}
	if v.IndexStyle() != array.IndexCartesian {
		t.Errorf("IndexStyle over strided parent: got %s, want cartesian", v.IndexStyle())
	}
	if d := cmp.Diff([]int{2, 3}, v.Shape()); d != "" {
		t.Errorf("shape (-want +got)\n%s", d)
	}

	// linear index 3 is (1, 1) in the view and (2, 1) in the dense array
	if err := v.SetLinear(7, 3); err != nil {
		t.Fatal(err)
	}
	p, _ := a.At(2, 1)
	if p.Y != 7 {
		t.Errorf("write through section: got %d, want 7", p.Y)
	}
}

func TestChannelViewSimilar(t *testing.T) {
	v, err := NewChannelView[float32, pixel.RGB[float32]](rgbPair(t))
	if err != nil {
		t.Fatal(err)
	}

	s, err := v.Similar()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(v.Shape(), s.Shape()); d != "" {
		t.Errorf("Similar shape (-want +got)\n%s", d)
	}
	if s.Parent() == v.Parent() {
		t.Error("Similar must allocate new storage")
	}

	s, err = v.Similar(3, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{3, 4, 5}, s.Shape()); d != "" {
		t.Errorf("Similar(3, 4, 5) shape (-want +got)\n%s", d)
	}
	if d := cmp.Diff([]int{4, 5}, s.Parent().Shape()); d != "" {
		t.Errorf("Similar(3, 4, 5) parent shape (-want +got)\n%s", d)
	}

	if _, err := v.Similar(4, 5); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Similar(4, 5): expected ErrShapeMismatch, got %v", err)
	}

	u, err := SimilarChannelView[uint8, pixel.RGB[uint8]](v, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{3, 7}, u.Shape()); d != "" {
		t.Errorf("SimilarChannelView shape (-want +got)\n%s", d)
	}

	_, err = SimilarChannelView[float32, pixel.BGR[float32]](v)
	var csErr *ColorspaceChangeError
	if !errors.As(err, &csErr) {
		t.Errorf("SimilarChannelView to BGR: expected ColorspaceChangeError, got %v", err)
	}
}

func TestChannelViewSimilarNegativeExtent(t *testing.T) {
	v, err := NewChannelView[float32, pixel.RGB[float32]](rgbPair(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, shape := range [][]int{{3, -1}, {3, 2, -5}} {
		if _, err := v.Similar(shape...); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("Similar(%v): expected ErrShapeMismatch, got %v", shape, err)
		}
	}
	g, err := NewChannelView[uint8, pixel.Gray[uint8]](array.NewDense[pixel.Gray[uint8]](2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := SimilarChannelView[float32, pixel.Gray[float32]](g, -1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("squeezed Similar(-1): expected ErrShapeMismatch, got %v", err)
	}
}

func TestChannelViewString(t *testing.T) {
	v, err := NewChannelView[float32, pixel.BGR[float32]](array.NewDense[pixel.BGR[float32]](5))
	if err != nil {
		t.Fatal(err)
	}
	want := "ChannelView[BGR(R,G,B)] [3 5]"
	if got := v.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
