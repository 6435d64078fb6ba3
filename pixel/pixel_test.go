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
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutsValid(t *testing.T) {
	layouts := []Layout{
		LayoutGray, LayoutGrayA, LayoutRGB, LayoutBGR,
		LayoutRGBA, LayoutARGB, LayoutBGRA, LayoutRGBX,
	}
	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", l, err)
		}
	}
}

func TestLayoutInvalid(t *testing.T) {
	cases := []Layout{
		{Name: "empty"},
		{Name: "five", Arity: 5},
		{Name: "dup", Arity: 2, Roles: [4]Role{Red, Red}},
		{Name: "norole", Arity: 1},
		{Name: "extra", Arity: 1, Roles: [4]Role{Red, Green}},
	}
	for _, l := range cases {
		if err := l.Validate(); err == nil {
			t.Errorf("%s: invalid layout accepted", l.Name)
		}
	}
}

func TestLayoutString(t *testing.T) {
	if got := LayoutBGR.String(); got != "BGR(R,G,B)" {
		t.Errorf("got %q", got)
	}
	if got := LayoutGrayA.String(); got != "GrayA(Y,A)" {
		t.Errorf("got %q", got)
	}
}

func TestHasAlpha(t *testing.T) {
	for _, l := range []Layout{LayoutGrayA, LayoutRGBA, LayoutARGB, LayoutBGRA} {
		if !l.HasAlpha() {
			t.Errorf("%s: alpha not found", l)
		}
	}
	for _, l := range []Layout{LayoutGray, LayoutRGB, LayoutBGR, LayoutRGBX} {
		if l.HasAlpha() {
			t.Errorf("%s: unexpected alpha", l)
		}
	}
	if i := LayoutARGB.Index(Alpha); i != 3 {
		t.Errorf("ARGB alpha position: got %d, want 3", i)
	}
}

// TestComponentOrder checks that components are always reported in
// constructor order, independent of the field order in memory.
func TestComponentOrder(t *testing.T) {
	want3 := [4]float32{1, 2, 3, 0}
	want4 := [4]float32{1, 2, 3, 4}
	cases := []struct {
		name string
		got  [4]float32
		want [4]float32
	}{
		{"RGB", Decompose[float32](NewRGB[float32](1, 2, 3)), want3},
		{"BGR", Decompose[float32](NewBGR[float32](1, 2, 3)), want3},
		{"RGBX", Decompose[float32](NewRGBX[float32](1, 2, 3)), want3},
		{"RGBA", Decompose[float32](NewRGBA[float32](1, 2, 3, 4)), want4},
		{"ARGB", Decompose[float32](NewARGB[float32](1, 2, 3, 4)), want4},
		{"BGRA", Decompose[float32](NewBGRA[float32](1, 2, 3, 4)), want4},
		{"Gray", Decompose[float32](NewGray[float32](1)), [4]float32{1}},
		{"GrayA", Decompose[float32](NewGrayA[float32](1, 2)), [4]float32{1, 2}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.want, c.got); d != "" {
			t.Errorf("%s: (-want +got)\n%s", c.name, d)
		}
	}
}

func TestRecompose(t *testing.T) {
	c := Recompose[uint8, BGR[uint8]]([4]uint8{10, 20, 30})
	if c != (BGR[uint8]{B: 30, G: 20, R: 10}) {
		t.Errorf("got %#v", c)
	}
	a := Recompose[uint8, ARGB[uint8]]([4]uint8{1, 2, 3, 4})
	if a != NewARGB[uint8](1, 2, 3, 4) {
		t.Errorf("got %#v", a)
	}
}

func TestWithComponent(t *testing.T) {
	c := NewBGRA[uint8](10, 20, 30, 40)
	for pos := 0; pos < 4; pos++ {
		d := WithComponent[uint8](c, pos, 99)
		want := c.Components()
		want[pos] = 99
		if got := d.Components(); got != want {
			t.Errorf("pos %d: got %v, want %v", pos, got, want)
		}
		if Component[uint8](d, pos) != 99 {
			t.Errorf("pos %d: component not replaced", pos)
		}
	}
	// the original value is not modified
	if c != NewBGRA[uint8](10, 20, 30, 40) {
		t.Errorf("original modified: %v", c)
	}
}

func TestWithComponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	WithComponent[uint8](NewRGB[uint8](1, 2, 3), 3, 0)
}

// TestTrivialLayouts verifies the Trivial marker for every pixel type by
// comparing the memory representation with the constructor order.
func TestTrivialLayouts(t *testing.T) {
	check := func(name string, trivial bool, mem []float32, comps [4]float32, arity int) {
		t.Helper()
		isTrivial := len(mem) == arity
		for i := 0; isTrivial && i < arity; i++ {
			isTrivial = mem[i] == comps[i]
		}
		if isTrivial != trivial {
			t.Errorf("%s: Trivial is %t, memory layout says %t", name, trivial, isTrivial)
		}
	}

	g := NewGray[float32](1)
	check("Gray", IsTrivial[float32, Gray[float32]](), memOf[float32](&g), g.Components(), 1)
	ga := NewGrayA[float32](1, 2)
	check("GrayA", IsTrivial[float32, GrayA[float32]](), memOf[float32](&ga), ga.Components(), 2)
	rgb := NewRGB[float32](1, 2, 3)
	check("RGB", IsTrivial[float32, RGB[float32]](), memOf[float32](&rgb), rgb.Components(), 3)
	bgr := NewBGR[float32](1, 2, 3)
	check("BGR", IsTrivial[float32, BGR[float32]](), memOf[float32](&bgr), bgr.Components(), 3)
	rgba := NewRGBA[float32](1, 2, 3, 4)
	check("RGBA", IsTrivial[float32, RGBA[float32]](), memOf[float32](&rgba), rgba.Components(), 4)
	argb := NewARGB[float32](1, 2, 3, 4)
	check("ARGB", IsTrivial[float32, ARGB[float32]](), memOf[float32](&argb), argb.Components(), 4)
	bgra := NewBGRA[float32](1, 2, 3, 4)
	check("BGRA", IsTrivial[float32, BGRA[float32]](), memOf[float32](&bgra), bgra.Components(), 4)
	rgbx := NewRGBX[float32](1, 2, 3)
	check("RGBX", IsTrivial[float32, RGBX[float32]](), memOf[float32](&rgbx), rgbx.Components(), 3)
}

func memOf[T Scalar, P any](p *P) []T {
	var x T
	n := int(unsafe.Sizeof(*p) / unsafe.Sizeof(x))
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n)
}

func TestConvert(t *testing.T) {
	bgr, err := Convert[uint8, BGR[uint8]](NewRGB[uint8](1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if bgr != NewBGR[uint8](1, 2, 3) {
		t.Errorf("RGB->BGR: got %v", bgr)
	}

	rgba, err := Convert[float32, RGBA[float32]](NewRGB[uint8](1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if rgba != NewRGBA[float32](1, 2, 3, 1) {
		t.Errorf("RGB->RGBA: got %v", rgba)
	}

	argb, err := Convert[uint8, ARGB[uint8]](NewGray[uint8](7))
	if err != nil {
		t.Fatal(err)
	}
	if argb != NewARGB[uint8](7, 7, 7, 255) {
		t.Errorf("Gray->ARGB: got %v", argb)
	}

	rgb, err := Convert[uint8, RGB[uint8]](NewBGRA[uint8](1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if rgb != NewRGB[uint8](1, 2, 3) {
		t.Errorf("BGRA->RGB: got %v", rgb)
	}

	same, err := Convert[uint8, RGB[uint8]](NewRGB[uint8](4, 5, 6))
	if err != nil || same != NewRGB[uint8](4, 5, 6) {
		t.Errorf("RGB->RGB: got %v, %v", same, err)
	}
}

func TestConvertFails(t *testing.T) {
	cases := []any{
		NewRGB[uint8](1, 2, 3), // no luminance
		"not a color",
		42,
	}
	for _, src := range cases {
		_, err := Convert[uint8, Gray[uint8]](src)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("%v: expected ConversionError, got %v", src, err)
			continue
		}
		if convErr.To != "pixel.Gray[uint8]" {
			t.Errorf("unexpected target name %q", convErr.To)
		}
	}
}

func TestOpaque(t *testing.T) {
	if Opaque[uint8]() != 255 {
		t.Error("uint8")
	}
	if Opaque[uint16]() != 65535 {
		t.Error("uint16")
	}
	if Opaque[float32]() != 1 {
		t.Error("float32")
	}
	if Opaque[int8]() != 127 {
		t.Error("int8")
	}
}
