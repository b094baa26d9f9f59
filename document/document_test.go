package document

import (
	"image/color"
	"testing"
)

func buildDoc(ids ...LayerID) *Flattened {
	f := NewFlattened()
	for _, id := range ids {
		l := f.Layer(id)
		l.Paths = append(l.Paths, Path{
			Data:        []Point{{0, 0}, {1, 2}, {3, 4}},
			Color:       RGB(10, 20, 30),
			StrokeWidth: 1,
		})
	}
	return f
}

func walkOrder(f *Flattened) []LayerID {
	var got []LayerID
	f.Walk(func(id LayerID, _ *Layer) { got = append(got, id) })
	return got
}

func TestLayerInsertionOrder(t *testing.T) {
	f := buildDoc(3, 1, 2)
	want := []LayerID{3, 1, 2}

	// the order must not depend on the ids, and must be stable
	// across repeated walks
	for run := 0; run < 3; run++ {
		got := walkOrder(f)
		if len(got) != len(want) {
			t.Fatalf("expected %d layers, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("walk %d: layer %d: expected id %d, got %d", run, i, want[i], got[i])
			}
		}
	}

	// fetching an existing layer must not duplicate it
	f.Layer(1)
	if f.NumLayers() != 3 {
		t.Errorf("expected 3 layers, got %d", f.NumLayers())
	}
}

func TestNumPaths(t *testing.T) {
	f := buildDoc(1, 2)
	if f.NumPaths() != 2 {
		t.Errorf("expected 2 paths, got %d", f.NumPaths())
	}
	if NewFlattened().NumPaths() != 0 {
		t.Error("empty document should have no paths")
	}
}

func TestScaleNonUniform(t *testing.T) {
	f := NewFlattened()
	l := f.Layer(1)
	l.Paths = append(l.Paths, Path{Data: []Point{{2, 3}, {-1, 5}}})

	f.ScaleNonUniform(1, -1)

	want := []Point{{2, -3}, {-1, -5}}
	got := l.Paths[0].Data
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBounds(t *testing.T) {
	if _, ok := NewFlattened().Bounds(); ok {
		t.Error("empty document should have no bounds")
	}

	f := NewFlattened()
	l := f.Layer(1)
	l.Paths = append(l.Paths, Path{Data: []Point{{-2, 1}, {4, -3}}})
	l = f.Layer(2)
	l.Paths = append(l.Paths, Path{Data: []Point{{0, 8}}})

	b, ok := f.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Bounds{X: -2, Y: -3, W: 6, H: 11}
	if b != want {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{X: 0, Y: 0, W: 2, H: 2}
	b := Bounds{X: -1, Y: 1, W: 2, H: 4}
	want := Bounds{X: -1, Y: 0, W: 3, H: 5}
	if got := a.Union(b); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := b.Union(a); got != want {
		t.Errorf("union should commute: expected %v, got %v", want, got)
	}
}

func TestColorRGBA(t *testing.T) {
	cases := []Color{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{10, 200, 30, 128},
		RGB(180, 180, 180),
	}
	for _, c := range cases {
		r1, g1, b1, a1 := c.RGBA()
		r2, g2, b2, a2 := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
			t.Errorf("color %v: RGBA mismatch", c)
		}
	}
}

func TestPageSizeByName(t *testing.T) {
	for _, name := range []string{"a4", "A4", "letter"} {
		if _, ok := PageSizeByName(name); !ok {
			t.Errorf("expected a page size for %q", name)
		}
	}
	if _, ok := PageSizeByName("tabloid"); ok {
		t.Error("unexpected page size for tabloid")
	}

	p, _ := PageSizeByName("a4")
	b := p.Bounds()
	if b.X != 0 || b.Y != -p.H || b.W != p.W || b.H != p.H {
		t.Errorf("page bounds should extend in negative y, got %v", b)
	}
}
