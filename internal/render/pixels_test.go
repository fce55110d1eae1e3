package render

import (
	"image/color"
	"testing"

	"tetralife/internal/core"
	"tetralife/internal/scene"
	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

func TestFillSliceUsesOrientationColours(t *testing.T) {
	u, err := life.NewDead(2)
	if err != nil {
		t.Fatal(err)
	}
	u.Set(tetra.LightGrey, 1, 0, 0, life.Alive(nil))
	s := core.NewSlice(2)
	s.Capture(u, 0)

	buf := make([]byte, 4*len(s.Cells()))
	FillSlice(buf, s, SlicePalette())

	px, py := s.Point(tetra.LightGrey, 1, 0)
	base := 4 * s.Index(px, py)
	want := scene.Palette[tetra.LightGrey]
	got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
	if got != want {
		t.Fatalf("live pixel = %v, want %v", got, want)
	}
	if buf[0] != Background.R || buf[3] != Background.A {
		t.Fatalf("dead pixel = %v, want background", buf[:4])
	}
}

func TestFillPaletteClampsAndClears(t *testing.T) {
	cells := []uint8{0, 9}
	buf := make([]byte, 8)
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	fillPaletteRGBA(buf, cells, palette)
	if buf[4] != 2 {
		t.Fatalf("out-of-range value not clamped to last colour: %v", buf)
	}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d after clearing", i, b)
		}
	}
}

func TestSlicePaletteLength(t *testing.T) {
	if got := len(SlicePalette()); got != tetra.Count+1 {
		t.Fatalf("palette has %d entries, want %d", got, tetra.Count+1)
	}
}
