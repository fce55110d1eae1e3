//go:build ebiten

package render

import (
	"image/color"

	"tetralife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// SlicePainter uploads a captured slice into an image and draws it scaled.
type SlicePainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	pixel   *ebiten.Image
}

// NewSlicePainter allocates a painter for a w*h slice view.
func NewSlicePainter(w, h int) *SlicePainter {
	sp := &SlicePainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: SlicePalette()}
	sp.img = ebiten.NewImage(w, h)
	sp.pixel = ebiten.NewImage(1, 1)
	sp.pixel.Fill(color.White)
	return sp
}

// Blit draws s onto dst. Slices whose dimensions changed reallocate the
// backing image.
func (sp *SlicePainter) Blit(dst *ebiten.Image, s *core.Slice, scale int) {
	if s.W != sp.w || s.H != sp.h {
		*sp = *NewSlicePainter(s.W, s.H)
	}
	FillSlice(sp.buf, s, sp.palette)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Outline draws a one-pixel frame around view cell (px, py).
func (sp *SlicePainter) Outline(dst *ebiten.Image, px, py, scale int, c color.Color) {
	x0, y0 := float64(px*scale), float64(py*scale)
	side := float64(scale)
	sp.rect(dst, x0, y0, side, 1, c)
	sp.rect(dst, x0, y0+side-1, side, 1, c)
	sp.rect(dst, x0, y0, 1, side, c)
	sp.rect(dst, x0+side-1, y0, 1, side, c)
}

func (sp *SlicePainter) rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	r, g, b, a := c.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	dst.DrawImage(sp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (sp *SlicePainter) Size() (int, int) { return sp.w, sp.h }
