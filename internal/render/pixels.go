package render

import (
	"image/color"

	"tetralife/internal/core"
	"tetralife/internal/scene"
)

// Background is the colour of dead cells.
var Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// SlicePalette maps slice values to colours: index 0 is a dead cell and
// index 1+o is a live cell of orientation o.
func SlicePalette() []color.RGBA {
	p := make([]color.RGBA, 0, len(scene.Palette)+1)
	p = append(p, Background)
	return append(p, scene.Palette[:]...)
}

// FillSlice converts a captured slice into RGBA pixels in buf, which must
// hold 4 bytes per cell.
func FillSlice(buf []byte, s *core.Slice, palette []color.RGBA) {
	fillPaletteRGBA(buf, s.Cells(), palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
