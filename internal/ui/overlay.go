//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the state banner and cursor line on top of the lattice.
type Overlay struct {
	banner string
	cursor string
	shade  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{shade: ebiten.NewImage(1, 1)}
	o.shade.Fill(color.RGBA{A: 160})
	return o
}

// Update sets the text to draw on the next frame.
func (o *Overlay) Update(state, cursor string) {
	o.banner = Banner(state)
	o.cursor = cursor
}

// Draw renders the overlay onto the lattice area of the screen.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int) {
	face := basicfont.Face7x13
	if o.cursor != "" {
		o.fill(screen, 0, height-20, width, 20)
		text.Draw(screen, o.cursor, face, 6, height-6, color.White)
	}
	if o.banner == "" {
		return
	}
	lines := strings.Split(o.banner, "\n")
	boxH := 16*len(lines) + 16
	top := (height - boxH) / 2
	o.fill(screen, 0, top, width, boxH)
	for i, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (width-w)/2, top+22+16*i, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(o.shade, op)
}
