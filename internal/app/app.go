//go:build ebiten

package app

import (
	"image/color"

	"tetralife/internal/core"
	"tetralife/internal/render"
	"tetralife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 240

var keymap = []struct {
	keys []ebiten.Key
	cmd  Command
}{
	{[]ebiten.Key{ebiten.KeyP}, CmdTogglePause},
	{[]ebiten.Key{ebiten.KeyK}, CmdSave},
	{[]ebiten.Key{ebiten.KeyL}, CmdLoad},
	{[]ebiten.Key{ebiten.KeyN}, CmdNewGame},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd, ebiten.KeyPageUp}, CmdFaster},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract, ebiten.KeyPageDown}, CmdSlower},
	{[]ebiten.Key{ebiten.KeyArrowLeft}, CmdLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight}, CmdRight},
	{[]ebiten.Key{ebiten.KeyArrowUp}, CmdUp},
	{[]ebiten.Key{ebiten.KeyArrowDown}, CmdDown},
	{[]ebiten.Key{ebiten.KeyQ}, CmdLayerDown},
	{[]ebiten.Key{ebiten.KeyE}, CmdLayerUp},
	{[]ebiten.Key{ebiten.KeyTab}, CmdNextOrientation},
	{[]ebiten.Key{ebiten.KeySpace}, CmdPlace},
	{[]ebiten.Key{ebiten.KeyEscape}, CmdQuit},
}

// Game adapts a session to the ebiten.Game interface. It draws the z layer
// under the cursor.
type Game struct {
	ctl     *Controller
	view    *core.Slice
	painter *render.SlicePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	view := core.NewSlice(ctl.Session().Universe().Size())
	return &Game{
		ctl:     ctl,
		view:    view,
		painter: render.NewSlicePainter(view.W, view.H),
		hud:     ui.NewHUD(ctl.Session(), HUDWidth),
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the session when its fixed
// step fires.
func (g *Game) Update() error {
	for _, binding := range keymap {
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) && g.ctl.Apply(binding.cmd) {
				return ebiten.Termination
			}
		}
	}
	g.handleClick()

	s := g.ctl.Session()
	s.Update()

	g.hud.Update(g.view.W * g.scale)
	g.overlay.Update(s.State().String(), g.ctl.CursorLine())
	return nil
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	o, x, y, ok := g.view.Locate(mx/g.scale, my/g.scale)
	if !ok {
		return
	}
	cur := g.ctl.Cursor()
	g.ctl.SetCursor(Cursor{O: o, X: x, Y: y, Z: cur.Z})
	g.ctl.Apply(CmdPlace)
}

// Draw renders the current layer, cursor, HUD and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.ctl.Cursor()
	g.view.Capture(g.ctl.Session().Universe(), cur.Z)
	g.painter.Blit(screen, g.view, g.scale)

	px, py := g.view.Point(cur.O, cur.X, cur.Y)
	g.painter.Outline(screen, px, py, g.scale, color.White)

	w, h := g.view.W*g.scale, g.view.H*g.scale
	g.overlay.Draw(screen, w, h)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W*g.scale + g.hud.Width(), g.view.H * g.scale
}
