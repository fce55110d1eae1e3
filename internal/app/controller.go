// Package app wires a session to the window: keyboard commands, the cursor
// used to place cells and the per-frame update.
package app

import (
	"go.uber.org/zap"

	"tetralife/internal/logging"
	"tetralife/internal/session"
	"tetralife/internal/ui"
	"tetralife/pkg/tetra"
)

// Command is a user action independent of the key that triggered it.
type Command uint8

const (
	CmdNone Command = iota
	CmdTogglePause
	CmdSave
	CmdLoad
	CmdNewGame
	CmdFaster
	CmdSlower
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdLayerDown
	CmdLayerUp
	CmdNextOrientation
	CmdPlace
	CmdQuit
)

// Cursor addresses the cell the player is pointing at.
type Cursor struct {
	O       tetra.Orientation
	X, Y, Z int
}

// Controller applies commands to a session. It has no window dependency.
type Controller struct {
	session *session.Session
	cursor  Cursor
	log     *zap.Logger
}

// NewController returns a controller with the cursor at the centre of the
// universe.
func NewController(s *session.Session, log *zap.Logger) *Controller {
	c := s.Universe().Size() / 2
	return &Controller{session: s, cursor: Cursor{X: c, Y: c, Z: c}, log: logging.OrNop(log)}
}

// Session returns the controlled session.
func (c *Controller) Session() *session.Session { return c.session }

// Cursor returns the cursor, wrapped into the current universe.
func (c *Controller) Cursor() Cursor {
	size := c.session.Universe().Size()
	return Cursor{
		O: c.cursor.O,
		X: tetra.Wrap(c.cursor.X, size),
		Y: tetra.Wrap(c.cursor.Y, size),
		Z: tetra.Wrap(c.cursor.Z, size),
	}
}

// SetCursor moves the cursor to a cell, as when it is clicked.
func (c *Controller) SetCursor(cur Cursor) {
	if cur.O.Valid() {
		c.cursor = cur
	}
}

// Apply runs cmd and reports whether the game should quit. Failures are
// logged by the session and never stop the game.
func (c *Controller) Apply(cmd Command) (quit bool) {
	s := c.session
	switch cmd {
	case CmdTogglePause:
		s.TogglePause()
	case CmdSave:
		_, _ = s.Save()
	case CmdLoad:
		_ = s.Load("")
	case CmdNewGame:
		if err := s.NewGame(); err != nil {
			c.log.Error("new game failed", zap.Error(err))
		}
	case CmdFaster:
		s.Faster()
	case CmdSlower:
		s.Slower()
	case CmdLeft:
		c.cursor.X--
	case CmdRight:
		c.cursor.X++
	case CmdUp:
		c.cursor.Y--
	case CmdDown:
		c.cursor.Y++
	case CmdLayerDown:
		c.cursor.Z--
	case CmdLayerUp:
		c.cursor.Z++
	case CmdNextOrientation:
		c.cursor.O = (c.cursor.O + 1) % tetra.Count
	case CmdPlace:
		cur := c.Cursor()
		if _, err := s.Place(cur.O, cur.X, cur.Y, cur.Z); err != nil {
			c.log.Error("place failed", zap.Error(err))
		}
	case CmdQuit:
		return true
	}
	c.cursor = c.Cursor()
	return false
}

// CursorLine describes the cell under the cursor for the overlay.
func (c *Controller) CursorLine() string {
	cur := c.Cursor()
	alive := c.session.Universe().Get(cur.O, cur.X, cur.Y, cur.Z).IsAlive()
	n, err := c.session.Neighbours(cur.O, cur.X, cur.Y, cur.Z)
	if err != nil {
		return ""
	}
	return ui.CursorLine(cur.O.String(), cur.X, cur.Y, cur.Z, alive, n)
}
