package ui

import (
	"fmt"
	"strings"

	"tetralife/internal/core"
)

// KeyHelp lists the keyboard bindings shown under the HUD.
var KeyHelp = []string{
	"P      pause / resume",
	"K      save",
	"L      load latest",
	"N      new game",
	"+ -    speed",
	"arrows move cursor",
	"Q E    layer down / up",
	"Tab    orientation",
	"Space  toggle cell",
	"Esc    quit",
}

// Lines renders a snapshot as "Label: value" lines with a header per group.
// Groups are separated by a blank line.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for i, g := range snap.Groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return out
}

// Banner returns the message drawn over the lattice for a session state, or
// "" when play is running.
func Banner(state string) string {
	switch state {
	case "splash":
		return "TETRALIFE\npress P to start"
	case "paused":
		return "PAUSED"
	case "load-game":
		return "loading..."
	case "save-game":
		return "saving..."
	default:
		return ""
	}
}

// CursorLine describes the cell under the cursor.
func CursorLine(orientation string, x, y, z int, alive bool, neighbours int) string {
	state := "dead"
	if alive {
		state = "alive"
	}
	return fmt.Sprintf("%s (%d,%d,%d) %s, %d neighbours", orientation, x, y, z, state, neighbours)
}

// Title joins a window title from its parts, skipping empty ones.
func Title(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " - ")
}
