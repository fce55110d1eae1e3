package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"tetralife/internal/core"
	"tetralife/internal/saves"
	"tetralife/internal/scene"
	"tetralife/pkg/tetra"
)

var orientationColours = [tetra.Count]aurora.Color{
	tetra.White:     aurora.GreenFg,
	tetra.Red:       aurora.RedFg,
	tetra.LightBlue: aurora.CyanFg,
	tetra.DarkBlue:  aurora.BlueFg,
	tetra.LightGrey: aurora.YellowFg,
	tetra.DarkGrey:  aurora.BlackFg | aurora.BrightFg,
}

// inspectOptions narrows what inspect prints.
type inspectOptions struct {
	slice int
	only  tetra.Orientation
	all   bool
}

func newInspectCmd(c *cli) *cobra.Command {
	slice := -1
	var orientation string
	cmd := &cobra.Command{
		Use:   "inspect [NAME]",
		Short: "Print the counters and per-orientation census of a save slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := saves.Latest
			if len(args) == 1 {
				name = args[0]
			}
			opts := inspectOptions{slice: slice, all: true}
			if orientation != "" {
				o, ok := tetra.ParseOrientation(orientation)
				if !ok {
					return fmt.Errorf("unknown orientation %q", orientation)
				}
				opts.only, opts.all = o, false
			}
			rec, err := c.store.Load(name)
			if err != nil {
				return err
			}
			return c.inspect(cmd.OutOrStdout(), name, rec, opts)
		},
	}
	cmd.Flags().IntVar(&slice, "slice", -1, "also draw z layer N of the lattice")
	cmd.Flags().StringVar(&orientation, "orientation", "", "only show one orientation (name or index 0-5)")
	return cmd
}

func (c *cli) inspect(w io.Writer, name string, rec saves.Record, opts inspectOptions) error {
	world := scene.New(c.log.Named("scene"))
	u, err := saves.Restore(rec, world)
	if err != nil {
		return err
	}
	paint := func(s string, col aurora.Color) string {
		if c.noColor {
			return s
		}
		return aurora.Colorize(s, col).String()
	}

	fmt.Fprintf(w, "%s %s\n", paint("slot:", aurora.BoldFm), name)
	fmt.Fprintf(w, "size:       %d (%d cells)\n", u.Size(), u.Len())
	fmt.Fprintf(w, "generation: %07d\n", u.Generation())
	alive := u.CountAlive()
	counter := fmt.Sprintf("%07d", u.Population())
	if alive != u.Population() {
		counter = paint(counter, aurora.RedFg) + fmt.Sprintf(" (%d alive)", alive)
	}
	fmt.Fprintf(w, "counter:    %s\n", counter)

	census := world.Census()
	for _, o := range tetra.Orientations {
		if !opts.all && o != opts.only {
			continue
		}
		label := fmt.Sprintf("%-11s", o)
		fmt.Fprintf(w, "  %s %7d\n", paint(label, orientationColours[o]), census[o])
	}

	if opts.slice < 0 {
		return nil
	}
	view := core.NewSlice(u.Size())
	view.Capture(u, opts.slice)
	fmt.Fprintf(w, "layer z=%d\n", view.Z)
	var b strings.Builder
	for py := 0; py < view.H; py++ {
		b.Reset()
		for px := 0; px < view.W; px++ {
			v := view.At(px, py)
			if v == 0 || (!opts.all && tetra.Orientation(v-1) != opts.only) {
				b.WriteString("·")
				continue
			}
			b.WriteString(paint("█", orientationColours[v-1]))
		}
		fmt.Fprintln(w, b.String())
	}
	return nil
}
