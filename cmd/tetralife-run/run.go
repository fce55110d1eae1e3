package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tetralife/internal/scene"
	"tetralife/internal/session"
	"tetralife/pkg/sims/life"
)

type runOptions struct {
	generations int
	load        string
	pattern     string
	save        bool
	fast        bool
}

func newRunCmd(c *cli) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a universe for a number of generations",
		Long: `Advances a universe at the configured tick rate.

Without --load or --pattern a fresh universe is seeded at random on the first
tick. --generations 0 runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.run(ctx, cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.generations, "generations", "g", 10, "generations to run (0 runs until interrupted)")
	cmd.Flags().StringVar(&opts.load, "load", "", "save slot to start from")
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "named pattern to start from")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the universe when the run ends")
	cmd.Flags().BoolVar(&opts.fast, "fast", false, "ignore the tick rate and step as fast as possible")
	cmd.MarkFlagsMutuallyExclusive("load", "pattern")
	return cmd
}

func (c *cli) run(ctx context.Context, cmd *cobra.Command, opts runOptions) error {
	seed, err := c.cfg.ResolveSeed()
	if err != nil {
		return err
	}
	world := scene.New(c.log.Named("scene"))
	s, err := session.New(session.Options{
		Size:   c.cfg.UniverseSize,
		Seed:   seed,
		TPS:    c.cfg.TPS,
		Store:  c.store,
		Binder: world,
		Log:    c.log,
	})
	if err != nil {
		return err
	}
	switch {
	case opts.load != "":
		if err := s.Load(opts.load); err != nil {
			return err
		}
	case opts.pattern != "":
		if err := s.LoadPattern(opts.pattern); err != nil {
			return err
		}
	}

	runner := session.NewRunner(s, c.log)
	if opts.fast {
		runner.Interval = time.Nanosecond
	}
	out := cmd.OutOrStdout()
	runner.OnTick = func(r life.Report) {
		c.log.Debug("tick",
			zap.Stringer("phase", r.Phase),
			zap.Int64("generation", r.Generation),
			zap.Int64("population", r.Population),
			zap.Int("entities", world.Live()))
		fmt.Fprintln(out, s.Status().HUD())
	}
	steps, err := runner.Run(ctx, opts.generations)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if steps == 0 {
		fmt.Fprintln(out, s.Status().HUD())
	}
	if opts.save {
		paths, err := s.Save()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(out, "saved", p)
		}
	}
	return nil
}
