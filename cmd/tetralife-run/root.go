package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tetralife/internal/config"
	"tetralife/internal/logging"
	"tetralife/internal/saves"
)

// cli carries state shared by the subcommands. It is filled in by the root
// command's PersistentPreRunE.
type cli struct {
	cfg     config.Config
	log     *zap.Logger
	store   *saves.Store
	noColor bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	c := &cli{cfg: cfg}
	root := &cobra.Command{
		Use:   "tetralife-run",
		Short: "Headless tetrahedral Game of Life",
		Long: `Runs the tetrahedral Game of Life without a window.

Every unit cube of the lattice holds six tetrahedra; each live tetrahedron
survives with two or three live neighbours and a dead one is born with
exactly three. Settings come from TETRALIFE_* environment variables and
are overridden by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			log, err := logging.New(c.cfg.LogLevel, c.cfg.Development)
			if err != nil {
				return err
			}
			c.log = log
			c.store = saves.NewStore(c.cfg.SavesDir, log.Named("saves"))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	c.cfg.Bind(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newRunCmd(c), newInspectCmd(c), newSeedCmd(c), newListCmd(c))
	return root
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.store.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no saves in %s\n", c.store.Dir())
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
