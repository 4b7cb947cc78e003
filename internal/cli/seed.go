package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/store"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data into every store",
		Long: `Load fixture data into every store.

Clears existing rows first, then inserts a small deterministic fixture
set including one recommendation with a deliberately dangling schedule
reference.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(rootOpts.Verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			fleet, err := openFleet(rootOpts, logger)
			if err != nil {
				return err
			}
			defer fleet.Close()

			if err := fleet.InitSchemas(cmd.Context()); err != nil {
				return err
			}
			if err := fleet.Seed(cmd.Context(), time.Now()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All stores seeded.")
			return nil
		},
	}
}

// openFleet resolves config and opens every store.
func openFleet(rootOpts *RootOptions, logger *zap.Logger) (*store.Fleet, error) {
	cfg, err := fleetConfig(rootOpts)
	if err != nil {
		return nil, err
	}
	return store.OpenFleet(cfg, logger)
}
