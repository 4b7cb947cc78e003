package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create every store database and its schema",
		Long: `Create every store database and its schema.

Idempotent: existing tables are left untouched.`,
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

			fmt.Fprintln(cmd.OutOrStdout(), "All stores initialized.")
			return nil
		},
	}
}
