// Package cli implements the tripstitch command line: serve, init, and
// seed.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tripstitch/tripstitch/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  string
	DataDir string
	Verbose bool
}

// NewRootCommand creates the root command for the tripstitch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tripstitch",
		Short: "Federated travel-booking data layer",
		Long: "tripstitch serves a travel-booking domain whose entities are partitioned\n" +
			"across independently owned SQLite stores, stitching cross-store references\n" +
			"together at read time.",
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "fleet config file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "db", "store directory when no config file is given")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// fleetConfig resolves the fleet layout from the config flag, falling back
// to the default layout under --data-dir.
func fleetConfig(opts *RootOptions) (store.Config, error) {
	if opts.Config == "" {
		return store.DefaultConfig(opts.DataDir), nil
	}
	cfg, err := store.LoadConfig(opts.Config)
	if err != nil {
		return store.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Verbose enables debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
