package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/events"
	"github.com/tripstitch/tripstitch/internal/httpapi"
	"github.com/tripstitch/tripstitch/internal/store"
	"github.com/tripstitch/tripstitch/internal/travel"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr       string
	IDStrategy string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the travel-booking HTTP API",
		Long: `Serve the travel-booking HTTP API.

Opens every store in the fleet, applies schemas, and listens until
interrupted. Store connections are closed on shutdown.

Example:
  tripstitch serve --data-dir ./db --addr :8080`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.IDStrategy, "id-strategy", "opaque",
		"identifier allocation strategy (opaque|sequential); sequential is single-writer only")

	return cmd
}

func runServe(opts *ServeOptions) error {
	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	alloc, err := allocatorFor(opts.IDStrategy, logger)
	if err != nil {
		return err
	}

	cfg, err := fleetConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	fleet, err := store.OpenFleet(cfg, logger)
	if err != nil {
		return err
	}
	defer fleet.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fleet.InitSchemas(ctx); err != nil {
		return err
	}

	bus := events.NewBus(logger)
	defer bus.Close()
	if err := events.RunLogConsumer(ctx, bus, logger,
		travel.TopicBookingCreated,
		travel.TopicBookingCancelled,
		travel.TopicRefundRequested,
		travel.TopicTravelRated,
	); err != nil {
		return fmt.Errorf("subscribe domain events: %w", err)
	}

	service := travel.NewService(fleet, alloc, logger, travel.WithPublisher(bus))

	router := chi.NewRouter()
	httpapi.NewHandler(service, logger).RegisterRoutes(router)

	server := &http.Server{Addr: opts.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", opts.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func allocatorFor(strategy string, logger *zap.Logger) (travel.Allocator, error) {
	switch strategy {
	case "opaque":
		return travel.OpaqueAllocator{}, nil
	case "sequential":
		logger.Warn("sequential id allocation is not safe under concurrent writers; " +
			"run a single instance or switch to opaque")
		return travel.SequentialAllocator{}, nil
	default:
		return nil, errors.New(`invalid --id-strategy: must be "opaque" or "sequential"`)
	}
}
