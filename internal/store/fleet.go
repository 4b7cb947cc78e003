package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config locates the six store databases. Paths are resolved relative to
// DataDir unless absolute.
type Config struct {
	DataDir string `yaml:"data_dir"`

	Passenger      string `yaml:"passenger"`
	Schedule       string `yaml:"schedule"`
	Booking        string `yaml:"booking"`
	History        string `yaml:"history"`
	Refund         string `yaml:"refund"`
	Recommendation string `yaml:"recommendation"`
}

// DefaultConfig returns the conventional on-disk layout: one database file
// per store under dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		Passenger:      "passenger.db",
		Schedule:       "travelschedule.db",
		Booking:        "booking.db",
		History:        "travelhistory.db",
		Refund:         "refundrequest.db",
		Recommendation: "recommendation.db",
	}
}

// LoadConfig reads a fleet config from a YAML file. Fields left empty fall
// back to the defaults for the config's data_dir.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read fleet config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse fleet config %s: %w", path, err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "db"
	}
	defaults := DefaultConfig(cfg.DataDir)
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&cfg.Passenger, defaults.Passenger)
	fill(&cfg.Schedule, defaults.Schedule)
	fill(&cfg.Booking, defaults.Booking)
	fill(&cfg.History, defaults.History)
	fill(&cfg.Refund, defaults.Refund)
	fill(&cfg.Recommendation, defaults.Recommendation)

	return cfg, nil
}

func (c Config) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// Fleet holds the long-lived handles for all six logical stores. A single
// Fleet is shared by every request; components receive it explicitly rather
// than through any ambient global.
type Fleet struct {
	Passengers      *Store
	Schedules       *Store
	Bookings        *Store
	History         *Store
	Refunds         *Store
	Recommendations *Store
}

// OpenFleet opens every store described by cfg, creating database files as
// needed. On any failure the stores opened so far are closed.
func OpenFleet(cfg Config, logger *zap.Logger) (*Fleet, error) {
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	f := &Fleet{}
	open := func(dst **Store, name, file string) error {
		s, err := Open(name, cfg.path(file))
		if err != nil {
			f.Close()
			return err
		}
		logger.Debug("store opened", zap.String("store", name), zap.String("path", cfg.path(file)))
		*dst = s
		return nil
	}

	if err := open(&f.Passengers, "passenger", cfg.Passenger); err != nil {
		return nil, err
	}
	if err := open(&f.Schedules, "schedule", cfg.Schedule); err != nil {
		return nil, err
	}
	if err := open(&f.Bookings, "booking", cfg.Booking); err != nil {
		return nil, err
	}
	if err := open(&f.History, "history", cfg.History); err != nil {
		return nil, err
	}
	if err := open(&f.Refunds, "refund", cfg.Refund); err != nil {
		return nil, err
	}
	if err := open(&f.Recommendations, "recommendation", cfg.Recommendation); err != nil {
		return nil, err
	}

	return f, nil
}

// All returns the fleet's stores in a fixed order.
func (f *Fleet) All() []*Store {
	return []*Store{
		f.Passengers, f.Schedules, f.Bookings, f.History, f.Refunds, f.Recommendations,
	}
}

// Close closes every open store, returning the first error encountered.
func (f *Fleet) Close() error {
	var firstErr error
	for _, s := range f.All() {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
