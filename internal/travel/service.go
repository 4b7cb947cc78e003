package travel

import (
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/store"
)

// Service is the operation layer over the store fleet. One Service is
// shared by all requests; it holds no per-request state.
type Service struct {
	fleet  *store.Fleet
	alloc  Allocator
	logger *zap.Logger
	events message.Publisher
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher attaches an event publisher. Mutations publish a domain
// event after their write; without a publisher they stay silent.
func WithPublisher(pub message.Publisher) Option {
	return func(s *Service) { s.events = pub }
}

// WithClock replaces the wall clock. Tests use this to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds the operation layer over an open fleet.
func NewService(fleet *store.Fleet, alloc Allocator, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		fleet:  fleet,
		alloc:  alloc,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp renders the current instant in the stores' ISO-8601 text form.
func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
