package travel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/store"
	"github.com/tripstitch/tripstitch/internal/testutil"
)

// fixedNow pins every timestamp written by tests.
var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// newTestService builds a service over a seeded temporary fleet with a
// frozen clock and opaque id allocation.
func newTestService(t *testing.T, opts ...Option) (*Service, *store.Fleet) {
	t.Helper()

	fleet := testutil.OpenFleet(t)
	require.NoError(t, fleet.Seed(context.Background(), fixedNow))

	clock := testutil.NewFrozenClock(fixedNow)
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewService(fleet, OpaqueAllocator{}, zap.NewNop(), opts...), fleet
}

// fixedAllocator always hands out the same id, simulating the losing side
// of a sequential allocation race.
type fixedAllocator struct {
	id string
}

func (a fixedAllocator) Allocate(context.Context, *store.Store, string) (string, error) {
	return a.id, nil
}
