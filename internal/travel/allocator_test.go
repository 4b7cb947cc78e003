package travel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripstitch/tripstitch/internal/store"
	"github.com/tripstitch/tripstitch/internal/testutil"
)

func TestOpaqueAllocator_UniqueParseableIDs(t *testing.T) {
	alloc := OpaqueAllocator{}
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		id, err := alloc.Allocate(context.Background(), nil, "Booking")
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequentialAllocator_StartsAtOne(t *testing.T) {
	fleet := testutil.OpenFleet(t)

	id, err := SequentialAllocator{}.Allocate(context.Background(), fleet.Bookings, "Booking")
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestSequentialAllocator_IncrementsObservedMax(t *testing.T) {
	fleet := testutil.OpenFleet(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "7"} {
		_, err := fleet.Bookings.Exec(ctx, `
			INSERT INTO Booking (id, passengerId, scheduleId, bookingTime, status)
			VALUES (?, 'p', 's', '2024-03-01T00:00:00Z', 'CONFIRMED')`, id)
		require.NoError(t, err)
	}

	id, err := SequentialAllocator{}.Allocate(ctx, fleet.Bookings, "Booking")
	require.NoError(t, err)
	assert.Equal(t, "8", id)
}

func TestSequentialAllocator_MissingTable(t *testing.T) {
	// A store with no schema applied: the strategy's prior read fails.
	st, err := store.Open("empty", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = SequentialAllocator{}.Allocate(context.Background(), st, "Booking")
	assert.Error(t, err)
}

func TestAllocationRace_SurfacesOnInsert(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "1", "1")
	require.NoError(t, err)

	// A concurrent writer observed the same maximum and produced the same
	// key; the second insert loses.
	svc.alloc = fixedAllocator{id: first.ID}
	_, err = svc.CreateBooking(ctx, "2", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocationRace)
}
