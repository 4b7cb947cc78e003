package travel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/tripstitch/tripstitch/internal/store"
)

// Allocator produces a unique primary key for a new row in the given
// store's table. Strategies are selected per deployment and never mixed
// within one store's lifetime.
type Allocator interface {
	Allocate(ctx context.Context, st *store.Store, table string) (string, error)
}

// OpaqueAllocator returns random 128-bit identifiers in their canonical
// text encoding. Collision-resistant with no coordination, so it is safe
// under any number of concurrent writers, at the cost of larger,
// non-sortable keys. It cannot fail.
type OpaqueAllocator struct{}

func (OpaqueAllocator) Allocate(context.Context, *store.Store, string) (string, error) {
	return uuid.NewString(), nil
}

// SequentialAllocator returns max(existing id) + 1, read from the target
// table at allocation time.
//
// NOT safe under concurrent writers: two allocations may observe the same
// maximum and derive the same key, and the loser's insert fails with
// ErrAllocationRace. Deploy it only under a single-writer assumption;
// under concurrent load use OpaqueAllocator instead.
type SequentialAllocator struct{}

func (SequentialAllocator) Allocate(ctx context.Context, st *store.Store, table string) (string, error) {
	var max int64
	err := st.QueryRow(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(id AS INTEGER)), 0) FROM %s", table),
	).Scan(&max)
	if err != nil {
		return "", fmt.Errorf("allocate id in %s.%s: %w", st.Name(), table, err)
	}
	return strconv.FormatInt(max+1, 10), nil
}
