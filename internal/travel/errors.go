package travel

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound reports that a lookup by id matched no row. Relationship
// edges never produce it (they resolve to nil instead); it is reserved for
// operations whose direct target must exist, like CancelBooking and
// RateTravel.
var ErrNotFound = errors.New("not found")

// ErrAllocationRace reports that a freshly allocated identifier collided
// with an existing row on insert. Only the sequential allocation strategy
// can produce it: two concurrent allocations may observe the same MAX(id)
// and derive the same key. The write is not retried.
var ErrAllocationRace = errors.New("identifier allocation race")

func notFoundErr(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// isUniqueViolation reports whether err is a SQLite primary-key or unique
// constraint failure, the signature of a lost allocation race.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		serr.ExtendedCode == sqlite3.ErrConstraintUnique
}
