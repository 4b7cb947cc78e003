package resolve

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/store"
)

// One fetches a single entity by primary key from its owning store.
// Returns (nil, nil) when no row matches: absence is a valid answer for a
// relationship edge, never an error at this layer.
func One[T any](ctx context.Context, st *store.Store, m model.Mapping[T], id string) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(m.Columns, ", "), m.Table,
	)

	entity, err := m.Scan(st.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %s %s: %w", st.Name(), id, err)
	}

	return &entity, nil
}

// Many fetches a batch of entities by primary key in a single
// WHERE id IN (...) query, bounding round-trips to one per relationship
// regardless of list size. Requested ids are deduplicated first; ids with
// no matching row are omitted, so the result may be shorter than the input.
//
// Results carry no guaranteed order. Callers re-associate by id, never by
// position.
func Many[T any](ctx context.Context, st *store.Store, m model.Mapping[T], ids []string) ([]T, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id IN (%s)",
		strings.Join(m.Columns, ", "), m.Table, placeholders,
	)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return list(ctx, st, m, query, args...)
}

// List fetches every entity of the mapped table, with an optional clause
// appended to the base SELECT (a WHERE filter, ORDER BY, LIMIT, ...).
func List[T any](ctx context.Context, st *store.Store, m model.Mapping[T], clause string, args ...any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(m.Columns, ", "), m.Table)
	if clause != "" {
		query += " " + clause
	}
	return list(ctx, st, m, query, args...)
}

func list[T any](ctx context.Context, st *store.Store, m model.Mapping[T], query string, args ...any) ([]T, error) {
	rows, err := st.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s store: %w", st.Name(), err)
	}
	defer rows.Close()

	// Empty slice, not nil, when nothing matches.
	entities := []T{}
	for rows.Next() {
		entity, err := m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", st.Name(), err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", st.Name(), err)
	}

	return entities, nil
}

// dedupe removes duplicate ids, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
