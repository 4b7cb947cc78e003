package resolve

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/store"
)

// ScheduleRefs is the value of a recommendation's schedule list at the
// resolver boundary. The field arrives in one of two shapes: the persisted
// path carries a raw serialized id list straight from the recommendation
// store, while the ephemeral path carries schedules already materialized in
// the same request. The variant is explicit; nothing downstream sniffs
// shapes at runtime.
type ScheduleRefs struct {
	raw          string
	materialized []model.TravelSchedule
	isMaterial   bool
}

// RawRefs wraps a serialized id list that still needs materialization.
func RawRefs(raw string) ScheduleRefs {
	return ScheduleRefs{raw: raw}
}

// MaterializedRefs wraps schedules resolved earlier in the same request.
func MaterializedRefs(schedules []model.TravelSchedule) ScheduleRefs {
	return ScheduleRefs{materialized: schedules, isMaterial: true}
}

// Materialize yields the referenced schedules. The materialized variant is
// returned as-is with no store access; the raw variant is decoded and
// fetched in one batched lookup. Ids with no matching schedule row are
// silently dropped, so the result may be shorter than the encoded list.
func (r ScheduleRefs) Materialize(ctx context.Context, schedules *store.Store, logger *zap.Logger) ([]model.TravelSchedule, error) {
	if r.isMaterial {
		return r.materialized, nil
	}
	return Many(ctx, schedules, model.Schedules, DecodeIDs(r.raw, logger))
}

// EncodeIDs serializes a schedule id list to its persisted text form, a
// JSON array of strings.
func EncodeIDs(ids []string) (string, error) {
	raw, err := json.Marshal(dedupe(ids))
	if err != nil {
		return "", fmt.Errorf("encode schedule ids: %w", err)
	}
	return string(raw), nil
}

// DecodeIDs parses a persisted schedule id list. Ids are coerced to the
// schedule store's key type (text), so numeric ids written by older loaders
// decode the same as quoted ones.
//
// A malformed encoding is a recoverable condition: one bad recommendation
// row must not break an entire listing, so any parse failure logs a
// diagnostic and yields an empty list. It is never surfaced as an error.
func DecodeIDs(raw string, logger *zap.Logger) []string {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		logger.Warn("malformed schedule reference list",
			zap.String("raw", raw),
			zap.Error(err),
		)
		return []string{}
	}

	ids := make([]string, 0, len(elems))
	for _, elem := range elems {
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(elem, &n); err == nil {
			ids = append(ids, n.String())
			continue
		}
		logger.Warn("uncoercible schedule reference dropped",
			zap.String("element", string(elem)),
		)
	}
	return ids
}
