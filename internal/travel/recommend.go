package travel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/resolve"
)

// sampleSize is the number of schedules an ephemeral recommendation draws.
// Fewer are returned when the schedule store holds fewer rows.
const sampleSize = 3

// Recommendation is the aggregate both generation paths produce: the
// ephemeral computed-on-read variant and the persisted rows read back
// through the reference-list codec expose exactly this shape.
type Recommendation struct {
	ID                   string                 `json:"id"`
	PassengerID          string                 `json:"passengerId"`
	RecommendedSchedules []model.TravelSchedule `json:"recommendedSchedules"`
	GeneratedAt          string                 `json:"generatedAt"`

	// passenger is the eagerly-loaded passenger from ephemeral generation;
	// Passenger() reuses it instead of re-querying.
	passenger *model.Passenger
}

// Recommendations generates an ephemeral recommendation for the passenger:
// a random sample of schedules, a transient id, and the current instant.
// Nothing is written to any store; the aggregate exists only for this
// request.
//
// The passenger is resolved eagerly here, in the same call that already
// holds a schedule-store round-trip, so reading the aggregate's passenger
// field costs nothing extra. A dangling passenger id still yields a
// recommendation; its passenger field is simply nil.
func (s *Service) Recommendations(ctx context.Context, passengerID string) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}

	schedules, err := resolve.List(ctx, s.fleet.Schedules, model.Schedules,
		fmt.Sprintf("ORDER BY RANDOM() LIMIT %d", sampleSize))
	if err != nil {
		return Recommendation{}, fmt.Errorf("generate recommendations: %w", err)
	}

	passenger, err := resolve.One(ctx, s.fleet.Passengers, model.Passengers, passengerID)
	if err != nil {
		return Recommendation{}, fmt.Errorf("generate recommendations: %w", err)
	}

	return Recommendation{
		ID:                   uuid.NewString(),
		PassengerID:          passengerID,
		RecommendedSchedules: schedules,
		GeneratedAt:          s.timestamp(),
		passenger:            passenger,
	}, nil
}

// AllRecommendations reads the persisted recommendation rows and
// materializes each row's serialized schedule-id list into schedule
// entities. Ids whose schedule row is gone are dropped; a row whose list
// fails to decode contributes an empty list, never an error, so one
// malformed row cannot break the listing.
func (s *Service) AllRecommendations(ctx context.Context) ([]Recommendation, error) {
	rows, err := resolve.List(ctx, s.fleet.Recommendations, model.Recommendations, "")
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	recs := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		schedules, err := resolve.RawRefs(row.RecommendedScheduleIDs).
			Materialize(ctx, s.fleet.Schedules, s.logger.With(zap.String("recommendation", row.ID)))
		if err != nil {
			return nil, fmt.Errorf("materialize recommendation %s: %w", row.ID, err)
		}

		recs = append(recs, Recommendation{
			ID:                   row.ID,
			PassengerID:          row.PassengerID,
			RecommendedSchedules: schedules,
			GeneratedAt:          row.GeneratedAt,
		})
	}

	return recs, nil
}

// RecommendationPassenger resolves Recommendation → Passenger, reusing the
// eagerly-loaded passenger when the generating call already fetched it.
func (s *Service) RecommendationPassenger(ctx context.Context, rec Recommendation) (*model.Passenger, error) {
	if rec.passenger != nil {
		return rec.passenger, nil
	}
	return resolve.One(ctx, s.fleet.Passengers, model.Passengers, rec.PassengerID)
}
