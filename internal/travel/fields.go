package travel

import (
	"context"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/resolve"
)

// Field resolvers for cross-store edges. Each issues one keyed lookup
// against the owning store and returns nil — not an error — when the
// reference dangles. The lenient policy is uniform across every edge.

// BookingPassenger resolves Booking → Passenger.
func (s *Service) BookingPassenger(ctx context.Context, b model.Booking) (*model.Passenger, error) {
	return resolve.One(ctx, s.fleet.Passengers, model.Passengers, b.PassengerID)
}

// BookingSchedule resolves Booking → TravelSchedule.
func (s *Service) BookingSchedule(ctx context.Context, b model.Booking) (*model.TravelSchedule, error) {
	return resolve.One(ctx, s.fleet.Schedules, model.Schedules, b.ScheduleID)
}

// HistoryPassenger resolves TravelHistory → Passenger.
func (s *Service) HistoryPassenger(ctx context.Context, h model.TravelHistory) (*model.Passenger, error) {
	return resolve.One(ctx, s.fleet.Passengers, model.Passengers, h.PassengerID)
}

// HistorySchedule resolves TravelHistory → TravelSchedule.
func (s *Service) HistorySchedule(ctx context.Context, h model.TravelHistory) (*model.TravelSchedule, error) {
	return resolve.One(ctx, s.fleet.Schedules, model.Schedules, h.ScheduleID)
}

// RefundBooking resolves RefundRequest → Booking.
func (s *Service) RefundBooking(ctx context.Context, r model.RefundRequest) (*model.Booking, error) {
	return resolve.One(ctx, s.fleet.Bookings, model.Bookings, r.BookingID)
}
