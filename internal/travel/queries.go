package travel

import (
	"context"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/resolve"
)

// ListSchedules returns every travel schedule.
func (s *Service) ListSchedules(ctx context.Context) ([]model.TravelSchedule, error) {
	return resolve.List(ctx, s.fleet.Schedules, model.Schedules, "")
}

// ListPassengers returns every passenger.
func (s *Service) ListPassengers(ctx context.Context) ([]model.Passenger, error) {
	return resolve.List(ctx, s.fleet.Passengers, model.Passengers, "")
}

// BookingsByPassenger returns the passenger's bookings. The passenger id is
// matched as stored; no check that the passenger exists.
func (s *Service) BookingsByPassenger(ctx context.Context, passengerID string) ([]model.Booking, error) {
	return resolve.List(ctx, s.fleet.Bookings, model.Bookings, "WHERE passengerId = ?", passengerID)
}

// HistoryByPassenger returns the passenger's travel history.
func (s *Service) HistoryByPassenger(ctx context.Context, passengerID string) ([]model.TravelHistory, error) {
	return resolve.List(ctx, s.fleet.History, model.Histories, "WHERE passengerId = ?", passengerID)
}

// AllBookings returns every booking.
func (s *Service) AllBookings(ctx context.Context) ([]model.Booking, error) {
	return resolve.List(ctx, s.fleet.Bookings, model.Bookings, "")
}

// AllRefundRequests returns every refund request.
func (s *Service) AllRefundRequests(ctx context.Context) ([]model.RefundRequest, error) {
	return resolve.List(ctx, s.fleet.Refunds, model.Refunds, "")
}

// AllHistory returns every travel-history row.
func (s *Service) AllHistory(ctx context.Context) ([]model.TravelHistory, error) {
	return resolve.List(ctx, s.fleet.History, model.Histories, "")
}
