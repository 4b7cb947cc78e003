package travel

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/resolve"
)

// CreateBooking inserts a CONFIRMED booking for the given passenger and
// schedule and returns the written row in its canonical shape.
//
// Neither reference is validated against its owning store: the booking
// store cannot see them, and checking the other stores here would only
// narrow, not close, the window in which a referenced row disappears.
// Dangling references are discovered at resolution time.
func (s *Service) CreateBooking(ctx context.Context, passengerID, scheduleID string) (model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, err
	}

	id, err := s.alloc.Allocate(ctx, s.fleet.Bookings, model.Bookings.Table)
	if err != nil {
		return model.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	booking := model.Booking{
		ID:          id,
		PassengerID: passengerID,
		ScheduleID:  scheduleID,
		BookingTime: s.timestamp(),
		Status:      model.BookingConfirmed,
	}

	_, err = s.fleet.Bookings.Exec(ctx, `
		INSERT INTO Booking (id, passengerId, scheduleId, bookingTime, status)
		VALUES (?, ?, ?, ?, ?)`,
		booking.ID, booking.PassengerID, booking.ScheduleID, booking.BookingTime, string(booking.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Booking{}, fmt.Errorf("create booking %s: %w", id, ErrAllocationRace)
		}
		return model.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		zap.String("booking", booking.ID),
		zap.String("passenger", passengerID),
		zap.String("schedule", scheduleID),
	)
	s.publish(ctx, TopicBookingCreated, BookingEvent{
		BookingID:   booking.ID,
		PassengerID: passengerID,
		ScheduleID:  scheduleID,
		Status:      string(booking.Status),
		OccurredAt:  booking.BookingTime,
	})

	return booking, nil
}

// CancelBooking sets the booking's status to CANCELLED unconditionally —
// cancelling an already-cancelled or refunded booking succeeds silently —
// and returns the re-read row.
//
// The re-read is mandatory: an UPDATE against an id that never existed is
// not an error to the engine, so the row's absence afterwards is the only
// signal that the id was invalid. That case returns ErrNotFound.
func (s *Service) CancelBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, err
	}

	_, err := s.fleet.Bookings.Exec(ctx,
		`UPDATE Booking SET status = ? WHERE id = ?`,
		string(model.BookingCancelled), bookingID,
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	booking, err := resolve.One(ctx, s.fleet.Bookings, model.Bookings, bookingID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return model.Booking{}, notFoundErr("booking", bookingID)
	}

	s.logger.Info("booking cancelled", zap.String("booking", bookingID))
	s.publish(ctx, TopicBookingCancelled, BookingEvent{
		BookingID:   booking.ID,
		PassengerID: booking.PassengerID,
		ScheduleID:  booking.ScheduleID,
		Status:      string(booking.Status),
		OccurredAt:  s.timestamp(),
	})

	return *booking, nil
}

// RequestRefund inserts a PENDING refund request for the given booking and
// returns the written row.
//
// The referenced booking's existence and status are deliberately not
// verified — the refund store cannot see the booking store, and the
// contract accepts requests against ids that later prove dangling. An
// external processor owns the PENDING → APPROVED/REJECTED transition.
func (s *Service) RequestRefund(ctx context.Context, bookingID, reason string) (model.RefundRequest, error) {
	if err := ctx.Err(); err != nil {
		return model.RefundRequest{}, err
	}

	id, err := s.alloc.Allocate(ctx, s.fleet.Refunds, model.Refunds.Table)
	if err != nil {
		return model.RefundRequest{}, fmt.Errorf("request refund: %w", err)
	}

	refund := model.RefundRequest{
		ID:          id,
		BookingID:   bookingID,
		Reason:      reason,
		Status:      model.RefundPending,
		RequestedAt: s.timestamp(),
	}

	_, err = s.fleet.Refunds.Exec(ctx, `
		INSERT INTO RefundRequest (id, bookingId, reason, status, requestedAt, processedAt)
		VALUES (?, ?, ?, ?, ?, NULL)`,
		refund.ID, refund.BookingID, refund.Reason, string(refund.Status), refund.RequestedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.RefundRequest{}, fmt.Errorf("request refund %s: %w", id, ErrAllocationRace)
		}
		return model.RefundRequest{}, fmt.Errorf("request refund: %w", err)
	}

	s.logger.Info("refund requested",
		zap.String("refund", refund.ID),
		zap.String("booking", bookingID),
	)
	s.publish(ctx, TopicRefundRequested, RefundEvent{
		RefundID:   refund.ID,
		BookingID:  bookingID,
		Reason:     reason,
		OccurredAt: refund.RequestedAt,
	})

	return refund, nil
}

// RateTravel sets the rating and optional review on a travel-history row
// and returns the re-read row. The update itself is a silent no-op for an
// unknown id; the empty re-read is what surfaces ErrNotFound.
func (s *Service) RateTravel(ctx context.Context, historyID string, rating float64, review *string) (model.TravelHistory, error) {
	if err := ctx.Err(); err != nil {
		return model.TravelHistory{}, err
	}

	_, err := s.fleet.History.Exec(ctx,
		`UPDATE TravelHistory SET rating = ?, review = ? WHERE id = ?`,
		rating, review, historyID,
	)
	if err != nil {
		return model.TravelHistory{}, fmt.Errorf("rate travel %s: %w", historyID, err)
	}

	history, err := resolve.One(ctx, s.fleet.History, model.Histories, historyID)
	if err != nil {
		return model.TravelHistory{}, fmt.Errorf("rate travel: %w", err)
	}
	if history == nil {
		return model.TravelHistory{}, notFoundErr("travel history", historyID)
	}

	s.logger.Info("travel rated",
		zap.String("history", historyID),
		zap.Float64("rating", rating),
	)
	s.publish(ctx, TopicTravelRated, RatingEvent{
		HistoryID:   history.ID,
		PassengerID: history.PassengerID,
		Rating:      rating,
		OccurredAt:  s.timestamp(),
	})

	return *history, nil
}
