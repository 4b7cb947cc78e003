package travel

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Topics carrying domain events published after each successful mutation.
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicRefundRequested  = "refund.requested"
	TopicTravelRated      = "travel.rated"
)

// BookingEvent is the payload for booking lifecycle topics.
type BookingEvent struct {
	BookingID   string `json:"bookingId"`
	PassengerID string `json:"passengerId"`
	ScheduleID  string `json:"scheduleId"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurredAt"`
}

// RefundEvent is the payload for TopicRefundRequested.
type RefundEvent struct {
	RefundID   string `json:"refundId"`
	BookingID  string `json:"bookingId"`
	Reason     string `json:"reason"`
	OccurredAt string `json:"occurredAt"`
}

// RatingEvent is the payload for TopicTravelRated.
type RatingEvent struct {
	HistoryID   string  `json:"historyId"`
	PassengerID string  `json:"passengerId"`
	Rating      float64 `json:"rating"`
	OccurredAt  string  `json:"occurredAt"`
}

// publish sends a domain event on the configured publisher. The mutation's
// write is already durable when publish runs, so a publish failure is
// logged and swallowed rather than failing the request; delivery is
// at-most-once.
func (s *Service) publish(ctx context.Context, topic string, payload any) {
	if s.events == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal domain event", zap.String("topic", topic), zap.Error(err))
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), raw)
	msg.SetContext(ctx)
	if err := s.events.Publish(topic, msg); err != nil {
		s.logger.Error("publish domain event", zap.String("topic", topic), zap.Error(err))
	}
}
