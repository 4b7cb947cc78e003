package travel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripstitch/tripstitch/internal/model"
)

func TestListSchedules(t *testing.T) {
	svc, _ := newTestService(t)

	schedules, err := svc.ListSchedules(context.Background())
	require.NoError(t, err)
	assert.Len(t, schedules, 9)
}

func TestListPassengers(t *testing.T) {
	svc, _ := newTestService(t)

	passengers, err := svc.ListPassengers(context.Background())
	require.NoError(t, err)
	assert.Len(t, passengers, 5)
}

func TestBookingsByPassenger(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	bookings, err := svc.BookingsByPassenger(ctx, "1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "1", bookings[0].PassengerID)

	none, err := svc.BookingsByPassenger(ctx, "P404")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestHistoryByPassenger(t *testing.T) {
	svc, _ := newTestService(t)

	history, err := svc.HistoryByPassenger(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Rating)
	assert.Equal(t, 5.0, *history[0].Rating)
}

func TestAllBookings(t *testing.T) {
	svc, _ := newTestService(t)

	bookings, err := svc.AllBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 5)
}

func TestAllRefundRequests(t *testing.T) {
	svc, _ := newTestService(t)

	refunds, err := svc.AllRefundRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, model.RefundPending, refunds[0].Status)
}

func TestAllHistory(t *testing.T) {
	svc, _ := newTestService(t)

	history, err := svc.AllHistory(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestFieldResolvers_SeededEdges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	refunds, err := svc.AllRefundRequests(ctx)
	require.NoError(t, err)
	require.Len(t, refunds, 1)

	booking, err := svc.RefundBooking(ctx, refunds[0])
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "4", booking.ID)

	history, err := svc.HistoryByPassenger(ctx, "1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	passenger, err := svc.HistoryPassenger(ctx, history[0])
	require.NoError(t, err)
	require.NotNil(t, passenger)
	assert.Equal(t, "John Doe", passenger.Name)

	schedule, err := svc.HistorySchedule(ctx, history[0])
	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.Equal(t, "4", schedule.ID)
}
