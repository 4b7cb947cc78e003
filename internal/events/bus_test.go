package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewBus(zap.NewNop())
	t.Cleanup(func() { bus.Close() })

	ctx := context.Background()
	messages, err := bus.Subscribe(ctx, "booking.created")
	require.NoError(t, err)

	msg := message.NewMessage("test-id", []byte(`{"bookingId":"b1"}`))
	require.NoError(t, bus.Publish("booking.created", msg))

	select {
	case got := <-messages:
		assert.Equal(t, "test-id", got.UUID)
		assert.JSONEq(t, `{"bookingId":"b1"}`, string(got.Payload))
		got.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestRunLogConsumer_AcksMessages(t *testing.T) {
	bus := NewBus(zap.NewNop())
	t.Cleanup(func() { bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, RunLogConsumer(ctx, bus, zap.NewNop(), "refund.requested"))

	msg := message.NewMessage("m1", []byte(`{}`))
	require.NoError(t, bus.Publish("refund.requested", msg))

	select {
	case <-msg.Acked():
	case <-time.After(5 * time.Second):
		t.Fatal("message was not acked by log consumer")
	}
}
