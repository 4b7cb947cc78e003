// Package events provides the in-process event bus the mutation layer
// publishes to, plus the zap adapter watermill requires for its own
// logging.
package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// NewBus creates an in-memory Pub/Sub. Delivery is at-most-once and scoped
// to this process; mutations remain durable regardless of subscribers.
func NewBus(logger *zap.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, NewZapLoggerAdapter(logger))
}

// RunLogConsumer subscribes to the given topics and logs every message
// until ctx is cancelled. It is the default consumer wired by the serve
// command; external processors subscribe the same way.
func RunLogConsumer(ctx context.Context, sub message.Subscriber, logger *zap.Logger, topics ...string) error {
	for _, topic := range topics {
		messages, err := sub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func(topic string, messages <-chan *message.Message) {
			for msg := range messages {
				logger.Info("domain event",
					zap.String("topic", topic),
					zap.String("message", msg.UUID),
					zap.ByteString("payload", msg.Payload),
				)
				msg.Ack()
			}
		}(topic, messages)
	}
	return nil
}

type zapLoggerAdapter struct {
	logger *zap.Logger
	fields watermill.LogFields
}

// NewZapLoggerAdapter bridges watermill's logging onto zap.
func NewZapLoggerAdapter(logger *zap.Logger) watermill.LoggerAdapter {
	return &zapLoggerAdapter{logger: logger, fields: watermill.LogFields{}}
}

func (a *zapLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(a.zapFields(fields), zap.Error(err))...)
}

func (a *zapLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(msg, a.zapFields(fields)...)
}

func (a *zapLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, a.zapFields(fields)...)
}

func (a *zapLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, a.zapFields(fields)...)
}

func (a *zapLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	combined := make(watermill.LogFields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		combined[k] = v
	}
	for k, v := range fields {
		combined[k] = v
	}
	return &zapLoggerAdapter{logger: a.logger, fields: combined}
}

func (a *zapLoggerAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(a.fields)+len(fields))
	for k, v := range a.fields {
		out = append(out, zap.Any(k, v))
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
