package handler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

type recordEvent func(ctx context.Context, e model.Event) error

// Consumer stores catalog events read from Kafka.
type Consumer struct {
	recordEventHandler recordEvent
	log                *zap.Logger
	ready              chan struct{}
	readyOnce          sync.Once
}

func NewConsumer(record recordEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordEventHandler: record,
		log:                log.Named("consumer"),
		ready:              make(chan struct{}),
	}
}

// Ready is closed once the first session has been set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.readyOnce.Do(func() { close(consumer.ready) })
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var e model.Event
			if err := json.Unmarshal(message.Value, &e); err != nil {
				consumer.log.Error("decode event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordEventHandler(session.Context(), e); err != nil {
				// Ending the session before any later mark makes the group
				// resume from this offset.
				consumer.log.Error("consumer.recordEventHandler",
					zap.Int64("offset", message.Offset), zap.Error(err))
				return errors.Wrapf(err, "record event at offset %d", message.Offset)
			}

			consumer.log.Debug("message claimed",
				zap.String("kind", string(e.Kind)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
