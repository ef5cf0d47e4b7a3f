package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
)

const (
	cbRecordLength     = 10
	cbTimeout          = 30 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		log:      log.Named("events"),
	}
}

// Publish sends e keyed by the instance or author it concerns, so events
// for one record stay ordered within a partition.
func (p *Publisher) Publish(_ context.Context, e model.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(eventKey(e)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		p.log.Debug("event published",
			zap.String("kind", string(e.Kind)),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func eventKey(e model.Event) string {
	switch {
	case e.InstanceID != nil:
		return e.InstanceID.String()
	case e.AuthorID != nil:
		return "author-" + strconv.Itoa(*e.AuthorID)
	default:
		return string(e.Kind)
	}
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Noop is used when Kafka is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, model.Event) error { return nil }
