package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	CatalogEventsTopic         = "catalog.events"
	CatalogEventsConsumerGroup = "catalog-events"
)

type Config struct {
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close()

	existing, err := admin.ListTopics()
	if err != nil {
		return errors.Wrap(err, "list topics")
	}
	for _, topic := range topics {
		if _, ok := existing[topic]; ok {
			continue
		}
		if err := admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}, false); err != nil {
			return errors.Wrapf(err, "create topic %s", topic)
		}
	}
	return nil
}

// Consume blocks until ctx is cancelled, rejoining the group after every
// rebalance.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("group.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
