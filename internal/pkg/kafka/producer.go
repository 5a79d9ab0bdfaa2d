package kafka

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/probe"
	"dashboard/pkg/logger"
	"dashboard/pkg/retrier"
	"github.com/IBM/sarama"
)

const (
	probeInitialInterval = 1 * time.Second
	probeMaxElapsedTime  = 2 * time.Minute

	producerRetryMax = 3
)

func NewSaramaConfig(versionStr string, requiredAcks sarama.RequiredAcks) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует оба флага
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = requiredAcks
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

// NewSyncProducer дожидается доступности брокеров и поднимает синхронного продюсера.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Sarama.Version, sarama.WaitForLocal)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = probe.Wait(ctx, kafkaLog, "kafka", retrier.Probe(probeInitialInterval, probeMaxElapsedTime),
		func(context.Context) error {
			return pingKafka(kafkaLog, brokers, saramaConfig)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return producer, nil
}

func pingKafka(log logger.Logger, brokers []string, cfg *sarama.Config) error {
	client, err := sarama.NewClient(brokers, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close Kafka connection",
				logger.NewField("error", err),
			)
		}
	}()

	_, err = client.Topics()
	return err
}
