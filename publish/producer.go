// Package publish pushes verification results onto a Kafka topic so other
// services (dashboards, alerting) can react to verdicts as they happen.
package publish

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"webhunt/types"

	"github.com/IBM/sarama"
)

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// Producer publishes verification results to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerFromEnv returns a Producer if KAFKA_BROKERS is configured
// (comma-separated). Topic comes from KAFKA_TOPIC, default "webhunt.checks".
// Returns nil, nil when unconfigured: publishing is optional.
func NewProducerFromEnv() (*Producer, error) {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, nil
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "webhunt.checks"
	}

	return NewProducer(ProducerConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	})
}

// NewProducer creates a synchronous Kafka producer.
func NewProducer(config ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Printf("✅ Kafka producer ready (topic: %s)", config.Topic)
	return &Producer{producer: producer, topic: config.Topic}, nil
}

// PublishResult sends one verification result, keyed by claim hash so
// re-checks of the same claim land on the same partition.
func (p *Producer) PublishResult(result *types.VerdictResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(types.GenerateID(result.Claim)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	log.Printf("📤 Published verdict for %q (partition=%d, offset=%d)", result.Claim, partition, offset)
	return nil
}

// Close gracefully shuts down the producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
