package mykafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(address []string) (*Producer, error) {
	if len(address) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(address...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}

	return &Producer{writer: w}, nil
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
