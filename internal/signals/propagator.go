package signals

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Propagator hands a result frame to the external orchestration mechanism.
// The core only produces frames; it never reads them back.
type Propagator interface {
	Propagate(ctx context.Context, frame *Frame) error
}

// KafkaPropagator publishes result frames to a Kafka topic so downstream
// declarative steps can consume them.
type KafkaPropagator struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaPropagator(brokers, topic string, logger *zap.Logger) *KafkaPropagator {
	return &KafkaPropagator{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger,
	}
}

func (p *KafkaPropagator) Propagate(ctx context.Context, frame *Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(frame.Name()),
		Value: payload,
	}); err != nil {
		return err
	}

	p.logger.Info("Result frame propagated",
		zap.String("frame", frame.Name()),
		zap.Strings("keys", frame.Keys()),
	)
	return nil
}

func (p *KafkaPropagator) Close() error {
	return p.writer.Close()
}
