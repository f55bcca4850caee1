// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"pedidos/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher on a kafka-go
// writer. Events are keyed by order ID so all events of one order land in the
// same partition, preserving their relative order for consumers.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher writing to the given broker and
// topic. Close must be called on shutdown.
func NewOrderEventPublisher(broker, topic string, logger *slog.Logger) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}

	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_order_event_publisher"),
	}
}

// PublishOrderChanged serializes the event as JSON and writes it to the topic.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "Published order changed event",
		"order_id", event.OrderID, "status", event.Status)
	return nil
}

// Close releases the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderEventPublisher discards events. Used when no broker is configured.
type NoopOrderEventPublisher struct{}

// NewNoopOrderEventPublisher creates a publisher that drops every event.
func NewNoopOrderEventPublisher() NoopOrderEventPublisher {
	return NoopOrderEventPublisher{}
}

// PublishOrderChanged discards the event.
func (NoopOrderEventPublisher) PublishOrderChanged(context.Context, ports.OrderChangedEvent) error {
	return nil
}
