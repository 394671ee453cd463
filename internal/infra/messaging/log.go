package messaging

import (
	"context"
	"log/slog"

	"travel-deals/internal/usecase/shared"
)

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev shared.OutboxEvent) error {
	p.logger.Info("order event",
		"event_id", ev.ID.String(),
		"event_type", ev.Kind,
		"order_id", ev.AggregateID.String(),
		"payload", string(ev.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
