package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EventLedger records processor event ids that were already applied.
type EventLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventLedger(client *redis.Client, ttl time.Duration) *EventLedger {
	return &EventLedger{
		client: client,
		ttl:    ttl,
	}
}

func (l *EventLedger) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := l.client.Exists(ctx, ledgerKey(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed: %w", err)
	}
	return n > 0, nil
}

func (l *EventLedger) Remember(ctx context.Context, eventID string) error {
	if err := l.client.Set(ctx, ledgerKey(eventID), 1, l.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func ledgerKey(eventID string) string {
	return "webhook:event:" + eventID
}
