package worker

import (
	"context"
	"log/slog"
	"time"

	"travel-deals/internal/usecase/commands"
)

func OutboxRelayJob(relay commands.OutboxRelayCommands, interval time.Duration) Job {
	return Job{
		Name:     "outbox-relay",
		Interval: interval,
		Run: func(ctx context.Context) error {
			stats, err := relay.RelayPending(ctx)
			if err != nil {
				return err
			}
			if stats.Sent+stats.Retried+stats.Failed > 0 {
				slog.Info("order events relayed",
					"sent", stats.Sent, "retried", stats.Retried, "failed", stats.Failed)
			}
			return nil
		},
	}
}

func OrderExpiryJob(expiry commands.OrderExpiryCommands, interval time.Duration) Job {
	return Job{
		Name:     "order-expiry",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := expiry.ExpireStale(ctx)
			if n > 0 {
				slog.Info("stale orders expired", "count", n)
			}
			return err
		},
	}
}
