package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/shared"
)

const (
	relayBaseBackoff = 2 * time.Second
	relayMaxBackoff  = 10 * time.Minute
)

type RelaySettings struct {
	BatchSize   int32
	MaxAttempts int32
}

type RelayStats struct {
	Sent    int
	Retried int
	Failed  int
}

type OutboxRelayCommands interface {
	RelayPending(ctx context.Context) (RelayStats, error)
}

type outboxRelayCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	settings  RelaySettings
}

func NewOutboxRelayCommands(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, settings RelaySettings) OutboxRelayCommands {
	return &outboxRelayCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		settings:  settings,
	}
}

// RelayPending claims due events with SKIP LOCKED and holds the rows until
// the batch is published, so concurrent relays never send the same event.
// Delivery is at-least-once: a crash after publish re-sends on the next run.
func (r *outboxRelayCommandsImpl) RelayPending(ctx context.Context) (RelayStats, error) {
	var stats RelayStats

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stats = RelayStats{}
		now := r.clock.Now()

		events, err := tx.OrderEvents().ClaimQueued(ctx, tx.DB(), now, r.settings.BatchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, ev := range events {
			pubErr := r.publisher.Publish(ctx, ev)
			if pubErr == nil {
				if err := tx.OrderEvents().MarkSent(ctx, tx.DB(), ev.ID); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				stats.Sent++
				continue
			}

			attempts := ev.Attempts + 1
			if attempts >= r.settings.MaxAttempts {
				slog.Error("order event delivery failed permanently",
					"event_id", ev.ID, "kind", ev.Kind, "attempts", attempts, "error", pubErr.Error())
				if err := tx.OrderEvents().MarkFailed(ctx, tx.DB(), ev.ID, pubErr.Error()); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				stats.Failed++
				continue
			}

			slog.Warn("order event delivery failed, will retry",
				"event_id", ev.ID, "kind", ev.Kind, "attempts", attempts, "error", pubErr.Error())
			runAt := now.Add(RelayBackoff(attempts))
			if err := tx.OrderEvents().MarkRetry(ctx, tx.DB(), ev.ID, pubErr.Error(), runAt); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			stats.Retried++
		}
		return nil
	})

	return stats, err
}

// RelayBackoff doubles from relayBaseBackoff per attempt, capped at relayMaxBackoff.
func RelayBackoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := relayBaseBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= relayMaxBackoff {
			return relayMaxBackoff
		}
	}
	return d
}
