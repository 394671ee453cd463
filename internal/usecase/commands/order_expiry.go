package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/shared"
)

const expiryBatchSize = 200

type OrderExpiryCommands interface {
	// ExpireStale moves created orders older than the TTL to expired and
	// reports how many it moved.
	ExpireStale(ctx context.Context) (int, error)
}

type orderExpiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewOrderExpiryCommands(uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration) OrderExpiryCommands {
	return &orderExpiryCommandsImpl{
		uow:   uow,
		clock: clk,
		ttl:   ttl,
	}
}

func (e *orderExpiryCommandsImpl) ExpireStale(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := e.expireBatch(ctx)
		total += n
		if err != nil {
			return total, err
		}
		if n < expiryBatchSize {
			return total, nil
		}
	}
}

// expireBatch uses a guarded transition, so an order settled between the
// select and the update stays paid.
func (e *orderExpiryCommandsImpl) expireBatch(ctx context.Context) (int, error) {
	var expired int

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = 0
		now := e.clock.Now()

		stale, err := tx.Orders().ListExpirable(ctx, tx.DB(), now.Add(-e.ttl), expiryBatchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, o := range stale {
			if err := o.Expire(now); err != nil {
				slog.Warn("order not expirable", "order_id", o.ID(), "status", o.Status().String())
				continue
			}

			moved, err := tx.Orders().Transition(ctx, tx.DB(), o, order.StatusCreated)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if !moved {
				continue
			}

			ev, err := shared.NewOrderEvent(shared.EventOrderExpired, o, now)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := tx.OrderEvents().Enqueue(ctx, tx.DB(), ev); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
