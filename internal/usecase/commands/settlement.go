package commands

import (
	"context"
	"log/slog"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

var errOrderUnknown = errs.New("settlement for unknown order")

type SettlementOutcome string

const (
	// SettlementApplied: the order moved to paid.
	SettlementApplied SettlementOutcome = "applied"
	// SettlementNoop: already paid, or the event id was processed before.
	SettlementNoop SettlementOutcome = "noop"
	// SettlementIgnored: authentic event that does not settle anything.
	SettlementIgnored SettlementOutcome = "ignored"
)

type SettlementResult struct {
	EventID   string
	EventType string
	OrderID   uuid.UUID
	Outcome   SettlementOutcome
}

type SettlementCommands interface {
	HandlePaymentEvent(ctx context.Context, payload []byte, signatureHeader string) (*SettlementResult, error)
}

type settlementCommandsImpl struct {
	uow       shared.UnitOfWork
	processor PaymentProcessor
	ledger    ProcessedEventLedger
	clock     clock.Clock
}

func NewSettlementCommands(uow shared.UnitOfWork, processor PaymentProcessor, ledger ProcessedEventLedger, clk clock.Clock) SettlementCommands {
	return &settlementCommandsImpl{
		uow:       uow,
		processor: processor,
		ledger:    ledger,
		clock:     clk,
	}
}

// HandlePaymentEvent only errors on a bad signature or a store failure. Every
// other outcome must be acknowledged so the processor stops redelivering.
func (s *settlementCommandsImpl) HandlePaymentEvent(ctx context.Context, payload []byte, signatureHeader string) (*SettlementResult, error) {
	ev, err := s.processor.VerifyAndParseEvent(payload, signatureHeader)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	result := &SettlementResult{EventID: ev.ID, EventType: ev.Type, Outcome: SettlementIgnored}
	if ev.Type != PaymentEventCheckoutCompleted {
		return result, nil
	}

	if s.seen(ctx, ev.ID) {
		result.Outcome = SettlementNoop
		return result, nil
	}

	orderID, err := uuid.Parse(ev.OrderID)
	if err != nil {
		slog.Warn("payment event without usable order id", "event_id", ev.ID, "order_id", ev.OrderID)
		s.remember(ctx, ev.ID)
		return result, nil
	}
	result.OrderID = orderID

	settlement, err := order.NewSettlement(ev.AmountTotal, ev.AmountSubtotal)
	if err != nil {
		slog.Warn("payment event with invalid amounts", "event_id", ev.ID, "order_id", orderID, "error", err.Error())
		s.remember(ctx, ev.ID)
		return result, nil
	}

	applied, err := s.settle(ctx, orderID, settlement)
	if err != nil {
		if errs.Is(err, errOrderUnknown) {
			slog.Warn("payment event for unknown order", "event_id", ev.ID, "order_id", orderID)
			s.remember(ctx, ev.ID)
			return result, nil
		}
		return nil, err
	}

	result.Outcome = SettlementNoop
	if applied {
		result.Outcome = SettlementApplied
	}
	s.remember(ctx, ev.ID)
	return result, nil
}

// settle relies on the guarded update; a concurrent delivery that loses the
// race sees zero affected rows and enqueues nothing.
func (s *settlementCommandsImpl) settle(ctx context.Context, orderID uuid.UUID, settlement order.Settlement) (bool, error) {
	var applied bool

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied = false

		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errOrderUnknown
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := s.clock.Now()
		changed, err := o.Settle(settlement, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !changed {
			return nil
		}

		moved, err := tx.Orders().MarkPaid(ctx, tx.DB(), o, order.SettleableStatuses())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !moved {
			return nil
		}

		paid, err := shared.NewOrderEvent(shared.EventOrderPaid, o, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.OrderEvents().Enqueue(ctx, tx.DB(), paid); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		applied = true
		return nil
	})

	return applied, err
}

func (s *settlementCommandsImpl) seen(ctx context.Context, eventID string) bool {
	if eventID == "" {
		return false
	}
	ok, err := s.ledger.Seen(ctx, eventID)
	if err != nil {
		slog.Warn("event ledger lookup failed", "event_id", eventID, "error", err.Error())
		return false
	}
	return ok
}

func (s *settlementCommandsImpl) remember(ctx context.Context, eventID string) {
	if eventID == "" {
		return
	}
	if err := s.ledger.Remember(ctx, eventID); err != nil {
		slog.Warn("event ledger write failed", "event_id", eventID, "error", err.Error())
	}
}
