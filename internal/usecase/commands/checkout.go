package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutInput struct {
	UserID   uuid.UUID
	OptionID uuid.UUID
	Quantity int
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	SessionID   string
	RedirectURL string
}

type CheckoutSettings struct {
	PublicBaseURL string
	Currency      string
}

type CheckoutCommands interface {
	InitiateCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow       shared.UnitOfWork
	processor PaymentProcessor
	clock     clock.Clock
	settings  CheckoutSettings
}

func NewCheckoutCommands(uow shared.UnitOfWork, processor PaymentProcessor, clk clock.Clock, settings CheckoutSettings) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:       uow,
		processor: processor,
		clock:     clk,
		settings:  settings,
	}
}

// InitiateCheckout commits the order before the processor is called, so a
// processor failure leaves a created order without a session id.
func (c *checkoutCommandsImpl) InitiateCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if !c.processor.Enabled() {
		return nil, ErrPaymentsDisabled
	}
	if in.OptionID == uuid.Nil {
		return nil, errs.Mark(errs.New("option id is required"), ErrInvalidRequest)
	}
	qty, err := order.NewQuantity(in.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	placed, opt, email, err := c.placeOrder(ctx, in.UserID, in.OptionID, qty)
	if err != nil {
		return nil, err
	}

	session, err := c.processor.CreateSession(ctx, SessionRequest{
		LineItem: LineItem{
			Name:            opt.LineItemName(),
			UnitAmountCents: opt.PriceCents,
			Quantity:        qty.Int(),
		},
		Metadata:      map[string]string{MetadataOrderID: placed.ID().String()},
		SuccessURL:    c.settings.PublicBaseURL + "/account?success=1",
		CancelURL:     fmt.Sprintf("%s/deal/%s?canceled=1", c.settings.PublicBaseURL, url.PathEscape(opt.DealSlug)),
		Currency:      placed.Currency(),
		CustomerEmail: email,
	})
	if err != nil {
		slog.Error("payment session creation failed", "order_id", placed.ID(), "error", err.Error())
		return nil, errs.Mark(err, ErrProviderFailure)
	}

	if err := placed.AttachSession(session.ID); err != nil {
		return nil, errs.Mark(err, ErrProviderFailure)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().AttachSession(ctx, tx.DB(), placed.ID(), session.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{
		OrderID:     placed.ID(),
		SessionID:   session.ID,
		RedirectURL: session.RedirectURL,
	}, nil
}

// placeOrder writes the order, its single item and the order.created event in one transaction.
func (c *checkoutCommandsImpl) placeOrder(
	ctx context.Context,
	userID, optionID uuid.UUID,
	qty order.Quantity,
) (*order.Order, *order.PurchasableOption, string, error) {
	var (
		placed *order.Order
		opt    *order.PurchasableOption
		email  string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reads().PurchasableOption(ctx, optionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !found.IsPurchasable() {
			return ErrNotFound
		}

		buyer, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		o, err := order.NewOrder(userID, *found, qty, c.settings.Currency, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}

		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		ev, err := shared.NewOrderEvent(shared.EventOrderCreated, o, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.OrderEvents().Enqueue(ctx, tx.DB(), ev); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		placed, opt, email = o, found, buyer.Email
		return nil
	})
	if err != nil {
		return nil, nil, "", err
	}

	return placed, opt, email, nil
}
