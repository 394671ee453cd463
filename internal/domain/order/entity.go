package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrOptionNotPurchasable   = errors.New("option is not purchasable")
	ErrSessionAlreadyAttached = errors.New("payment session already attached")
	ErrEmptySessionID         = errors.New("payment session id cannot be empty")
)

// PurchasableOption is the option/deal snapshot checkout prices and records.
type PurchasableOption struct {
	OptionID           uuid.UUID
	DealID             uuid.UUID
	DealSlug           string
	DealTitle          string
	OptionName         string
	PriceCents         int64
	OriginalPriceCents *int64
	OptionActive       bool
	DealActive         bool
}

func (p PurchasableOption) IsPurchasable() bool {
	return p.OptionActive && p.DealActive && p.PriceCents > 0
}

// LineItemName is the label shown on the processor's hosted checkout.
func (p PurchasableOption) LineItemName() string {
	return p.DealTitle + " - " + p.OptionName
}

type Item struct {
	id                 uuid.UUID
	dealID             uuid.UUID
	optionID           uuid.UUID
	quantity           Quantity
	unitPrice          Money
	originalPriceCents *int64
	dealTitle          string
	optionName         string
}

func ReconstructItem(
	id, dealID, optionID uuid.UUID,
	quantity Quantity,
	unitPrice Money,
	originalPriceCents *int64,
	dealTitle, optionName string,
) Item {
	return Item{
		id:                 id,
		dealID:             dealID,
		optionID:           optionID,
		quantity:           quantity,
		unitPrice:          unitPrice,
		originalPriceCents: originalPriceCents,
		dealTitle:          dealTitle,
		optionName:         optionName,
	}
}

func (i Item) ID() uuid.UUID              { return i.id }
func (i Item) DealID() uuid.UUID          { return i.dealID }
func (i Item) OptionID() uuid.UUID        { return i.optionID }
func (i Item) Quantity() Quantity         { return i.quantity }
func (i Item) UnitPrice() Money           { return i.unitPrice }
func (i Item) OriginalPriceCents() *int64 { return i.originalPriceCents }
func (i Item) DealTitle() string          { return i.dealTitle }
func (i Item) OptionName() string         { return i.optionName }
func (i Item) LineTotal() (Money, error)  { return i.unitPrice.Times(i.quantity) }

type Order struct {
	id               uuid.UUID
	userID           uuid.UUID
	status           Status
	subtotal         Money
	total            Money
	currency         string
	paymentSessionID *string
	paidAt           *time.Time
	items            []Item
	createdAt        time.Time
	updatedAt        time.Time
}

// NewOrder prices a single-item order. No tax or shipping is modeled, so total == subtotal.
func NewOrder(userID uuid.UUID, opt PurchasableOption, qty Quantity, currency string, now time.Time) (*Order, error) {
	if !opt.IsPurchasable() {
		return nil, ErrOptionNotPurchasable
	}

	unit, err := NewMoney(opt.PriceCents)
	if err != nil {
		return nil, err
	}
	subtotal, err := unit.Times(qty)
	if err != nil {
		return nil, err
	}

	item := Item{
		id:                 uuid.New(),
		dealID:             opt.DealID,
		optionID:           opt.OptionID,
		quantity:           qty,
		unitPrice:          unit,
		originalPriceCents: opt.OriginalPriceCents,
		dealTitle:          opt.DealTitle,
		optionName:         opt.OptionName,
	}

	return &Order{
		id:        uuid.New(),
		userID:    userID,
		status:    StatusCreated,
		subtotal:  subtotal,
		total:     subtotal,
		currency:  currency,
		items:     []Item{item},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	status Status,
	subtotal, total Money,
	currency string,
	paymentSessionID *string,
	paidAt *time.Time,
	items []Item,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		status:           status,
		subtotal:         subtotal,
		total:            total,
		currency:         currency,
		paymentSessionID: paymentSessionID,
		paidAt:           paidAt,
		items:            items,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (o *Order) AttachSession(sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if o.paymentSessionID != nil {
		return ErrSessionAlreadyAttached
	}
	o.paymentSessionID = &sessionID
	return nil
}

// Settle moves the order to paid with the processor's amounts. It reports false
// without error when the order is already paid, so redelivered events are no-ops.
func (o *Order) Settle(s Settlement, now time.Time) (bool, error) {
	if o.status == StatusPaid {
		return false, nil
	}
	if !CanTransition(o.status, StatusPaid) {
		return false, ErrInvalidTransition
	}
	o.status = StatusPaid
	o.subtotal = s.Subtotal()
	o.total = s.Total()
	o.paidAt = &now
	o.updatedAt = now
	return true, nil
}

func (o *Order) Expire(now time.Time) error {
	if !CanTransition(o.status, StatusExpired) {
		return ErrInvalidTransition
	}
	o.status = StatusExpired
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) UserID() uuid.UUID         { return o.userID }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Subtotal() Money           { return o.subtotal }
func (o *Order) Total() Money              { return o.total }
func (o *Order) Currency() string          { return o.currency }
func (o *Order) PaymentSessionID() *string { return o.paymentSessionID }
func (o *Order) PaidAt() *time.Time        { return o.paidAt }
func (o *Order) Items() []Item             { return o.items }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
