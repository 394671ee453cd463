package order

import (
	"errors"
	"math"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 2147483647")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrAmountOverflow  = errors.New("amount out of range")
)

const (
	DefaultQuantity = 1
	// MaxQuantity matches the int4 qty column.
	MaxQuantity = math.MaxInt32
)

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < 1 || n > MaxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Int() int {
	return q.value
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(q Quantity) (Money, error) {
	n := int64(q.value)
	if n != 0 && m.cents > math.MaxInt64/n {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents * n}, nil
}

// Settlement carries the processor's authoritative amounts.
type Settlement struct {
	subtotal Money
	total    Money
}

// NewSettlement falls back to the total when the processor reports no subtotal.
func NewSettlement(amountTotal, amountSubtotal int64) (Settlement, error) {
	total, err := NewMoney(amountTotal)
	if err != nil {
		return Settlement{}, err
	}
	if amountSubtotal == 0 {
		amountSubtotal = amountTotal
	}
	subtotal, err := NewMoney(amountSubtotal)
	if err != nil {
		return Settlement{}, err
	}
	return Settlement{subtotal: subtotal, total: total}, nil
}

func (s Settlement) Subtotal() Money { return s.subtotal }
func (s Settlement) Total() Money    { return s.total }
