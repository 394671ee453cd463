package payment

import (
	"context"

	"travel-deals/internal/usecase/commands"
)

// DisabledProcessor is wired when PAYMENT_ENABLED=false.
type DisabledProcessor struct{}

func NewDisabledProcessor() *DisabledProcessor {
	return &DisabledProcessor{}
}

func (DisabledProcessor) Enabled() bool { return false }

func (DisabledProcessor) CreateSession(context.Context, commands.SessionRequest) (*commands.PaymentSession, error) {
	return nil, commands.ErrPaymentsDisabled
}

func (DisabledProcessor) VerifyAndParseEvent([]byte, string) (*commands.PaymentEvent, error) {
	return nil, commands.ErrInvalidSignature
}
