package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"travel-deals/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("qty must be a whole number")

type CheckoutRequest struct {
	OptionID string      `json:"option_id" binding:"required,uuid"`
	Qty      json.Number `json:"qty"`
}

// ToInput defaults an absent qty to 1. Range checks are left to the use case.
func (r *CheckoutRequest) ToInput(userID uuid.UUID) (commands.CheckoutInput, error) {
	optionID, err := uuid.Parse(r.OptionID)
	if err != nil {
		return commands.CheckoutInput{}, err
	}

	qty := 1
	if raw := strings.TrimSpace(r.Qty.String()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return commands.CheckoutInput{}, ErrInvalidQuantity
		}
		qty = n
	}

	return commands.CheckoutInput{
		UserID:   userID,
		OptionID: optionID,
		Quantity: qty,
	}, nil
}
