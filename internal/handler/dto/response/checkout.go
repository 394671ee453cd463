package response

import "travel-deals/internal/usecase/commands"

type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:   r.SessionID,
		RedirectURL: r.RedirectURL,
	}
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
