package payment

import (
	"context"
	"encoding/json"
	"net/http"

	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type checkoutSessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeProcessor struct {
	sessions      checkoutSessionCreator
	webhookSecret string
}

func NewStripeProcessor(cfg config.PaymentConfig) *StripeProcessor {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	backends := stripe.NewBackends(httpClient)
	if cfg.APIBaseURL != "" {
		backends = stripe.NewBackendsWithConfig(&stripe.BackendConfig{
			HTTPClient: httpClient,
			URL:        stripe.String(cfg.APIBaseURL),
		})
	}
	api := client.New(cfg.SecretKey, backends)
	return newStripeProcessor(api.CheckoutSessions, cfg.WebhookSecret)
}

func newStripeProcessor(sessions checkoutSessionCreator, webhookSecret string) *StripeProcessor {
	return &StripeProcessor{
		sessions:      sessions,
		webhookSecret: webhookSecret,
	}
}

func (p *StripeProcessor) Enabled() bool { return true }

func (p *StripeProcessor) CreateSession(ctx context.Context, req commands.SessionRequest) (*commands.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.LineItem.Name),
					},
					UnitAmount: stripe.Int64(req.LineItem.UnitAmountCents),
				},
				Quantity: stripe.Int64(int64(req.LineItem.Quantity)),
			},
		},
		Metadata: req.Metadata,
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx

	s, err := p.sessions.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe: create checkout session"), commands.ErrProviderFailure)
	}
	if s.ID == "" || s.URL == "" {
		return nil, errs.Mark(errs.New("stripe: session without id or url"), commands.ErrProviderFailure)
	}

	return &commands.PaymentSession{ID: s.ID, RedirectURL: s.URL}, nil
}

func (p *StripeProcessor) VerifyAndParseEvent(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	if p.webhookSecret == "" || signatureHeader == "" {
		return nil, commands.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe: verify webhook"), commands.ErrInvalidSignature)
	}

	out := &commands.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if out.Type != commands.PaymentEventCheckoutCompleted || event.Data == nil {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		// Authentic but unreadable; the reconciler acknowledges it without an order id.
		return out, nil
	}
	out.OrderID = session.Metadata[commands.MetadataOrderID]
	out.AmountTotal = session.AmountTotal
	out.AmountSubtotal = session.AmountSubtotal
	return out, nil
}
