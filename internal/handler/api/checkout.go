package api

import (
	"io"
	"log/slog"
	"net/http"

	reqdto "travel-deals/internal/handler/dto/request"
	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/handler/httperr"
	"travel-deals/internal/handler/middleware"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Stripe events are well under this; anything bigger is not from Stripe.
const maxWebhookBytes = 1 << 20

type CheckoutHandler struct {
	checkout   commands.CheckoutCommands
	settlement commands.SettlementCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, settlement commands.SettlementCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:   checkout,
		settlement: settlement,
	}
}

// @Summary Start checkout
// @Description Create a pending order for one option and open a hosted payment session
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Login required", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input", nil)
		return
	}

	input, err := req.ToInput(userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input", nil)
		return
	}

	result, err := h.checkout.InitiateCheckout(c.Request.Context(), input)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPaymentsDisabled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payments are disabled", nil)
		case errs.Is(err, commands.ErrInvalidRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input", nil)
		case errs.Is(err, commands.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Option not found", nil)
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Login required", nil)
		case errs.Is(err, commands.ErrProviderFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Payment webhook
// @Description Verify a signed processor event and settle the referenced order
// @Tags checkout
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Processor signature"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *CheckoutHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	result, err := h.settlement.HandlePaymentEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errs.Is(err, commands.ErrInvalidSignature) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook signature verification failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	slog.Info("payment event handled",
		"event_id", result.EventID,
		"event_type", result.EventType,
		"order_id", result.OrderID,
		"outcome", string(result.Outcome),
	)
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
}
