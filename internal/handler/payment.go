package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/middleware"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CheckoutRequest is the HTTP request body for starting a checkout.
type CheckoutRequest struct {
	BookingID string `json:"booking_id"`
}

// CheckoutResponse is the HTTP response for a started checkout.
type CheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PaymentResponse is the HTTP response for payment lookups.
type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at,omitempty"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Status:    string(p.Status),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// CreateCheckout handles POST /v1/payments/checkout
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payment, checkoutURL, err := h.paymentService.CreateCheckout(c.Request.Context(), req.BookingID, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CheckoutResponse{
		PaymentID:   payment.ID,
		SessionID:   payment.SessionID,
		CheckoutURL: checkoutURL,
	})
}

// WebhookEvent is the provider's checkout event payload.
type WebhookEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Webhook handles POST /v1/payments/webhook
//
// The provider retries deliveries, so repeated events for the same session
// must succeed without changing state twice.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var event WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var err error
	switch event.Type {
	case "checkout.session.completed":
		_, err = h.paymentService.HandleCheckoutCompleted(c.Request.Context(), event.SessionID)
	case "checkout.session.failed", "checkout.session.expired":
		_, err = h.paymentService.HandleCheckoutFailed(c.Request.Context(), event.SessionID)
	default:
		// Unknown event types are acknowledged so the provider stops retrying.
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"received": true})
}

// GetPayment handles GET /v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}
