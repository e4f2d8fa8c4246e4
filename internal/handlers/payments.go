package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

// SignatureHeader carries the webhook HMAC.
const SignatureHeader = "X-Signature"

// maxWebhookBytes bounds the webhook body.
const maxWebhookBytes = 1 << 20

//go:generate mockgen -source=payments.go -destination=payments_mock_test.go -package=handlers

// Payments sells XP packages and settles orders.
type Payments interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, code string) (*services.CheckoutOrder, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, orderID, paymentID, signature string) (*services.PaymentResult, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

// CreateOrderRequest is the body for starting a checkout
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// required: true
	// default: starter
	Package string `json:"package"`
}

// VerifyPaymentRequest is the body returned by the checkout widget
// swagger:model VerifyPaymentRequest
type VerifyPaymentRequest struct {
	// required: true
	// default: order_9A33XWu170gUtm
	OrderID string `json:"order_id"`

	// required: true
	// default: pay_29QQoUBi66xm2f
	PaymentID string `json:"payment_id"`

	// required: true
	Signature string `json:"signature"`
}

// NewCreateOrderHandler returns an HTTP handler creating a gateway order.
// @Summary Create XP order
// @Tags payments
// @Accept json
// @Produce json
// @Param order body handlers.CreateOrderRequest true "Package"
// @Success 201 {object} services.CheckoutOrder
// @Failure 400 {object} handlers.ErrorResponse "Unknown package"
// @Failure 502 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /payments/orders [post]
func NewCreateOrderHandler(svc Payments) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req CreateOrderRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		order, err := svc.CreateOrder(r.Context(), userID, req.Package)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, order)
	}
}

// NewVerifyPaymentHandler returns an HTTP handler settling a checkout.
// @Summary Verify payment
// @Description Checks the checkout signature and credits the package once
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body handlers.VerifyPaymentRequest true "Checkout result"
// @Success 200 {object} services.PaymentResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid signature"
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Order can no longer be paid"
// @Security BearerAuth
// @Router /payments/verify [post]
func NewVerifyPaymentHandler(svc Payments) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req VerifyPaymentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := svc.VerifyPayment(r.Context(), userID, req.OrderID, req.PaymentID, req.Signature)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewWebhookHandler returns an HTTP handler for gateway events.
// @Summary Payment webhook
// @Description Signed gateway callback; settles captured payments
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Signature header string true "HMAC-SHA256 of the body"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid signature"
// @Router /payments/webhook [post]
func NewWebhookHandler(svc Payments) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := svc.HandleWebhook(r.Context(), body, r.Header.Get(SignatureHeader)); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
