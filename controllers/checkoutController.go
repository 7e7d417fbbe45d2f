package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/payments"
	"github.com/hineshmeraka/epharmacy-api/services"
	"github.com/hineshmeraka/epharmacy-api/utils"
	"github.com/shopspring/decimal"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

// BeginPayment handles GET /payment. It opens (or reuses) a payment
// intent for the current cart total and returns the client secret the
// caller needs to confirm it.
func (c *CheckoutController) BeginPayment(ctx *gin.Context) {
	intent, err := c.Checkout.Begin(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		var providerErr *payments.ProviderError
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		case errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		case errors.As(err, &providerErr):
			sendErrorResponse(ctx, http.StatusBadGateway, "Payment error: "+providerErr.Message)
		default:
			log.Println("Begin payment error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"amountCents":  intent.AmountCents,
		"currency":     intent.Currency,
	})
}

// ConfirmPaymentWrongMethod answers non-POST hits on the confirm
// endpoint with the same 400 advisory as malformed input.
func (c *CheckoutController) ConfirmPaymentWrongMethod(ctx *gin.Context) {
	sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request")
}

type confirmPaymentData struct {
	ClientSecret  string `json:"clientSecret" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ConfirmPayment handles POST /payment/confirm. Malformed input is a
// 400; a declined payment leaves the cart intact.
func (c *CheckoutController) ConfirmPayment(ctx *gin.Context) {
	var data confirmPaymentData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := c.Checkout.Confirm(ctx.Request.Context(), currentUserID(ctx), data.ClientSecret, data.PaymentMethod)
	if err != nil {
		var providerErr *payments.ProviderError
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		case errors.Is(err, services.ErrIntentNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Payment intent not found")
		case errors.Is(err, services.ErrIntentClosed):
			sendErrorResponse(ctx, http.StatusConflict, "This payment was already processed")
		case errors.As(err, &providerErr):
			sendErrorResponse(ctx, http.StatusBadGateway, "Payment error: "+providerErr.Message)
		default:
			log.Println("Confirm payment error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if !result.Confirmed {
		sendErrorResponse(ctx, http.StatusPaymentRequired, msgPaymentFailed)
		return
	}

	c.sendReceipt(ctx, result)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgPaymentSuccess,
		"orders":  result.Orders,
	})
}

// sendReceipt emails a payment receipt; failures are logged, never
// surfaced.
func (c *CheckoutController) sendReceipt(ctx *gin.Context, result services.ConfirmResult) {
	email := currentUserEmail(ctx)
	if email == "" {
		return
	}

	total := decimal.Zero
	for _, order := range result.Orders {
		total = total.Add(order.Price.Mul(decimal.NewFromInt(int64(order.Quantity))))
	}

	if err := utils.SendReceiptEmail(email, total.StringFixed(2)); err != nil {
		log.Println("Error sending receipt email:", err)
	}
}
