package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newConfirmRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Binding rejects malformed input before the service is touched, so
	// a nil service is fine here.
	controller := NewCheckoutController(nil)
	router.POST("/payment/confirm", controller.ConfirmPayment)
	router.Match(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead},
		"/payment/confirm",
		controller.ConfirmPaymentWrongMethod,
	)
	return router
}

func TestConfirmPaymentMissingFieldsIs400(t *testing.T) {
	router := newConfirmRouter()

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing payment method", `{"clientSecret":"cs_1"}`},
		{"missing client secret", `{"paymentMethod":"pm_card"}`},
		{"not json", `stripeToken=tok_visa`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/payment/confirm", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestConfirmPaymentNonPostIs400(t *testing.T) {
	router := newConfirmRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/payment/confirm", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s on the confirm endpoint, got %d", method, w.Code)
			}
		})
	}
}
