package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
	"github.com/hineshmeraka/epharmacy-api/middlewares"
)

func CheckoutRoutes(server *gin.Engine, checkout *controllers.CheckoutController) {
	server.GET("/payment", middlewares.RequireAuth(), checkout.BeginPayment)
	server.POST("/payment/confirm", middlewares.RequireAuth(), checkout.ConfirmPayment)
	// Confirmation is POST-only; anything else is malformed input, not
	// a missing route.
	server.Match(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead},
		"/payment/confirm",
		checkout.ConfirmPaymentWrongMethod,
	)
	server.GET("/orders", middlewares.RequireAuth(), controllers.GetMyOrders)
}
