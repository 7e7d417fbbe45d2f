package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
	"github.com/hineshmeraka/epharmacy-api/middlewares"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart", middlewares.RequireAuth(), cart.GetCart)
	server.POST("/vcart/:productId", middlewares.RequireAuth(), cart.AddToCart)
	server.POST("/dcart/:cartItemId", middlewares.RequireAuth(), cart.RemoveFromCart)
}
