package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
	"github.com/hineshmeraka/epharmacy-api/initializers"
	"github.com/hineshmeraka/epharmacy-api/payments"
	"github.com/hineshmeraka/epharmacy-api/routes"
	"github.com/hineshmeraka/epharmacy-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	// Fail at startup, not at the first checkout attempt.
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is not set")
	}

	provider := payments.NewStripeClient(stripeKey)
	cartService := services.NewCartService(initializers.DB)
	checkoutService := services.NewCheckoutService(initializers.DB, cartService, provider)
	searchService := services.NewSearchService(initializers.DB)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server, controllers.NewSearchController(searchService))
	routes.CartRoutes(server, controllers.NewCartController(cartService))
	routes.CheckoutRoutes(server, controllers.NewCheckoutController(checkoutService))
	routes.PrescriptionRoutes(server)

	server.Run()
}
