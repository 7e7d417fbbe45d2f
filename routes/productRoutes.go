package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
	"github.com/hineshmeraka/epharmacy-api/middlewares"
)

func ProductRoutes(server *gin.Engine, search *controllers.SearchController) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)
	server.GET("/search", search.SearchProducts)
	server.POST("/products", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
	server.POST("/products/images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadProductImage)
}
