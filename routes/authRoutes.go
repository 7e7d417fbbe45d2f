package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/signup", controllers.Signup)
	server.POST("/login", controllers.Login)
	server.POST("/logout", controllers.Logout)
}
