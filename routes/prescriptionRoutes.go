package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/controllers"
)

func PrescriptionRoutes(server *gin.Engine) {
	server.GET("/prescription", controllers.GetPrescriptionForm)
	server.POST("/upload-prescription", controllers.UploadPrescription)
}
