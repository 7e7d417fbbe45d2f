package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/initializers"
	"github.com/hineshmeraka/epharmacy-api/models"
	"github.com/hineshmeraka/epharmacy-api/utils"
)

type uploadPrescriptionData struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Notes         string   `json:"notes"`
	MedicineNames []string `json:"medicineNames" binding:"required"`
}

// GetPrescriptionForm handles GET /prescription.
func GetPrescriptionForm(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "POST your prescription to /upload-prescription",
		"fields":  []string{"name", "email", "notes", "medicineNames"},
	})
}

// UploadPrescription handles POST /upload-prescription: it records the
// prescription and responds with catalog products matching any of the
// submitted medicine names. No match fails open with an advisory.
func UploadPrescription(ctx *gin.Context) {
	var data uploadPrescriptionData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	names, err := json.Marshal(data.MedicineNames)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reference, err := utils.GenerateCode(16)
	if err != nil {
		log.Println("Reference generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	prescription := models.Prescription{
		Reference:     reference,
		Name:          data.Name,
		Email:         data.Email,
		Notes:         data.Notes,
		MedicineNames: names,
	}
	if err := initializers.DB.Create(&prescription).Error; err != nil {
		log.Println("Prescription save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var matching []models.Product
	if err := initializers.DB.Where("name IN ?", data.MedicineNames).Find(&matching).Error; err != nil {
		log.Println("Prescription product lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	response := gin.H{
		"reference": prescription.Reference,
		"products":  matching,
	}
	if len(matching) == 0 {
		response["message"] = msgNoMatchingProducts
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
