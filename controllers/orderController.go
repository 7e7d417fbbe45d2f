package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/initializers"
	"github.com/hineshmeraka/epharmacy-api/models"
)

// GetMyOrders handles GET /orders for the authenticated user.
func GetMyOrders(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == 0 {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println("Fetch orders error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
