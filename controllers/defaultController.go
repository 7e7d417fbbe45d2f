package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the E-Pharmacy API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account
- POST "/login" - Access user account
- POST "/logout" - End session

CATALOG
- GET "/products" - List products
- GET "/products/:id" - Get product by ID
- GET "/search?search=<query>" - Search products by name or price
- POST "/products" - Create product (admin)
- POST "/products/images" - Upload product image (admin)

CART
- GET "/cart" - Cart listing with total
- POST "/vcart/:productId" - Add product to cart
- POST "/dcart/:cartItemId" - Remove item from cart

CHECKOUT
- GET "/payment" - Begin checkout, returns client secret
- POST "/payment/confirm" - Confirm payment
- GET "/orders" - List your orders

PRESCRIPTION
- GET "/prescription" - Prescription form info
- POST "/upload-prescription" - Bulk product lookup by medicine names`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
