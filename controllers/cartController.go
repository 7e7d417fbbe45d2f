package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// AddToCart handles POST /vcart/:productId
func (c *CartController) AddToCart(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	item, err := c.Cart.AddOrIncrement(currentUserID(ctx), uint(productID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		case errors.Is(err, services.ErrProductNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		default:
			log.Println("Add to cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": item.Product.Name + " added to cart",
		"item":    item,
	})
}

// RemoveFromCart handles POST /dcart/:cartItemId
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	cartItemID, err := strconv.ParseUint(ctx.Param("cartItemId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	if err := c.Cart.Remove(currentUserID(ctx), uint(cartItemID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		case errors.Is(err, services.ErrCartItemNotFound):
			// Advisory, not a hard failure: the item was never theirs
			// or is already gone.
			sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemNotFoundInCart})
		default:
			log.Println("Remove from cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemRemovedFromCart})
}

// GetCart handles GET /cart
func (c *CartController) GetCart(ctx *gin.Context) {
	userID := currentUserID(ctx)

	items, err := c.Cart.List(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
			return
		}
		log.Println("Fetch cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	total, err := c.Cart.Total(userID)
	if err != nil {
		log.Println("Cart total error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cartItems":  items,
		"totalPrice": total,
	})
}
