package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hineshmeraka/epharmacy-api/services"
)

type SearchController struct {
	Search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{Search: search}
}

// SearchProducts handles GET /search?search=<query>. An empty result
// set carries an advisory message, not an error.
func (c *SearchController) SearchProducts(ctx *gin.Context) {
	query := ctx.Query("search")

	products, err := c.Search.Search(query)
	if err != nil {
		log.Println("Search error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	response := gin.H{
		"products": products,
		"query":    query,
	}
	if len(products) == 0 {
		response["message"] = msgNoSearchResult
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
