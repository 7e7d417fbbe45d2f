package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newAdminRouter(claims jwt.MapClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products",
		func(ctx *gin.Context) {
			if claims != nil {
				ctx.Set("user", claims)
			}
		},
		RequireAdmin(),
		func(ctx *gin.Context) { ctx.Status(http.StatusCreated) },
	)
	return router
}

func TestRequireAdminWithoutClaims(t *testing.T) {
	router := newAdminRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", w.Code)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	router := newAdminRouter(jwt.MapClaims{"role": "user"})

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	router := newAdminRouter(jwt.MapClaims{"role": "admin"})

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d", w.Code)
	}
}
