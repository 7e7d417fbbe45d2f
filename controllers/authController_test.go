package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", Signup)
	return router
}

func TestSignupPasswordMismatch(t *testing.T) {
	router := newAuthRouter()

	body := `{"username":"alice","email":"alice@example.com","password":"password123","confirmPassword":"password124"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), msgPasswordMismatch) {
		t.Fatalf("expected password mismatch message, got %s", w.Body.String())
	}
}

func TestSignupMalformedBody(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
