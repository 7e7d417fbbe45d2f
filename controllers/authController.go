package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hineshmeraka/epharmacy-api/initializers"
	"github.com/hineshmeraka/epharmacy-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput           = "invalid input"
	msgPasswordMismatch       = "Passwords do not match"
	msgEmailAlreadyRegistered = "This email is already registered"
	msgSignupSuccess          = "Sign-up successful. Please log in."
	msgUserNotFound           = "User does not exist"
	msgInvalidCredentials     = "Login failed"
	msgLoginSuccess           = "Successfully logged in"
	msgLogoutSuccess          = "Successfully logged out"
	msgFailedToHashPassword   = "failed to hash password"
	msgFailedToGenerateToken  = "failed to generate token"
	msgInternalServerError    = "Internal server error"
	msgNotLoggedIn            = "You must be logged in to add products to the cart."
	msgItemRemovedFromCart    = "Item removed from cart"
	msgItemNotFoundInCart     = "Item not found in cart"
	msgProductNotFound        = "Product not found"
	msgCartEmpty              = "Your cart is empty."
	msgPaymentSuccess         = "Payment successful!"
	msgPaymentFailed          = "Payment failed. Please try again."
	msgNoSearchResult         = "No result found"
	msgNoMatchingProducts     = "No matching products found."
	msgFailedToFetchCart      = "Unable to fetch cart"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentUserID reads the acting user set by the RequireAuth
// middleware. Zero means anonymous.
func currentUserID(ctx *gin.Context) uint {
	value, exists := ctx.Get("userID")
	if !exists {
		return 0
	}
	userID, ok := value.(uint)
	if !ok {
		return 0
	}
	return userID
}

func currentUserEmail(ctx *gin.Context) string {
	value, exists := ctx.Get("userEmail")
	if !exists {
		return ""
	}
	email, _ := value.(string)
	return email
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if signUpData.Password != signUpData.ConfirmPassword {
		sendErrorResponse(ctx, http.StatusBadRequest, msgPasswordMismatch)
		return
	}

	if _, err := findUserByEmail(signUpData.Email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmailAlreadyRegistered)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Username: signUpData.Username,
		Email:    signUpData.Email,
		Password: hashedPassword,
		Role:     "user",
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgSignupSuccess})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserNotFound)
			return
		}
		log.Println("Database error during login:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"token":   tokenString,
	})
}

// Logout is stateless server-side; the client discards its token.
func Logout(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLogoutSuccess})
}
