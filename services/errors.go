package services

import "errors"

var (
	ErrNotAuthenticated = errors.New("user is not authenticated")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrIntentNotFound   = errors.New("payment intent not found")
	ErrIntentClosed     = errors.New("payment intent is no longer open")
)
