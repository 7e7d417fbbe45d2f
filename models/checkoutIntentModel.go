package models

import "gorm.io/gorm"

const (
	IntentStatusOpen       = "open"
	IntentStatusConfirmed  = "confirmed"
	IntentStatusFailed     = "failed"
	IntentStatusSuperseded = "superseded"
)

// CheckoutIntent mirrors a provider-side payment intent. At most one
// intent per user is "open" at a time; new checkout attempts either
// reuse it or supersede it.
type CheckoutIntent struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"index"`
	IntentID     string `json:"intentId" gorm:"uniqueIndex;size:64"`
	ClientSecret string `json:"clientSecret" gorm:"size:128"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency" gorm:"size:8"`
	Status       string `json:"status" gorm:"size:16"`
}
