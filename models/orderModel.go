package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusProcessing = "Processing"
	OrderStatusPaid       = "Paid"
	OrderStatusFailed     = "Failed"
	OrderStatusCancelled  = "Cancelled"
)

type Order struct {
	gorm.Model
	UserID    uint            `json:"userId" gorm:"index"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Status    string          `json:"status" gorm:"size:20;default:'Processing'"`
	Product   Product         `json:"product"`
}
