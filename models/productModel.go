package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" binding:"required"`
	ImageUrl string          `json:"imageUrl"`
}
