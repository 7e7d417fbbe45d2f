package services

import (
	"github.com/hineshmeraka/epharmacy-api/models"
	"gorm.io/gorm"
)

type gormOrderStore struct {
	db *gorm.DB
}

// CommitPaid turns the user's cart lines into Paid orders and clears
// the cart, both inside one transaction.
func (s *gormOrderStore) CommitPaid(userID uint) ([]models.Order, error) {
	var orders []models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			order := models.Order{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
				Status:    models.OrderStatusPaid,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
