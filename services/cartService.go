package services

import (
	"errors"

	"github.com/hineshmeraka/epharmacy-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddOrIncrement creates a cart row with quantity 1 on first add, and
// bumps the quantity on repeat adds. The upsert rides on the unique
// (user_id, product_id) index, so two simultaneous adds cannot create
// two rows or lose an increment.
func (s *CartService) AddOrIncrement(userID, productID uint) (models.CartItem, error) {
	if userID == 0 {
		return models.CartItem{}, ErrNotAuthenticated
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrProductNotFound
		}
		return models.CartItem{}, err
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
	}).Create(&item).Error
	if err != nil {
		return models.CartItem{}, err
	}

	var saved models.CartItem
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&saved).Error; err != nil {
		return models.CartItem{}, err
	}
	saved.Product = product
	return saved, nil
}

// Remove deletes a cart item only if it belongs to the given user.
// A miss (wrong id or someone else's item) reports ErrCartItemNotFound
// and touches nothing.
func (s *CartService) Remove(userID, cartItemID uint) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}

	result := s.db.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	var items []models.CartItem
	if err := s.db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Total sums price x quantity over the cart with exact decimal
// arithmetic. An empty cart totals zero.
func (s *CartService) Total(userID uint) (decimal.Decimal, error) {
	items, err := s.List(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
	}
	return total, nil
}

func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
