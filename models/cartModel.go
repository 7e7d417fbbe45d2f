package models

import "time"

// CartItem holds one product selection in a user's cart. The
// (user_id, product_id) pair is unique; repeat adds bump Quantity.
// Rows are deleted for real, not soft-deleted: a tombstone would keep
// occupying the unique index and block re-adding the product.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_cart_user_product"`
	ProductID uint      `json:"productId" gorm:"uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Product   Product   `json:"product"`
}
