package models

import "time"

// CartLine: one product row in a user's shopping cart. The cart lives in the
// database (keyed by user) instead of a server session, so a JWT client can
// resume it from any device.
type CartLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_cart_user_product,unique;not null" json:"user_id"`
	ProductKey string    `gorm:"size:50;index:idx_cart_user_product,unique;not null" json:"product_key"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
