package domain

import "time"

// CartItem persists a customer's in-progress selection so the cart
// survives reloads. One row per (user, menu item).
type CartItem struct {
	ID        uint64    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"not null;size:36;uniqueIndex:idx_cart_user_menu"`
	MenuID    uint64    `json:"menuId" gorm:"not null;uniqueIndex:idx_cart_user_menu"`
	Menu      *MenuItem `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	Quantity  int64     `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (CartItem) TableName() string { return "cart_items" }
