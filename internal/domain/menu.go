package domain

import "time"

type Category struct {
	ID   uint64 `json:"categoryId" gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"categoryName" gorm:"not null;uniqueIndex;size:100"`
}

func (Category) TableName() string { return "category" }

// MenuItem is one sellable dish. Stock is informational; ordering
// validates against it but never decrements it.
type MenuItem struct {
	ID         uint64    `json:"menuId" gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `json:"menuName" gorm:"not null;size:255"`
	Price      float64   `json:"price" gorm:"not null"`
	Stock      int64     `json:"stock" gorm:"not null;default:0"`
	CategoryID uint64    `json:"categoryId" gorm:"not null;index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL   string    `json:"imageUrl" gorm:"size:512"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (MenuItem) TableName() string { return "menu" }
