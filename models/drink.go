package models

import "time"

type Drink struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255); not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2); not null" json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	Available   bool    `gorm:"not null;default:true" json:"available"`
	// Resep minuman: bahan apa saja yang dipakai per satu gelas
	Ingredients []DrinkIngredient `gorm:"foreignKey:DrinkID" json:"ingredients,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null" json:"updated_at"`
}

// DrinkIngredient adalah satu baris resep: drink memakai sekian unit bahan per gelas
type DrinkIngredient struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	DrinkID         uint          `gorm:"not null;index" json:"drink_id"`
	IngredientID    uint          `gorm:"not null" json:"ingredient_id"`
	Ingredient      InventoryItem `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ingredient"`
	QuantityPerUnit float64       `gorm:"type:decimal(10,2);not null" json:"quantity_per_unit"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updated_at"`
}
