package models

import "time"

// LowStockThreshold is the amount below which an inventory row is flagged low-stock.
const LowStockThreshold = 20.0

// InventoryItem covers both drink ingredients and toppings.
// Toppings are looked up by name (case-insensitive) at fulfillment time.
type InventoryItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	CurrentAmount float64   `gorm:"type:decimal(10,2);not null;default:0" json:"current_amount"`
	Unit          string    `gorm:"type:varchar(20)" json:"unit"`
	LowStock      bool      `gorm:"not null;default:false" json:"low_stock"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
