package models

import "time"

type Receipt struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ReceiptNumber string  `gorm:"type:varchar(64);not null;uniqueIndex" json:"receipt_number"`
	EmployeeID    uint    `json:"employee_id"`
	Total         float64 `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod string  `gorm:"type:varchar(50);not null" json:"payment_method"`

	// Items detail disimpan dalam tabel terpisah
	LineItems []OrderLineItem `gorm:"foreignKey:ReceiptID" json:"line_items"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type OrderLineItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ReceiptID uint    `gorm:"not null;index" json:"receipt_id"`
	Receipt   Receipt `gorm:"-" json:"-"`

	DrinkID   uint    `gorm:"not null" json:"drink_id"`
	DrinkName string  `gorm:"type:varchar(100);not null" json:"drink_name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal  float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Sweetness string  `gorm:"type:varchar(20)" json:"sweetness"`
	IceLevel  string  `gorm:"type:varchar(20)" json:"ice_level"`
	Toppings  string  `gorm:"type:text" json:"toppings"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
