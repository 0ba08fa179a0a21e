package models

import "time"

// Status pending order
const (
	PendingOrderStatusPending = "pending"
	PendingOrderStatusPaid    = "paid"
)

// PendingOrder bridges dialog completion and the later payment callback.
// It is inserted before the hosted payment page is requested; the link id is
// filled in by the same transaction once the provider responds.
type PendingOrder struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	Reference     string             `gorm:"type:varchar(64);not null;uniqueIndex" json:"reference"`
	EmployeeID    uint               `json:"employee_id"`
	CustomerPhone string             `gorm:"type:varchar(32);index" json:"customer_phone"`
	TotalAmount   float64            `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentLinkID string             `gorm:"type:varchar(100)" json:"payment_link_id"`
	PaymentURL    string             `gorm:"type:varchar(255)" json:"payment_url"`
	Status        string             `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Items         []PendingOrderItem `gorm:"foreignKey:PendingOrderID" json:"items"`
	CreatedAt     time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"not null" json:"updated_at"`
}

// PendingOrderItem is the persisted snapshot of one resolved cart item.
type PendingOrderItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PendingOrderID uint      `gorm:"not null;index" json:"pending_order_id"`
	DrinkID        uint      `gorm:"not null" json:"drink_id"`
	DrinkName      string    `gorm:"type:varchar(255);not null" json:"drink_name"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	UnitPrice      float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice     float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Sweetness      string    `gorm:"type:varchar(20)" json:"sweetness"`
	IceLevel       string    `gorm:"type:varchar(20)" json:"ice_level"`
	Toppings       string    `gorm:"type:text" json:"toppings"` // JSON-encoded list
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
