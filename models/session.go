package models

import "time"

// Dialog steps. Step selalu konsisten dengan field cart[0] yang sudah terisi.
const (
	StepPickDrink     = "pick_drink"
	StepPickQuantity  = "pick_quantity"
	StepPickSweetness = "pick_sweetness"
	StepPickIce       = "pick_ice"
	StepPickToppings  = "pick_toppings"
	StepConfirm       = "confirm"
)

// OrderSession stores the slot-filling conversation state for one phone number.
// One open session per phone; the cart is kept as a JSON blob so the store
// itself enforces no schema.
type OrderSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"phone"`
	Step      string    `gorm:"type:varchar(20);not null;default:'pick_drink'" json:"step"`
	Cart      string    `gorm:"type:text" json:"cart"` // JSON-encoded []CartDraft
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
