package models

import "encoding/json"

// CartDraft is one in-progress order line being filled slot by slot.
// Every field except DrinkName is optional; nil means the slot has not been
// asked yet. Toppings nil (belum ditanya) is NOT the same as an empty slice
// (customer explicitly said no toppings) — step recomputation depends on it.
type CartDraft struct {
	DrinkName string   `json:"drink_name"`
	DrinkID   *uint    `json:"drink_id,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	Sweetness *string  `json:"sweetness,omitempty"`
	IceLevel  *string  `json:"ice_level,omitempty"`
	Toppings  []string `json:"toppings"`
}

// ResolvedCartItem is a draft that has been bound to a catalog drink with
// computed pricing. Only the cart assembler produces these.
type ResolvedCartItem struct {
	DrinkID    uint     `json:"drink_id"`
	DrinkName  string   `json:"drink_name"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price"`
	Sweetness  string   `json:"sweetness"`
	IceLevel   string   `json:"ice_level"`
	Toppings   []string `json:"toppings"`
}

// EncodeToppings serializes a topping list for a text column.
func EncodeToppings(toppings []string) string {
	if toppings == nil {
		toppings = []string{}
	}
	data, err := json.Marshal(toppings)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeToppings parses a topping list column; bad data is an empty list.
func DecodeToppings(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var toppings []string
	if err := json.Unmarshal([]byte(raw), &toppings); err != nil {
		return []string{}
	}
	return toppings
}
