// Package cart resolves draft carts into priced line items.
package cart

import (
	"fmt"

	"github.com/rakapradana/boba-order-app/catalog"
	"github.com/rakapradana/boba-order-app/models"
)

// maxOptionLen bounds sweetness/ice strings before they reach storage.
const maxOptionLen = 20

// Defaults applied when the generative shortcut finalizes an order with
// unfilled slots.
const (
	DefaultQuantity  = 1
	DefaultSweetness = "100%"
	DefaultIceLevel  = "Regular ice"
)

// ResolveForPayment binds every draft item to a catalog drink and computes
// pricing. Any unresolved item fails the whole batch; there are no partial
// orders.
func ResolveForPayment(drafts []models.CartDraft, drinks []models.Drink) ([]models.ResolvedCartItem, error) {
	if len(drafts) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	items := make([]models.ResolvedCartItem, 0, len(drafts))
	var total float64
	for _, draft := range drafts {
		drink := resolveDraft(draft, drinks)
		if drink == nil {
			return nil, fmt.Errorf("drink %q is not on the menu", draft.DrinkName)
		}

		qty := DefaultQuantity
		if draft.Quantity != nil {
			qty = *draft.Quantity
		}
		if qty <= 0 {
			return nil, fmt.Errorf("invalid quantity for %q", drink.Name)
		}

		sweetness := DefaultSweetness
		if draft.Sweetness != nil {
			sweetness = truncate(*draft.Sweetness)
		}
		ice := DefaultIceLevel
		if draft.IceLevel != nil {
			ice = truncate(*draft.IceLevel)
		}
		toppings := draft.Toppings
		if toppings == nil {
			toppings = []string{}
		}

		item := models.ResolvedCartItem{
			DrinkID:    drink.ID,
			DrinkName:  drink.Name,
			Quantity:   qty,
			UnitPrice:  drink.Price,
			TotalPrice: drink.Price * float64(qty),
			Sweetness:  sweetness,
			IceLevel:   ice,
			Toppings:   toppings,
		}
		total += item.TotalPrice
		items = append(items, item)
	}

	if total <= 0 {
		return nil, fmt.Errorf("order total must be positive")
	}
	return items, nil
}

// Total sums the resolved item totals.
func Total(items []models.ResolvedCartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

// resolveDraft prefers the id when the draft carries one, else falls back to
// name matching.
func resolveDraft(draft models.CartDraft, drinks []models.Drink) *models.Drink {
	if draft.DrinkID != nil {
		for i := range drinks {
			if drinks[i].ID == *draft.DrinkID {
				return &drinks[i]
			}
		}
	}
	return catalog.FindDrink(draft.DrinkName, drinks)
}

func truncate(s string) string {
	if len(s) > maxOptionLen {
		return s[:maxOptionLen]
	}
	return s
}
