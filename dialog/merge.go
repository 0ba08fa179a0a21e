package dialog

import "github.com/rakapradana/boba-order-app/models"

// MergeCart merges the fallback interpreter's suggested cart into the current
// draft. Per field, last-non-null wins; a quantity is taken only when it is
// positive. The interpreter output is untrusted, so nothing here ever trusts
// its claimed dialog state — RecomputeStep decides the step afterwards.
func MergeCart(current, suggested []models.CartDraft) []models.CartDraft {
	if len(suggested) == 0 {
		return current
	}

	merged := make([]models.CartDraft, len(current))
	copy(merged, current)
	if len(merged) == 0 {
		merged = append(merged, models.CartDraft{})
	}

	s := suggested[0]
	if s.DrinkName != "" {
		merged[0].DrinkName = s.DrinkName
	}
	if s.DrinkID != nil {
		merged[0].DrinkID = s.DrinkID
	}
	if s.Quantity != nil && *s.Quantity > 0 {
		merged[0].Quantity = s.Quantity
	}
	if s.Sweetness != nil {
		merged[0].Sweetness = s.Sweetness
	}
	if s.IceLevel != nil {
		merged[0].IceLevel = s.IceLevel
	}
	if s.Toppings != nil {
		merged[0].Toppings = s.Toppings
	}

	// Items beyond the in-progress draft are carried over as-is.
	if len(suggested) > 1 {
		merged = append(merged, suggested[1:]...)
	}
	return merged
}

// RecomputeStep re-scans required-field precedence (drink, quantity,
// sweetness, ice, toppings) and returns the first unfilled slot. One
// free-form message may fill several slots at once, so the step is always
// derived from field presence, never from what the interpreter claims.
func RecomputeStep(cart []models.CartDraft) string {
	if len(cart) == 0 || cart[0].DrinkName == "" {
		return models.StepPickDrink
	}
	item := cart[0]
	switch {
	case item.Quantity == nil:
		return models.StepPickQuantity
	case item.Sweetness == nil:
		return models.StepPickSweetness
	case item.IceLevel == nil:
		return models.StepPickIce
	case item.Toppings == nil:
		return models.StepPickToppings
	default:
		return models.StepConfirm
	}
}
