package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakapradana/boba-order-app/models"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestMergeCartLastNonNilWins(t *testing.T) {
	current := []models.CartDraft{{
		DrinkName: "Taro Milk Tea",
		Quantity:  intPtr(1),
	}}
	suggested := []models.CartDraft{{
		Quantity:  intPtr(2),
		Sweetness: strPtr("50%"),
	}}

	merged := MergeCart(current, suggested)
	assert.Equal(t, "Taro Milk Tea", merged[0].DrinkName)
	assert.Equal(t, 2, *merged[0].Quantity)
	assert.Equal(t, "50%", *merged[0].Sweetness)
	assert.Nil(t, merged[0].IceLevel)
	assert.Nil(t, merged[0].Toppings)
}

func TestMergeCartIgnoresNonPositiveQuantity(t *testing.T) {
	current := []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2)}}
	suggested := []models.CartDraft{{Quantity: intPtr(-3)}}

	merged := MergeCart(current, suggested)
	assert.Equal(t, 2, *merged[0].Quantity)
}

func TestMergeCartIntoEmpty(t *testing.T) {
	suggested := []models.CartDraft{{DrinkName: "Matcha Latte", Toppings: []string{}}}
	merged := MergeCart(nil, suggested)

	assert.Len(t, merged, 1)
	assert.Equal(t, "Matcha Latte", merged[0].DrinkName)
	// Toppings kosong eksplisit, bukan nil
	assert.NotNil(t, merged[0].Toppings)
}

func TestRecomputeStepPrecedence(t *testing.T) {
	tests := []struct {
		name string
		cart []models.CartDraft
		want string
	}{
		{"empty cart", nil, models.StepPickDrink},
		{"no drink", []models.CartDraft{{}}, models.StepPickDrink},
		{"drink only", []models.CartDraft{{DrinkName: "Taro Milk Tea"}}, models.StepPickQuantity},
		{"through quantity", []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2)}}, models.StepPickSweetness},
		{"through sweetness", []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2), Sweetness: strPtr("50%")}}, models.StepPickIce},
		{"through ice", []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2), Sweetness: strPtr("50%"), IceLevel: strPtr("No ice")}}, models.StepPickToppings},
		{"toppings explicitly none", []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2), Sweetness: strPtr("50%"), IceLevel: strPtr("No ice"), Toppings: []string{}}}, models.StepConfirm},
		{"all filled", []models.CartDraft{{DrinkName: "Taro Milk Tea", Quantity: intPtr(2), Sweetness: strPtr("50%"), IceLevel: strPtr("No ice"), Toppings: []string{"boba"}}}, models.StepConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecomputeStep(tt.cart))
		})
	}
}

// The step is always derived from the fields, so several slots filled by one
// message advance past all of them at once.
func TestRecomputeStepIgnoresClaimedState(t *testing.T) {
	cart := MergeCart(nil, []models.CartDraft{{
		DrinkName: "Taro Milk Tea",
		Quantity:  intPtr(2),
		Sweetness: strPtr("50%"),
		IceLevel:  strPtr("No ice"),
		Toppings:  []string{"boba"},
	}})
	assert.Equal(t, models.StepConfirm, RecomputeStep(cart))
}
