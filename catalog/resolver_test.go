package catalog

import (
	"testing"

	"github.com/rakapradana/boba-order-app/models"
)

func testMenu() []models.Drink {
	return []models.Drink{
		{ID: 1, Name: "Taro Milk Tea", Price: 4.50},
		{ID: 2, Name: "Brown Sugar Boba", Price: 5.25},
		{ID: 3, Name: "Matcha Latte", Price: 4.75},
	}
}

func TestFindDrink(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID uint
	}{
		{"exact", "Taro Milk Tea", 1},
		{"punctuation insensitive", "Taro Milk-Tea", 1},
		{"collapsed spaces", "taro milktea", 1},
		{"upper case", "TARO MILK TEA", 1},
		{"catalog name inside input", "I'd like a Matcha Latte please", 3},
		{"input inside catalog name", "brown sugar", 2},
		{"no match", "espresso", 0},
		{"empty input", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDrink(tt.input, testMenu())
			if tt.wantID == 0 {
				if got != nil {
					t.Errorf("FindDrink(%q) = %v, want nil", tt.input, got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindDrink(%q) = nil, want drink %d", tt.input, tt.wantID)
			}
			if got.ID != tt.wantID {
				t.Errorf("FindDrink(%q) = %d, want %d", tt.input, got.ID, tt.wantID)
			}
		})
	}
}

func TestFindDrinkExactBeatsSubstring(t *testing.T) {
	menu := []models.Drink{
		{ID: 1, Name: "Milk Tea"},
		{ID: 2, Name: "Taro Milk Tea"},
	}
	got := FindDrink("taro milk tea", menu)
	if got == nil || got.ID != 2 {
		t.Fatalf("expected exact match to win, got %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("Taro Milk-Tea!") != "taromilktea" {
		t.Errorf("Normalize stripped wrong characters: %q", Normalize("Taro Milk-Tea!"))
	}
}
