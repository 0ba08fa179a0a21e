// Package catalog resolves customer free text against the drink menu.
package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rakapradana/boba-order-app/models"
)

// Normalize strips everything that is not a letter or digit and lowercases,
// so "Taro Milk-Tea" and "taro milktea" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FindDrink matches free text to a catalog entry. Match order, first hit
// wins: exact, catalog name contained in the input, input contained in the
// catalog name. Returns nil when nothing matches; the caller must not guess.
func FindDrink(nameText string, drinks []models.Drink) *models.Drink {
	needle := Normalize(nameText)
	if needle == "" {
		return nil
	}

	for i := range drinks {
		if Normalize(drinks[i].Name) == needle {
			return &drinks[i]
		}
	}
	for i := range drinks {
		if strings.Contains(needle, Normalize(drinks[i].Name)) {
			return &drinks[i]
		}
	}
	for i := range drinks {
		if strings.Contains(Normalize(drinks[i].Name), needle) {
			return &drinks[i]
		}
	}
	return nil
}

// Summary renders the menu as one line per drink, used in dialog prompts and
// in the fallback system prompt.
func Summary(drinks []models.Drink) string {
	var b strings.Builder
	for _, d := range drinks {
		fmt.Fprintf(&b, "%s - $%.2f\n", d.Name, d.Price)
	}
	return b.String()
}
