package utils

import "fmt"

// FormatMoney formats an amount for reply text, e.g. 9.0 -> "$9.00"
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
