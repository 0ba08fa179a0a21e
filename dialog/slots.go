package dialog

import (
	"strconv"
	"strings"
)

var spelledNumbers = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

// ParseQuantity takes the first integer token in the message, or a spelled-out
// number (one..five). Non-positive or absent quantities are rejected.
func ParseQuantity(text string) (int, bool) {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,!?")
		if n, err := strconv.Atoi(tok); err == nil {
			if n <= 0 {
				return 0, false
			}
			return n, true
		}
		if n, ok := spelledNumbers[tok]; ok {
			return n, true
		}
	}
	return 0, false
}

// NormalizeSweetness maps free text onto the fixed sugar levels. Unrecognized
// input defaults to 100%, so this never rejects.
func NormalizeSweetness(text string) string {
	t := strings.ToLower(text)
	tokens := strings.Fields(strings.Trim(strings.ReplaceAll(t, "%", " "), ".,!?"))
	has := func(want string) bool {
		for _, tok := range tokens {
			if strings.Trim(tok, ".,!?") == want {
				return true
			}
		}
		return false
	}
	switch {
	case strings.Contains(t, "no sugar"), has("no"), has("none"), has("zero"), has("0"):
		return "0%"
	case strings.Contains(t, "quarter"), has("25"):
		return "25%"
	case strings.Contains(t, "half"), has("50"):
		return "50%"
	case has("75"), strings.Contains(t, "less"):
		return "75%"
	case strings.Contains(t, "extra"), has("120"):
		return "120%"
	default:
		return "100%"
	}
}

// ParseIceLevel maps free text onto the fixed ice levels via keyword sets.
// Unmapped text is rejected and the caller re-prompts.
func ParseIceLevel(text string) (string, bool) {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "no ice"), strings.Contains(t, "without"), strings.Contains(t, "none"):
		return "No ice", true
	case strings.Contains(t, "less"), strings.Contains(t, "light"), strings.Contains(t, "easy"):
		return "Less ice", true
	case strings.Contains(t, "regular"), strings.Contains(t, "normal"), strings.Contains(t, "medium"):
		return "Regular ice", true
	case strings.Contains(t, "extra"), strings.Contains(t, "more"):
		return "Extra ice", true
	default:
		return "", false
	}
}

// ParseToppings splits the message into topping names. "no"/"none" means an
// explicitly empty list. Names are taken verbatim; they are validated against
// inventory only at fulfillment time.
func ParseToppings(text string) []string {
	t := strings.TrimSpace(strings.ToLower(text))
	if t == "no" || t == "none" || t == "no toppings" || t == "nothing" {
		return []string{}
	}

	toppings := make([]string, 0, 2)
	for _, part := range strings.Split(text, ",") {
		var current []string
		for _, tok := range strings.Fields(part) {
			// "and" sebagai pemisah, case bebas
			if strings.EqualFold(tok, "and") {
				if len(current) > 0 {
					toppings = append(toppings, strings.Join(current, " "))
					current = nil
				}
				continue
			}
			current = append(current, tok)
		}
		if len(current) > 0 {
			toppings = append(toppings, strings.Join(current, " "))
		}
	}
	return toppings
}

// IsCancel reports whether the message forces a session reset. Recognized in
// every state except pick_drink.
func IsCancel(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.Contains(t, "cancel") || strings.Contains(t, "start over")
}

// IsAffirmative recognizes confirmation replies.
func IsAffirmative(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	switch t {
	case "y", "yes", "yeah", "yep", "ok", "okay", "sure", "confirm":
		return true
	}
	return strings.HasPrefix(t, "yes")
}

// IsNegative recognizes rejection replies at the confirm step.
func IsNegative(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	switch t {
	case "n", "no", "nope", "nah":
		return true
	}
	return false
}
