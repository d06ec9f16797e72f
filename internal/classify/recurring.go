package classify

import "strings"

// IsRecurring reports whether a transaction looks like it repeats on a
// schedule (subscriptions, payroll deposits). Heuristic only; false positives
// and negatives are expected and it never errors.
func IsRecurring(name, memo string) bool {
	text := strings.ToLower(name + " " + memo)
	for _, keyword := range recurringKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
