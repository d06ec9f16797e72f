package classify

import "strings"

// IsTransfer reports whether a transaction is an internal account-to-account
// move (e.g. a credit-card bill payment) based on its name and memo. Matching
// is case-insensitive substring matching; either field matching any phrase is
// sufficient. The fields are tested separately so a phrase never matches
// across the name/memo boundary.
func IsTransfer(name, memo string) bool {
	name = strings.ToLower(name)
	memo = strings.ToLower(memo)
	for _, phrase := range transferPhrases {
		if strings.Contains(name, phrase) || strings.Contains(memo, phrase) {
			return true
		}
	}
	return false
}
