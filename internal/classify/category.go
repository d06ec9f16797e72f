package classify

import (
	"strings"

	"github.com/pennywise-fin/pennywise/internal/model"
)

// Categorize assigns exactly one spending category to a transaction based on
// its name and memo. Categories are tested in declaration order and the first
// category whose keyword list matches wins, even if a later category would
// also match. No match in any list yields CategoryMiscellaneous.
func Categorize(name, memo string) model.Category {
	text := strings.ToLower(name + " " + memo)
	for _, rule := range categoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Category
			}
		}
	}
	return model.CategoryMiscellaneous
}
