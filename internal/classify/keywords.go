// Package classify implements the transaction classification pipeline:
// transfer detection, recurrence and category classification, and the
// income/expense split for a parsed statement.
package classify

import "github.com/pennywise-fin/pennywise/internal/model"

// CategoryRule maps a category to the keywords that select it.
type CategoryRule struct {
	Category model.Category
	Keywords []string
}

// categoryRules is checked in declaration order and the first category with a
// matching keyword wins. Reordering entries changes how ambiguous text
// classifies (e.g. "NETFLIX" appears under both Entertainment and
// Subscriptions; Entertainment is declared first and takes it).
var categoryRules = []CategoryRule{
	{
		Category: model.CategoryFood,
		Keywords: []string{
			"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "chipotle",
			"doordash", "grubhub", "uber eats", "instacart", "grocery",
			"whole foods", "trader joe", "safeway", "kroger", "aldi",
			"pizza", "taco", "sushi", "deli", "bakery", "brewery", "bar & grill",
		},
	},
	{
		Category: model.CategoryTransportation,
		Keywords: []string{
			"uber", "lyft", "shell", "chevron", "exxon", "gas station", "fuel",
			"parking", "transit", "metro", "mta", "toll", "amtrak", "airline",
			"delta air", "united air", "southwest", "car wash", "jiffy lube",
		},
	},
	{
		Category: model.CategoryShopping,
		Keywords: []string{
			"amazon", "amzn", "walmart", "target", "costco", "best buy",
			"ebay", "etsy", "nike", "macys", "nordstrom", "home depot",
			"lowes", "ikea", "rei.com", "sephora",
		},
	},
	{
		Category: model.CategoryUtilities,
		Keywords: []string{
			"electric", "utility", "utilities", "water bill", "sewer",
			"gas co", "pg&e", "duke energy", "con edison", "comcast",
			"xfinity", "internet", "verizon", "at&t", "t-mobile", "phone bill",
		},
	},
	{
		Category: model.CategoryHousing,
		Keywords: []string{
			"rent", "mortgage", "landlord", "property mgmt", "apartment",
			"hoa dues", "escrow",
		},
	},
	{
		Category: model.CategoryEntertainment,
		Keywords: []string{
			"netflix", "hulu", "spotify", "disney", "hbo", "cinema", "movie",
			"theater", "steam games", "steampowered", "playstation", "xbox",
			"nintendo", "concert", "ticketmaster", "twitch", "bowling",
		},
	},
	{
		Category: model.CategoryHealthcare,
		Keywords: []string{
			"pharmacy", "cvs", "walgreens", "doctor", "dental", "medical",
			"clinic", "hospital", "optometr", "urgent care", "labcorp",
			"quest diag", "copay",
		},
	},
	{
		Category: model.CategorySubscriptions,
		Keywords: []string{
			"subscription", "membership", "netflix", "prime video",
			"amazon prime", "patreon", "audible", "apple.com/bill", "icloud",
			"google storage", "youtube premium", "dropbox", "adobe", "gym",
			"planet fitness", "la fitness", "substack", "nytimes",
		},
	},
	{
		Category: model.CategoryInsurance,
		Keywords: []string{
			"insurance", "geico", "allstate", "state farm", "progressive",
			"aetna", "cigna", "premium pymt",
		},
	},
	{
		Category: model.CategoryTransfer,
		Keywords: []string{
			"transfer", "xfer", "zelle", "venmo", "paypal", "cash app",
			"wire", "withdrawal", "atm",
		},
	},
	{
		Category: model.CategoryIncome,
		Keywords: []string{
			"payroll", "direct dep", "directdep", "salary", "paycheck",
			"deposit", "interest paid", "dividend", "refund", "reimburs",
			"tax ref",
		},
	},
}

// transferPhrases flag transactions that move money between the user's own
// accounts, most commonly credit-card bill payments drawn from checking.
// Matching either name or memo is sufficient; the first hit short-circuits.
var transferPhrases = []string{
	"online pymt",
	"online payment",
	"payment thank you",
	"payment - thank you",
	"internet payment",
	"credit card pmt",
	"credit crd autopay",
	"crcardpmt",
	"epay",
	"e-payment",
	"capital one mobile pymt",
	"amex epayment",
	"american express ach pmt",
	"discover payment",
	"citi autopay",
	"barclaycard us creditcard",
	"synchrony bank payment",
	"bk of amer visa",
	"wells fargo card",
	"chase card services",
}

// recurringKeywords mix subscription-service brand names with generic
// recurrence markers. This is a heuristic, not a guarantee.
var recurringKeywords = []string{
	"netflix", "spotify", "hulu", "disney+", "hbo max", "youtube premium",
	"apple.com/bill", "amazon prime", "audible", "patreon", "dropbox",
	"adobe", "icloud", "substack", "nytimes",
	"gym", "planet fitness", "la fitness",
	"monthly", "subscription", "membership",
	"autopay", "auto pay", "recurring", "bill pay",
	"direct dep", "directdep", "direct deposit", "payroll", "salary",
	"insurance prem", "mortgage", "rent pymt",
}

// CategoryRules returns the category keyword tables in tie-break order.
func CategoryRules() []CategoryRule {
	out := make([]CategoryRule, len(categoryRules))
	copy(out, categoryRules)
	return out
}

// TransferPhrases returns the internal-transfer phrase list.
func TransferPhrases() []string {
	out := make([]string, len(transferPhrases))
	copy(out, transferPhrases)
	return out
}

// RecurringKeywords returns the recurrence keyword list.
func RecurringKeywords() []string {
	out := make([]string, len(recurringKeywords))
	copy(out, recurringKeywords)
	return out
}
