package model

// Category is one of the fixed set of spending categories.
type Category string

// Spending categories. The declaration order here mirrors the order the
// classifier tests categories in; see internal/classify.
const (
	CategoryFood           Category = "FOOD"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryShopping       Category = "SHOPPING"
	CategoryUtilities      Category = "UTILITIES"
	CategoryHousing        Category = "HOUSING"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategorySubscriptions  Category = "SUBSCRIPTIONS"
	CategoryInsurance      Category = "INSURANCE"
	CategoryTransfer       Category = "TRANSFER"
	CategoryIncome         Category = "INCOME"
	CategoryMiscellaneous  Category = "MISCELLANEOUS"
)
