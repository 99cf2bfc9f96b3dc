package models

// Categories
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryBills         = "bills"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategorySalary        = "salary"
	CategoryFreelance     = "freelance"
	CategoryInvestment    = "investment"
	CategoryOther         = "other"
	CategoryOtherIncome   = "other_income"
)

// IsCatchAll reports whether name is one of the two fallback categories that
// never appear in a taxonomy table.
func IsCatchAll(name string) bool {
	return name == CategoryOther || name == CategoryOtherIncome
}

// Default display currency
const DefaultCurrency = "BDT"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
