package models

// Categories form a closed set. Every emitted transaction carries exactly
// one of these labels.
const (
	CategoryGroceries     = "Groceries"
	CategoryUtilities     = "Utilities"
	CategoryFoodAndDrink  = "Food & Drink"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryHousing       = "Housing"
	CategorySalary        = "Salary"
	CategoryInvestments   = "Investments"
	CategoryTransfers     = "Transfers"
	CategoryOther         = "Other"
)

// AllCategories lists the members of the category set in display order.
var AllCategories = []string{
	CategoryGroceries,
	CategoryUtilities,
	CategoryFoodAndDrink,
	CategoryTransport,
	CategoryEntertainment,
	CategoryHousing,
	CategorySalary,
	CategoryInvestments,
	CategoryTransfers,
	CategoryOther,
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllCategories))
	for _, c := range AllCategories {
		set[c] = struct{}{}
	}
	return set
}()

// IsValidCategory reports whether name is a member of the category set.
func IsValidCategory(name string) bool {
	_, ok := categorySet[name]
	return ok
}

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
