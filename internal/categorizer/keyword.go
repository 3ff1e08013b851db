package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/models"
)

// keywordGroup pairs a category with the substrings that select it.
type keywordGroup struct {
	category string
	keywords []string
}

// Income groups, tried in order for non-negative amounts. Anything that
// matches nothing still defaults to Salary: positive statement lines are
// assumed to be income.
var incomeGroups = []keywordGroup{
	{models.CategorySalary, []string{"salary", "payroll", "wage"}},
	{models.CategorySalary, []string{"bonus", "commission"}},
	{models.CategoryTransfers, []string{"refund", "return"}},
	{models.CategoryInvestments, []string{"investment", "dividend", "interest"}},
}

// Expense groups, tried in order for negative amounts. The keyword lists
// are deliberately small and overlap ("gas" sits in both Transport and
// Utilities); the group order is the tie-break, so it must stay fixed for
// reproducible categorization. Transport is tried before Utilities so that
// a gas station resolves as Transport rather than a gas bill.
var expenseGroups = []keywordGroup{
	{models.CategoryGroceries, []string{"grocery", "food", "supermarket", "market"}},
	{models.CategoryFoodAndDrink, []string{"restaurant", "cafe", "coffee", "dining"}},
	{models.CategoryTransport, []string{"car", "gas", "fuel", "parking", "uber", "taxi", "transport"}},
	{models.CategoryUtilities, []string{"electric", "gas", "water", "utility", "internet", "phone"}},
	{models.CategoryHousing, []string{"rent", "mortgage", "housing", "apartment"}},
	{models.CategoryEntertainment, []string{"movie", "entertainment", "game", "netflix", "streaming"}},
	{models.CategoryOther, []string{"medical", "doctor", "hospital", "pharmacy"}},
	{models.CategoryOther, []string{"insurance", "bank", "fee", "charge"}},
}

// Categorize maps a description and signed amount to a category using
// case-insensitive substring matching against the keyword table. It is a
// pure function; the first group with any hit wins.
func Categorize(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(description)

	if !amount.IsNegative() {
		for _, group := range incomeGroups {
			if containsAny(desc, group.keywords) {
				return group.category
			}
		}
		return models.CategorySalary
	}

	for _, group := range expenseGroups {
		if containsAny(desc, group.keywords) {
			return group.category
		}
	}
	return models.CategoryOther
}

func containsAny(desc string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(desc, keyword) {
			return true
		}
	}
	return false
}
