package models

// Expense categories. CategoryIncome ("Renda") is a sentinel carried only by
// income transactions and is never a valid expense category.
const (
	CategoryHousing     = "Moradia"
	CategoryTransport   = "Transporte"
	CategoryFood        = "Alimentação"
	CategoryHealth      = "Saúde"
	CategoryEducation   = "Educação"
	CategoryLeisure     = "Lazer"
	CategoryInvestments = "Investimentos"
	CategoryOther       = "Outros"

	CategoryIncome = "Renda"
)

// ExpenseCategories lists every valid expense category in display order.
var ExpenseCategories = []string{
	CategoryHousing,
	CategoryTransport,
	CategoryFood,
	CategoryHealth,
	CategoryEducation,
	CategoryLeisure,
	CategoryInvestments,
	CategoryOther,
}

// IsValidExpenseCategory checks if the category is a member of the expense
// category enumeration. The income sentinel is not an expense category.
func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidCategory checks if the category is an expense category or the
// income sentinel.
func IsValidCategory(category string) bool {
	return category == CategoryIncome || IsValidExpenseCategory(category)
}
