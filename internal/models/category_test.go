package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidExpenseCategory(t *testing.T) {
	for _, category := range ExpenseCategories {
		assert.True(t, IsValidExpenseCategory(category), "category %s", category)
	}

	assert.False(t, IsValidExpenseCategory(CategoryIncome))
	assert.False(t, IsValidExpenseCategory("Viagens"))
	assert.False(t, IsValidExpenseCategory(""))
	assert.False(t, IsValidExpenseCategory("moradia"), "matching is case sensitive")
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryIncome))
	assert.True(t, IsValidCategory(CategoryFood))
	assert.False(t, IsValidCategory("Viagens"))
	assert.False(t, IsValidCategory(""))
}

func TestExpenseCategoriesCount(t *testing.T) {
	assert.Len(t, ExpenseCategories, 8)
}
