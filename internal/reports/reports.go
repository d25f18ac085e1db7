// Package reports holds the pure aggregation functions behind the dashboard:
// period totals, expense breakdown by category, the monthly trend series and
// savings-goal progress. All functions are single-pass over a transaction
// slice that the caller has already filtered to the wanted date range.
package reports

import (
	"sort"

	"ecodin/internal/models"

	"github.com/shopspring/decimal"
)

// Totals holds the aggregate figures for a set of transactions.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategoryTotal is one entry of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyPoint is one month of the trend series.
type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ComputeTotals sums income and expense amounts. Balance is income minus
// expenses. An empty slice yields all zeros.
func ComputeTotals(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return Totals{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// ExpensesByCategory sums expense amounts grouped by category. Transactions
// carrying the income sentinel are skipped even when typed as expenses, so a
// malformed row can never leak into the breakdown. Categories with no
// expenses have no entry. The result is ordered by descending total, ties
// broken by category name so the order is deterministic.
func ExpensesByCategory(transactions []models.Transaction) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsExpense() || t.Category == models.CategoryIncome {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}

	result := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// CategoryTotalsMap returns the expense breakdown as a category-to-amount
// mapping, the shape the AI summary prompt consumes.
func CategoryTotalsMap(transactions []models.Transaction) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() || t.Category == models.CategoryIncome {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return byCategory
}

// MonthlySeries buckets income and expense sums by calendar month (YYYY-MM)
// and returns the series ordered ascending by month key. Lexicographic order
// on the key equals chronological order.
func MonthlySeries(transactions []models.Transaction) []MonthlyPoint {
	buckets := make(map[string]*MonthlyPoint)

	for _, t := range transactions {
		key := t.MonthKey()
		point, ok := buckets[key]
		if !ok {
			point = &MonthlyPoint{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = point
		}

		switch t.Type {
		case models.TransactionTypeIncome:
			point.Income = point.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	series := make([]MonthlyPoint, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}

// SavingsProgress returns the percentage of the savings goal covered by the
// balance, clamped at zero for negative balances. A non-positive goal yields
// zero; the write boundary keeps stored goals at 1 or above.
func SavingsProgress(balance, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}

	if balance.IsNegative() {
		return decimal.Zero
	}

	return balance.Div(goal).Mul(decimal.NewFromInt(100))
}

// HasFigures reports whether the totals carry anything worth summarizing:
// nonzero income or at least one expense category. The AI summary flow
// short-circuits when this is false.
func HasFigures(totals Totals, byCategory map[string]decimal.Decimal) bool {
	return !totals.Income.IsZero() || len(byCategory) > 0
}
