package reports

import (
	"testing"
	"time"

	"ecodin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportsTestSuite struct {
	suite.Suite
}

func TestReportsSuite(t *testing.T) {
	suite.Run(t, new(ReportsTestSuite))
}

func income(amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Type:     models.TransactionTypeIncome,
		Name:     "Salário",
		Amount:   decimal.NewFromFloat(amount),
		Category: models.CategoryIncome,
		Date:     date,
	}
}

func expense(amount float64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Type:     models.TransactionTypeExpense,
		Name:     "Despesa",
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     date,
	}
}

func (s *ReportsTestSuite) TestComputeTotals_BalanceIsIncomeMinusExpenses() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		income(1000, date),
		expense(300, models.CategoryHousing, date),
		expense(200, models.CategoryFood, date),
	}

	totals := ComputeTotals(transactions)

	s.True(totals.Income.Equal(decimal.NewFromInt(1000)))
	s.True(totals.Expenses.Equal(decimal.NewFromInt(500)))
	s.True(totals.Balance.Equal(decimal.NewFromInt(500)))
	s.True(totals.Balance.Equal(totals.Income.Sub(totals.Expenses)))
}

func (s *ReportsTestSuite) TestComputeTotals_EmptySliceYieldsZeros() {
	totals := ComputeTotals(nil)

	s.True(totals.Income.IsZero())
	s.True(totals.Expenses.IsZero())
	s.True(totals.Balance.IsZero())
}

func (s *ReportsTestSuite) TestComputeTotals_NegativeBalance() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		income(100, date),
		expense(250, models.CategoryLeisure, date),
	}

	totals := ComputeTotals(transactions)

	s.True(totals.Balance.Equal(decimal.NewFromInt(-150)))
}

func (s *ReportsTestSuite) TestExpensesByCategory_SumEqualsTotalExpenses() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		income(5000, date),
		expense(1500, models.CategoryHousing, date),
		expense(400, models.CategoryFood, date),
		expense(100, models.CategoryFood, date),
		expense(250, models.CategoryTransport, date),
	}

	totals := ComputeTotals(transactions)
	byCategory := ExpensesByCategory(transactions)

	sum := decimal.Zero
	for _, entry := range byCategory {
		sum = sum.Add(entry.Total)
	}
	s.True(sum.Equal(totals.Expenses))
}

func (s *ReportsTestSuite) TestExpensesByCategory_OrderedDescendingWithNameTiebreak() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		expense(100, models.CategoryTransport, date),
		expense(100, models.CategoryFood, date),
		expense(900, models.CategoryHousing, date),
	}

	byCategory := ExpensesByCategory(transactions)

	s.Require().Len(byCategory, 3)
	s.Equal(models.CategoryHousing, byCategory[0].Category)
	// Equal totals are ordered by category name
	s.Equal(models.CategoryFood, byCategory[1].Category)
	s.Equal(models.CategoryTransport, byCategory[2].Category)
}

func (s *ReportsTestSuite) TestExpensesByCategory_SkipsIncomeSentinel() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	malformed := models.Transaction{
		Type:     models.TransactionTypeExpense,
		Name:     "Linha corrompida",
		Amount:   decimal.NewFromInt(50),
		Category: models.CategoryIncome,
		Date:     date,
	}
	transactions := []models.Transaction{
		income(1000, date),
		malformed,
		expense(200, models.CategoryFood, date),
	}

	byCategory := ExpensesByCategory(transactions)

	s.Require().Len(byCategory, 1)
	s.Equal(models.CategoryFood, byCategory[0].Category)
}

func (s *ReportsTestSuite) TestExpensesByCategory_NoEntriesForUnusedCategories() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	byCategory := ExpensesByCategory([]models.Transaction{
		expense(10, models.CategoryOther, date),
	})

	s.Len(byCategory, 1)
}

func (s *ReportsTestSuite) TestCategoryTotalsMap_MatchesBreakdown() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		expense(1500, models.CategoryHousing, date),
		expense(400, models.CategoryFood, date),
		expense(100, models.CategoryFood, date),
	}

	byCategory := CategoryTotalsMap(transactions)

	s.Len(byCategory, 2)
	s.True(byCategory[models.CategoryHousing].Equal(decimal.NewFromInt(1500)))
	s.True(byCategory[models.CategoryFood].Equal(decimal.NewFromInt(500)))
}

func (s *ReportsTestSuite) TestMonthlySeries_SortedAscendingWithoutDuplicates() {
	transactions := []models.Transaction{
		expense(100, models.CategoryFood, time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)),
		income(5000, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		expense(200, models.CategoryHousing, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)),
		income(5000, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(transactions)

	s.Require().Len(series, 2)
	s.Equal("2024-05", series[0].Month)
	s.Equal("2024-07", series[1].Month)

	s.True(series[0].Income.Equal(decimal.NewFromInt(5000)))
	s.True(series[0].Expense.Equal(decimal.NewFromInt(200)))
	s.True(series[1].Income.Equal(decimal.NewFromInt(5000)))
	s.True(series[1].Expense.Equal(decimal.NewFromInt(100)))
}

func (s *ReportsTestSuite) TestMonthlySeries_YearBoundaryOrdering() {
	transactions := []models.Transaction{
		expense(10, models.CategoryFood, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		expense(20, models.CategoryFood, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(transactions)

	s.Require().Len(series, 2)
	s.Equal("2024-12", series[0].Month)
	s.Equal("2025-01", series[1].Month)
}

func (s *ReportsTestSuite) TestMonthlySeries_Empty() {
	s.Empty(MonthlySeries(nil))
}

func (s *ReportsTestSuite) TestSavingsProgress_Linear() {
	goal := decimal.NewFromInt(1000)

	s.True(SavingsProgress(decimal.NewFromInt(250), goal).Equal(decimal.NewFromInt(25)))
	s.True(SavingsProgress(decimal.NewFromInt(500), goal).Equal(decimal.NewFromInt(50)))
	s.True(SavingsProgress(decimal.NewFromInt(1000), goal).Equal(decimal.NewFromInt(100)))
}

func (s *ReportsTestSuite) TestSavingsProgress_CanExceedOneHundred() {
	progress := SavingsProgress(decimal.NewFromInt(1500), decimal.NewFromInt(1000))
	s.True(progress.Equal(decimal.NewFromInt(150)))
}

func (s *ReportsTestSuite) TestSavingsProgress_NegativeBalanceClampsToZero() {
	progress := SavingsProgress(decimal.NewFromInt(-100), decimal.NewFromInt(1000))
	s.True(progress.IsZero())
}

func (s *ReportsTestSuite) TestSavingsProgress_NonPositiveGoalYieldsZero() {
	s.True(SavingsProgress(decimal.NewFromInt(500), decimal.Zero).IsZero())
	s.True(SavingsProgress(decimal.NewFromInt(500), decimal.NewFromInt(-10)).IsZero())
}

func (s *ReportsTestSuite) TestHasFigures() {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	onlyIncome := []models.Transaction{income(100, date)}
	s.True(HasFigures(ComputeTotals(onlyIncome), CategoryTotalsMap(onlyIncome)))

	onlyExpense := []models.Transaction{expense(100, models.CategoryFood, date)}
	s.True(HasFigures(ComputeTotals(onlyExpense), CategoryTotalsMap(onlyExpense)))

	s.False(HasFigures(ComputeTotals(nil), CategoryTotalsMap(nil)))
}
