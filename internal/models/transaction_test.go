package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validExpense() Transaction {
	return Transaction{
		UserID:   uuid.New(),
		Type:     TransactionTypeExpense,
		Name:     "Supermercado",
		Amount:   decimal.NewFromInt(100),
		Category: CategoryFood,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TransactionTestSuite) validIncome() Transaction {
	return Transaction{
		UserID:   uuid.New(),
		Type:     TransactionTypeIncome,
		Name:     "Salário",
		Amount:   decimal.NewFromInt(5000),
		Category: CategoryIncome,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TransactionTestSuite) TestValidate_ValidTransactions() {
	expense := s.validExpense()
	s.NoError(expense.Validate())

	income := s.validIncome()
	s.NoError(income.Validate())
}

func (s *TransactionTestSuite) TestValidate_MissingUserID() {
	transaction := s.validExpense()
	transaction.UserID = uuid.Nil

	s.Error(transaction.Validate())
}

func (s *TransactionTestSuite) TestValidate_InvalidType() {
	transaction := s.validExpense()
	transaction.Type = "transfer"

	s.ErrorIs(transaction.Validate(), ErrInvalidTransactionType)
}

func (s *TransactionTestSuite) TestValidate_NameLength() {
	transaction := s.validExpense()

	transaction.Name = "a"
	s.ErrorIs(transaction.Validate(), ErrNameTooShort)

	transaction.Name = ""
	s.ErrorIs(transaction.Validate(), ErrNameTooShort)

	// Length is counted in runes, not bytes
	transaction.Name = "çá"
	s.NoError(transaction.Validate())
}

func (s *TransactionTestSuite) TestValidate_Amount() {
	transaction := s.validExpense()

	transaction.Amount = decimal.Zero
	s.ErrorIs(transaction.Validate(), ErrInvalidAmount)

	transaction.Amount = decimal.NewFromInt(-10)
	s.ErrorIs(transaction.Validate(), ErrInvalidAmount)

	transaction.Amount = decimal.NewFromFloat(0.01)
	s.NoError(transaction.Validate())
}

func (s *TransactionTestSuite) TestValidate_IncomeRequiresIncomeCategory() {
	transaction := s.validIncome()
	transaction.Category = CategoryFood

	s.ErrorIs(transaction.Validate(), ErrInvalidCategory)
}

func (s *TransactionTestSuite) TestValidate_ExpenseRejectsIncomeCategory() {
	transaction := s.validExpense()
	transaction.Category = CategoryIncome

	s.ErrorIs(transaction.Validate(), ErrInvalidCategory)
}

func (s *TransactionTestSuite) TestValidate_ExpenseRejectsUnknownCategory() {
	transaction := s.validExpense()
	transaction.Category = "Viagens"

	s.ErrorIs(transaction.Validate(), ErrInvalidCategory)
}

func (s *TransactionTestSuite) TestValidate_ExpenseAcceptsEveryEnumeratedCategory() {
	for _, category := range ExpenseCategories {
		transaction := s.validExpense()
		transaction.Category = category
		s.NoError(transaction.Validate(), "category %s", category)
	}
}

func (s *TransactionTestSuite) TestIsIncomeIsExpense() {
	income := s.validIncome()
	s.True(income.IsIncome())
	s.False(income.IsExpense())

	expense := s.validExpense()
	s.False(expense.IsIncome())
	s.True(expense.IsExpense())
}

func (s *TransactionTestSuite) TestMonthKey() {
	transaction := s.validExpense()
	transaction.Date = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	s.Equal("2024-12", transaction.MonthKey())
}

func (s *TransactionTestSuite) TestIsValidTransactionType() {
	s.True(IsValidTransactionType(TransactionTypeIncome))
	s.True(IsValidTransactionType(TransactionTypeExpense))
	s.False(IsValidTransactionType("transfer"))
	s.False(IsValidTransactionType(""))
}
