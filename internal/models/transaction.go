package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	MinTransactionNameLength = 2
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrNameTooShort           = errors.New("transaction name must have at least 2 characters")
	ErrInvalidCategory        = errors.New("invalid category for transaction type")
)

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type     string          `gorm:"type:varchar(10);not null" json:"type"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category string          `gorm:"type:varchar(30);not null" json:"category"`
	Date     time.Time       `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields, including the type/category
// invariant: income transactions carry the "Renda" sentinel, expense
// transactions carry a member of the expense category enumeration.
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if len([]rune(t.Name)) < MinTransactionNameLength {
		return ErrNameTooShort
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	switch t.Type {
	case TransactionTypeIncome:
		if t.Category != CategoryIncome {
			return ErrInvalidCategory
		}
	case TransactionTypeExpense:
		if !IsValidExpenseCategory(t.Category) {
			return ErrInvalidCategory
		}
	}

	return nil
}

// IsIncome returns true if the transaction is an income entry
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction is an expense entry
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// MonthKey returns the calendar month key (YYYY-MM) of the transaction date.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
