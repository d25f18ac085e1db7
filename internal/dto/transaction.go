package dto

import "time"

// Transaction Request DTOs

// CreateTransactionRequest contains the fields for recording a transaction.
// Category is required for expenses and ignored for income entries, which
// always carry the "Renda" sentinel.
type CreateTransactionRequest struct {
	Type     string     `json:"type" validate:"required,transaction_type"`
	Name     string     `json:"name" validate:"required,min=2,max=255"`
	Amount   string     `json:"amount" validate:"required,positive_amount"`
	Category string     `json:"category" validate:"omitempty,expense_category"`
	Date     *time.Time `json:"date,omitempty"`
}

// UpdateTransactionRequest replaces the mutable fields of a transaction
type UpdateTransactionRequest struct {
	Type     string     `json:"type" validate:"required,transaction_type"`
	Name     string     `json:"name" validate:"required,min=2,max=255"`
	Amount   string     `json:"amount" validate:"required,positive_amount"`
	Category string     `json:"category" validate:"omitempty,expense_category"`
	Date     *time.Time `json:"date,omitempty"`
}

// SetSavingsGoalRequest sets the user's monthly savings goal. The slider
// minimum of 1 is enforced here.
type SetSavingsGoalRequest struct {
	Goal string `json:"goal" validate:"required,savings_goal"`
}

// Transaction Response DTOs

// TransactionResponse is the wire shape of a transaction
type TransactionResponse struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Amount   string    `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// ListTransactionsResponse wraps a transaction listing
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}
