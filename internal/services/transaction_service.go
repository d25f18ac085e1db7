package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/repositories"
	"ecodin/internal/stream"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrNotTransactionOwner  = errors.New("transaction belongs to another user")
	ErrExpenseNeedsCategory = errors.New("expense transactions require a category")
)

// transactionService implements transaction CRUD. Every successful mutation
// pushes a fresh full snapshot of the user's transactions to the stream hub,
// mirroring the snapshot-per-change subscription the dashboard consumes.
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	hub             *stream.Hub
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	hub *stream.Hub,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		hub:             hub,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a new transaction for the user
func (s *transactionService) Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	transaction, err := buildTransaction(userID, req.Type, req.Name, req.Amount, req.Category, req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("create")
	s.logger.Info("transaction created",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category)

	s.publishSnapshot(userID)

	return transaction, nil
}

// Update replaces the mutable fields of a user's transaction. Type and
// category are replaced together so the type/category invariant holds
// through edits.
func (s *transactionService) Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	existing, err := s.getOwned(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updated, err := buildTransaction(userID, req.Type, req.Name, req.Amount, req.Category, req.Date)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if req.Date == nil {
		updated.Date = existing.Date
	}

	if err := s.transactionRepo.Update(updated); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("update")
	s.publishSnapshot(userID)

	return updated, nil
}

// Delete removes a user's transaction
func (s *transactionService) Delete(userID, transactionID uuid.UUID) error {
	if _, err := s.getOwned(userID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transactionID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("delete")
	s.logger.Info("transaction deleted",
		"user_id", userID,
		"transaction_id", transactionID)

	s.publishSnapshot(userID)

	return nil
}

// List returns the user's transactions for the given filters, ordered by date
func (s *transactionService) List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Snapshot returns the user's full unfiltered transaction list
func (s *transactionService) Snapshot(userID uuid.UUID) ([]models.Transaction, error) {
	return s.List(userID, models.TransactionFilters{})
}

func (s *transactionService) getOwned(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.UserID != userID {
		return nil, ErrNotTransactionOwner
	}

	return transaction, nil
}

// publishSnapshot pushes the full post-mutation transaction list to the
// user's stream subscribers. Best effort: a failed read only costs an
// emission, the data is already persisted.
func (s *transactionService) publishSnapshot(userID uuid.UUID) {
	snapshot, err := s.transactionRepo.ListByUser(userID, models.TransactionFilters{})
	if err != nil {
		s.logger.Warn("failed to build stream snapshot", "user_id", userID, "error", err)
		return
	}
	s.hub.Publish(userID, snapshot)
}

// buildTransaction assembles and normalizes a transaction from request
// fields: income entries always carry the "Renda" sentinel regardless of the
// submitted category, expenses must name a category from the enumeration.
func buildTransaction(userID uuid.UUID, txType, name, amount, category string, date *time.Time) (*models.Transaction, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, models.ErrInvalidAmount
	}
	if parsedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}

	if txType == models.TransactionTypeIncome {
		category = models.CategoryIncome
	} else if category == "" {
		return nil, ErrExpenseNeedsCategory
	}

	transaction := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Name:     name,
		Amount:   parsedAmount,
		Category: category,
	}
	if date != nil {
		transaction.Date = *date
	}

	return transaction, nil
}
