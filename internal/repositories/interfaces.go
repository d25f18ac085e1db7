package repositories

import (
	"ecodin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(user *models.User) error
	UpdateSavingsGoal(userID uuid.UUID, goal decimal.Decimal) error
	UpdateAIUsage(userID uuid.UUID, usageMonth string, usageCount int) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	ListByUser(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	CountByUser(userID uuid.UUID) (int64, error)
}
