package services

import (
	"context"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing and validation operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	ValidatePassword(password string) error
}

// TransactionServiceInterface defines transaction CRUD plus the snapshot
// push that feeds the realtime stream
type TransactionServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(userID, transactionID uuid.UUID) error
	List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	Snapshot(userID uuid.UUID) ([]models.Transaction, error)
}

// QuotaServiceInterface tracks the per-user monthly AI-summary quota
type QuotaServiceInterface interface {
	Allowed(user *models.User, now time.Time) bool
	RecordUsage(user *models.User, now time.Time) (*models.QuotaRecord, error)
	Status(user *models.User, now time.Time) dto.AIUsageResponse
}

// SummaryServiceInterface orchestrates AI summary generation
type SummaryServiceInterface interface {
	GenerateSummary(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) (*dto.AISummaryResponse, error)
}

// SuggestionServiceInterface provides debounced category suggestions
type SuggestionServiceInterface interface {
	Suggest(ctx context.Context, userID uuid.UUID, transactionName string) (category string, ok bool)
}

// SavingsGoalServiceInterface manages the per-user savings goal
type SavingsGoalServiceInterface interface {
	SetGoal(userID uuid.UUID, goal decimal.Decimal) error
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	RecordTransactionMutation(operation string)
	RecordSummaryRequest(outcome string)
	RecordQuotaRejection()
	RecordSuggestionRequest(outcome string)
	RecordAIRequestDuration(duration time.Duration)
	SetStreamClients(count int)
}
