package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ecodin/internal/ai"
	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/reports"
	"ecodin/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrQuotaExceeded means the monthly summary limit is exhausted. This is
	// an expected state, surfaced as a disabled action, not a fault.
	ErrQuotaExceeded = errors.New("monthly AI summary quota exceeded")

	// ErrNoFigures means there is nothing to summarize yet: no income and no
	// expense categories in the selected range.
	ErrNoFigures = errors.New("no transactions to summarize")

	// ErrSummaryGeneration wraps any upstream model failure.
	ErrSummaryGeneration = errors.New("summary generation failed")

	ErrUserNotFound = errors.New("user not found")
)

const (
	summaryOutcomeSuccess       = "success"
	summaryOutcomeQuotaRejected = "quota_rejected"
	summaryOutcomeNoFigures     = "no_figures"
	summaryOutcomeUpstreamError = "upstream_error"
)

// summaryService orchestrates AI summary generation: it aggregates the
// user's figures, enforces the monthly quota around the model call and
// records usage only after a successful generation.
type summaryService struct {
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	quota           QuotaServiceInterface
	aiClient        ai.ClientInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSummaryService creates a new AI summary service
func NewSummaryService(
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	quota QuotaServiceInterface,
	aiClient ai.ClientInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &summaryService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		quota:           quota,
		aiClient:        aiClient,
		metrics:         metrics,
		logger:          logger,
	}
}

// GenerateSummary produces the natural-language spending summary for the
// user's transactions in the given range.
//
// Order matters here: the empty-figures short circuit runs before the quota
// check so an empty dashboard never consumes quota, the quota check runs
// before the model call, and usage is recorded only after the model answered.
func (s *summaryService) GenerateSummary(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) (*dto.AISummaryResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	transactions, err := s.transactionRepo.ListByUser(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	totals := reports.ComputeTotals(transactions)
	byCategory := reports.CategoryTotalsMap(transactions)

	if !reports.HasFigures(totals, byCategory) {
		s.metrics.RecordSummaryRequest(summaryOutcomeNoFigures)
		return nil, ErrNoFigures
	}

	now := time.Now()
	if !s.quota.Allowed(user, now) {
		s.metrics.RecordSummaryRequest(summaryOutcomeQuotaRejected)
		s.metrics.RecordQuotaRejection()
		s.logger.Info("AI summary rejected by quota",
			"user_id", userID,
			"usage_month", user.AIUsageMonth,
			"usage_count", user.AIUsageCount)
		return nil, ErrQuotaExceeded
	}

	input := ai.SummaryInput{
		Income:   totals.Income,
		Expenses: byCategory,
	}
	if user.HasSavingsGoal() {
		goal := user.SavingsGoal
		input.SavingsGoal = &goal
	}

	started := time.Now()
	output, err := s.aiClient.GenerateSummary(ctx, input)
	s.metrics.RecordAIRequestDuration(time.Since(started))

	if err != nil {
		s.metrics.RecordSummaryRequest(summaryOutcomeUpstreamError)
		s.logger.Error("AI summary generation failed",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrSummaryGeneration, err)
	}

	// Usage is recorded only now, after the model answered. If the write
	// itself fails the user gets the summary for free; losing one count is
	// better than charging for a summary that was never delivered.
	if _, err := s.quota.RecordUsage(user, now); err != nil {
		s.logger.Error("failed to record AI usage after successful generation",
			"user_id", userID,
			"error", err)
	}

	s.metrics.RecordSummaryRequest(summaryOutcomeSuccess)

	suggestions := output.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return &dto.AISummaryResponse{
		Summary:     output.Summary,
		Suggestions: suggestions,
		Usage:       s.quota.Status(user, now),
	}, nil
}
