package services

import (
	"fmt"
	"log/slog"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/repositories"
)

// MonthKey returns the calendar month key (YYYY-MM) for a point in time.
// It matches the month key used to bucket the trends series.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CheckAllowed reports whether another AI summary may be generated this
// month. Only a record from the current month with an exhausted count blocks
// the action; a missing record or one from a past month always permits it
// (the stale count is treated as zero and lazily reset on the next write).
func CheckAllowed(record *models.QuotaRecord, currentMonthKey string, limit int) bool {
	if record == nil {
		return true
	}
	if record.UsageMonth != currentMonthKey {
		return true
	}
	return record.UsageCount < limit
}

// NextUsage returns the quota record to persist after a successful
// generation: same-month records are incremented, everything else (no record
// or stale month) restarts at 1 for the current month.
func NextUsage(record *models.QuotaRecord, currentMonthKey string) models.QuotaRecord {
	if record != nil && record.UsageMonth == currentMonthKey {
		return models.QuotaRecord{
			UsageMonth: currentMonthKey,
			UsageCount: record.UsageCount + 1,
		}
	}
	return models.QuotaRecord{
		UsageMonth: currentMonthKey,
		UsageCount: 1,
	}
}

// quotaService applies the quota protocol against the persisted user row.
// The check and the usage write are deliberately two separate steps around
// the AI call: a failed generation must never consume quota. Concurrent
// requests from one user can both pass the check before either records, so
// the limit can be exceeded by in-flight requests minus one; that race is
// accepted rather than solved.
type quotaService struct {
	userRepo repositories.UserRepositoryInterface
	limit    int
	logger   *slog.Logger
}

// NewQuotaService creates a new quota service with the monthly limit
func NewQuotaService(userRepo repositories.UserRepositoryInterface, limit int, logger *slog.Logger) QuotaServiceInterface {
	return &quotaService{
		userRepo: userRepo,
		limit:    limit,
		logger:   logger,
	}
}

// Allowed checks the user's quota for the month containing now
func (s *quotaService) Allowed(user *models.User, now time.Time) bool {
	return CheckAllowed(models.QuotaFromUser(user), MonthKey(now), s.limit)
}

// RecordUsage persists the incremented (or month-reset) usage counters and
// mirrors them back onto the in-memory user.
func (s *quotaService) RecordUsage(user *models.User, now time.Time) (*models.QuotaRecord, error) {
	next := NextUsage(models.QuotaFromUser(user), MonthKey(now))

	if err := s.userRepo.UpdateAIUsage(user.ID, next.UsageMonth, next.UsageCount); err != nil {
		return nil, fmt.Errorf("failed to record AI usage: %w", err)
	}

	user.AIUsageMonth = next.UsageMonth
	user.AIUsageCount = next.UsageCount

	s.logger.Info("AI usage recorded",
		"user_id", user.ID,
		"usage_month", next.UsageMonth,
		"usage_count", next.UsageCount)

	return &next, nil
}

// Status reports the effective usage for the current month
func (s *quotaService) Status(user *models.User, now time.Time) dto.AIUsageResponse {
	monthKey := MonthKey(now)
	used := models.QuotaFromUser(user).EffectiveCount(monthKey)

	remaining := s.limit - used
	if remaining < 0 {
		remaining = 0
	}

	return dto.AIUsageResponse{
		Month:     monthKey,
		Used:      used,
		Limit:     s.limit,
		Remaining: remaining,
	}
}
