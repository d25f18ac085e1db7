package services

import (
	"errors"
	"fmt"
	"log/slog"

	"ecodin/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidSavingsGoal = errors.New("savings goal must be at least 1")

type savingsGoalService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *slog.Logger
}

// NewSavingsGoalService creates a new savings goal service
func NewSavingsGoalService(userRepo repositories.UserRepositoryInterface, logger *slog.Logger) SavingsGoalServiceInterface {
	return &savingsGoalService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SetGoal persists the user's monthly savings goal. The goal is a whole
// currency target of at least 1; progress against it is derived at read
// time from the balance.
func (s *savingsGoalService) SetGoal(userID uuid.UUID, goal decimal.Decimal) error {
	if goal.LessThan(decimal.NewFromInt(1)) {
		return ErrInvalidSavingsGoal
	}

	if err := s.userRepo.UpdateSavingsGoal(userID, goal); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update savings goal: %w", err)
	}

	s.logger.Info("savings goal updated", "user_id", userID, "goal", goal.StringFixed(2))
	return nil
}
