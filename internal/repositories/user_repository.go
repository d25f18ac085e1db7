package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecodin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// userRepository implements UserRepositoryInterface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateLastLogin persists the last login timestamp
func (r *userRepository) UpdateLastLogin(user *models.User) error {
	if err := r.db.Model(user).Updates(map[string]interface{}{
		"last_login_at": user.LastLoginAt,
		"updated_at":    time.Now(),
	}).Error; err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// UpdateSavingsGoal sets the user's savings goal
func (r *userRepository) UpdateSavingsGoal(userID uuid.UUID, goal decimal.Decimal) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"savings_goal": goal,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update savings goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateAIUsage writes the monthly AI usage counters. Both fields are written
// together so a stale-month record is replaced in one statement.
func (r *userRepository) UpdateAIUsage(userID uuid.UUID, usageMonth string, usageCount int) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"ai_usage_month": usageMonth,
		"ai_usage_count": usageCount,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update AI usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
