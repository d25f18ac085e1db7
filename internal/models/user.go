package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User holds the account profile along with the per-user dashboard state:
// the savings goal and the monthly AI-summary usage counters. The usage
// counters follow the lazy month-rollover protocol: AIUsageCount is only
// meaningful while AIUsageMonth matches the current calendar month.
type User struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string          `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string          `gorm:"type:varchar(100);not null" json:"display_name"`
	SavingsGoal  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"savings_goal"`
	AIUsageMonth string          `gorm:"type:varchar(7)" json:"ai_usage_month,omitempty"`
	AIUsageCount int             `gorm:"default:0" json:"ai_usage_count"`
	LastLoginAt  *time.Time      `gorm:"index" json:"last_login_at,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates (Updates with map), where the
	// User struct is empty and only specific columns change
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if u.DisplayName == "" {
		return errors.New("display name is required")
	}

	if u.SavingsGoal.IsNegative() {
		return errors.New("savings goal cannot be negative")
	}

	if u.AIUsageCount < 0 {
		return errors.New("AI usage count cannot be negative")
	}

	return nil
}

// RecordLogin updates the last login timestamp
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// HasSavingsGoal reports whether the user has set a savings goal.
func (u *User) HasSavingsGoal() bool {
	return u.SavingsGoal.IsPositive()
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
