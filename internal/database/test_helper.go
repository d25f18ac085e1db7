package database

import (
	"fmt"
	"testing"
	"time"

	"ecodin/internal/config"
	"ecodin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		DisplayName:  "Test User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestTransaction(t *testing.T, db *DB, user *models.User, txType, name, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   user.ID,
		Type:     txType,
		Name:     name,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     date,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction %q: %v", name, err)
	}

	return tx
}

func CreateTestExpense(t *testing.T, db *DB, user *models.User, name, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, user, models.TransactionTypeExpense, name, category, amount, date)
}

func CreateTestIncome(t *testing.T, db *DB, user *models.User, name string, amount float64, date time.Time) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, user, models.TransactionTypeIncome, name, models.CategoryIncome, amount, date)
}

func UniqueTestEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
