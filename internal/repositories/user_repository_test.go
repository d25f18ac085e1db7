package repositories

import (
	"testing"
	"time"

	"ecodin/internal/database"
	"ecodin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreate() {
	user := &models.User{
		Email:        database.UniqueTestEmail("create"),
		PasswordHash: "hashed_password",
		DisplayName:  "New User",
	}

	err := s.repo.Create(user)

	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	email := database.UniqueTestEmail("duplicate")
	database.CreateTestUser(s.T(), s.db, email)

	err := s.repo.Create(&models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		DisplayName:  "Other User",
	})

	s.Error(err)
}

func (s *UserRepositoryTestSuite) TestGetByID() {
	created := database.CreateTestUser(s.T(), s.db, database.UniqueTestEmail("get-by-id"))

	user, err := s.repo.GetByID(created.ID)

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal(created.ID, user.ID)
	s.Equal(created.Email, user.Email)
}

func (s *UserRepositoryTestSuite) TestGetByID_NotFound() {
	user, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(user)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_CaseInsensitive() {
	created := database.CreateTestUser(s.T(), s.db, "Mixed.Case@Example.com")

	tests := []struct {
		name  string
		email string
	}{
		{name: "exact", email: "Mixed.Case@Example.com"},
		{name: "lowercase", email: "mixed.case@example.com"},
		{name: "uppercase", email: "MIXED.CASE@EXAMPLE.COM"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			user, err := s.repo.GetByEmail(tt.email)

			s.NoError(err)
			s.Require().NotNil(user)
			s.Equal(created.ID, user.ID)
		})
	}
}

func (s *UserRepositoryTestSuite) TestGetByEmail_NotFound() {
	user, err := s.repo.GetByEmail("nobody@example.com")

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(user)
}

func (s *UserRepositoryTestSuite) TestUpdateLastLogin() {
	user := database.CreateTestUser(s.T(), s.db, database.UniqueTestEmail("last-login"))
	user.RecordLogin()

	err := s.repo.UpdateLastLogin(user)
	s.NoError(err)

	reloaded, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Require().NotNil(reloaded.LastLoginAt)
	s.WithinDuration(time.Now(), *reloaded.LastLoginAt, 5*time.Second)
}

func (s *UserRepositoryTestSuite) TestUpdateSavingsGoal() {
	user := database.CreateTestUser(s.T(), s.db, database.UniqueTestEmail("savings-goal"))
	goal := decimal.NewFromInt(2500)

	err := s.repo.UpdateSavingsGoal(user.ID, goal)
	s.NoError(err)

	reloaded, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.True(reloaded.SavingsGoal.Equal(goal))
}

func (s *UserRepositoryTestSuite) TestUpdateSavingsGoal_UnknownUser() {
	err := s.repo.UpdateSavingsGoal(uuid.New(), decimal.NewFromInt(1000))

	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestUpdateAIUsage() {
	user := database.CreateTestUser(s.T(), s.db, database.UniqueTestEmail("ai-usage"))

	err := s.repo.UpdateAIUsage(user.ID, "2024-06", 1)
	s.NoError(err)

	reloaded, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("2024-06", reloaded.AIUsageMonth)
	s.Equal(1, reloaded.AIUsageCount)
}

func (s *UserRepositoryTestSuite) TestUpdateAIUsage_ReplacesStaleMonth() {
	user := database.CreateTestUser(s.T(), s.db, database.UniqueTestEmail("ai-usage-stale"))
	s.Require().NoError(s.repo.UpdateAIUsage(user.ID, "2024-05", 2))

	err := s.repo.UpdateAIUsage(user.ID, "2024-06", 1)
	s.NoError(err)

	reloaded, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("2024-06", reloaded.AIUsageMonth)
	s.Equal(1, reloaded.AIUsageCount)
}

func (s *UserRepositoryTestSuite) TestUpdateAIUsage_UnknownUser() {
	err := s.repo.UpdateAIUsage(uuid.New(), "2024-06", 1)

	s.ErrorIs(err, ErrUserNotFound)
}
