package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/repositories"
	"ecodin/internal/repositories/repository_mocks"
	"ecodin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockUserRepo        *repository_mocks.MockUserRepositoryInterface
	mockPasswordService *service_mocks.MockPasswordServiceInterface
	mockTokenService    *service_mocks.MockTokenServiceInterface
	service             AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.mockPasswordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.mockTokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAuthService(s.mockUserRepo, s.mockPasswordService, s.mockTokenService, logger)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := &dto.RegisterRequest{
		Email:       "new@example.com",
		Password:    "secure-password-123",
		DisplayName: "New User",
	}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
	s.mockPasswordService.EXPECT().HashPassword(req.Password).Return("hashed-password", nil)
	s.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			s.Equal(req.Email, user.Email)
			s.Equal("hashed-password", user.PasswordHash)
			s.Equal(req.DisplayName, user.DisplayName)
			user.ID = uuid.New()
			return nil
		})

	user, err := s.service.Register(req)

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal(req.Email, user.Email)
}

func (s *AuthServiceTestSuite) TestRegister_EmailAlreadyTaken() {
	req := &dto.RegisterRequest{
		Email:       "taken@example.com",
		Password:    "secure-password-123",
		DisplayName: "New User",
	}
	existing := &models.User{ID: uuid.New(), Email: req.Email}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(existing, nil)

	user, err := s.service.Register(req)

	s.ErrorIs(err, ErrUserAlreadyExists)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_LookupFailure() {
	req := &dto.RegisterRequest{
		Email:       "new@example.com",
		Password:    "secure-password-123",
		DisplayName: "New User",
	}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, errors.New("database error"))

	user, err := s.service.Register(req)

	s.Error(err)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	req := &dto.RegisterRequest{
		Email:       "new@example.com",
		Password:    "short",
		DisplayName: "New User",
	}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
	s.mockPasswordService.EXPECT().HashPassword(req.Password).Return("", ErrPasswordTooShort)

	user, err := s.service.Register(req)

	s.ErrorIs(err, ErrPasswordTooShort)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	req := &dto.LoginRequest{Email: "user@example.com", Password: "secure-password-123"}
	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: "hashed-password",
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(user, nil)
	s.mockPasswordService.EXPECT().ComparePassword(req.Password, "hashed-password").Return(true)
	s.mockTokenService.EXPECT().GenerateAccessToken(user).Return("access-token", expiresAt, nil)
	s.mockUserRepo.EXPECT().
		UpdateLastLogin(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			s.NotNil(u.LastLoginAt)
			return nil
		})

	response, err := s.service.Login(req)

	s.NoError(err)
	s.Require().NotNil(response)
	s.Equal("access-token", response.AccessToken)
	s.Equal("Bearer", response.TokenType)
	s.Equal(expiresAt, response.ExpiresAt)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "secure-password-123"}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)

	response, err := s.service.Login(req)

	// Same error as a bad password so user existence is not revealed
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(response)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	req := &dto.LoginRequest{Email: "user@example.com", Password: "wrong-password"}
	user := &models.User{ID: uuid.New(), Email: req.Email, PasswordHash: "hashed-password"}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(user, nil)
	s.mockPasswordService.EXPECT().ComparePassword(req.Password, "hashed-password").Return(false)

	response, err := s.service.Login(req)

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(response)
}

func (s *AuthServiceTestSuite) TestLogin_LastLoginWriteFailureStillSucceeds() {
	req := &dto.LoginRequest{Email: "user@example.com", Password: "secure-password-123"}
	user := &models.User{ID: uuid.New(), Email: req.Email, PasswordHash: "hashed-password"}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(user, nil)
	s.mockPasswordService.EXPECT().ComparePassword(req.Password, "hashed-password").Return(true)
	s.mockTokenService.EXPECT().GenerateAccessToken(user).Return("access-token", time.Now().Add(time.Hour), nil)
	s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any()).Return(errors.New("database error"))

	response, err := s.service.Login(req)

	s.NoError(err)
	s.NotNil(response)
}

func (s *AuthServiceTestSuite) TestLogin_TokenGenerationFailure() {
	req := &dto.LoginRequest{Email: "user@example.com", Password: "secure-password-123"}
	user := &models.User{ID: uuid.New(), Email: req.Email, PasswordHash: "hashed-password"}

	s.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(user, nil)
	s.mockPasswordService.EXPECT().ComparePassword(req.Password, "hashed-password").Return(true)
	s.mockTokenService.EXPECT().GenerateAccessToken(user).Return("", time.Time{}, errors.New("signing error"))

	response, err := s.service.Login(req)

	s.Error(err)
	s.Nil(response)
}

func (s *AuthServiceTestSuite) TestGetProfile_Success() {
	userID := uuid.New()
	user := &models.User{ID: userID, Email: "user@example.com"}

	s.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)

	result, err := s.service.GetProfile(userID)

	s.NoError(err)
	s.Equal(user, result)
}

func (s *AuthServiceTestSuite) TestGetProfile_NotFound() {
	userID := uuid.New()

	s.mockUserRepo.EXPECT().GetByID(userID).Return(nil, repositories.ErrUserNotFound)

	result, err := s.service.GetProfile(userID)

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(result)
}
