package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecodin/internal/models"
	"ecodin/internal/services"
	"ecodin/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTokenService *service_mocks.MockTokenServiceInterface
	echo             *echo.Echo
	testUserID       uuid.UUID
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.echo = echo.New()
	s.testUserID = uuid.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) run(authHeader string) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	err := RequireAuth(s.mockTokenService)(next)(c)
	s.NoError(err)

	return rec, nextCalled
}

func (s *AuthMiddlewareSuite) validClaims() *models.CustomClaims {
	return &models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user@example.com"},
		UserID:           s.testUserID.String(),
		Email:            "user@example.com",
		TokenType:        "access",
	}
}

func (s *AuthMiddlewareSuite) TestValidToken() {
	s.mockTokenService.EXPECT().ExtractTokenFromHeader("Bearer valid-token").Return("valid-token", nil)
	s.mockTokenService.EXPECT().ValidateAccessToken("valid-token").Return(s.validClaims(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var gotUserID uuid.UUID
	var gotEmail string
	next := func(c echo.Context) error {
		gotUserID = c.Get("user_id").(uuid.UUID)
		gotEmail = c.Get("user_email").(string)
		return c.NoContent(http.StatusOK)
	}

	err := RequireAuth(s.mockTokenService)(next)(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.testUserID, gotUserID)
	s.Equal("user@example.com", gotEmail)
}

func (s *AuthMiddlewareSuite) TestMissingHeader() {
	rec, nextCalled := s.run("")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestMalformedHeader() {
	s.mockTokenService.EXPECT().
		ExtractTokenFromHeader("NotBearer token").
		Return("", services.ErrInvalidAuthHeader)

	rec, nextCalled := s.run("NotBearer token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestExpiredToken() {
	s.mockTokenService.EXPECT().ExtractTokenFromHeader("Bearer expired-token").Return("expired-token", nil)
	s.mockTokenService.EXPECT().ValidateAccessToken("expired-token").Return(nil, services.ErrExpiredToken)

	rec, nextCalled := s.run("Bearer expired-token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestInvalidToken() {
	s.mockTokenService.EXPECT().ExtractTokenFromHeader("Bearer bad-token").Return("bad-token", nil)
	s.mockTokenService.EXPECT().ValidateAccessToken("bad-token").Return(nil, errors.New("signature mismatch"))

	rec, nextCalled := s.run("Bearer bad-token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestMalformedUserIDInClaims() {
	claims := s.validClaims()
	claims.UserID = "not-a-uuid"

	s.mockTokenService.EXPECT().ExtractTokenFromHeader("Bearer odd-token").Return("odd-token", nil)
	s.mockTokenService.EXPECT().ValidateAccessToken("odd-token").Return(claims, nil)

	rec, nextCalled := s.run("Bearer odd-token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
