package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/services"
	"ecodin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AIHandlerSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockSummaryService    *service_mocks.MockSummaryServiceInterface
	mockSuggestionService *service_mocks.MockSuggestionServiceInterface
	mockQuotaService      *service_mocks.MockQuotaServiceInterface
	mockAuthService       *service_mocks.MockAuthServiceInterface
	handler               *AIHandler
	echo                  *echo.Echo
	testUserID            uuid.UUID
}

func (s *AIHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSummaryService = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.mockSuggestionService = service_mocks.NewMockSuggestionServiceInterface(s.ctrl)
	s.mockQuotaService = service_mocks.NewMockQuotaServiceInterface(s.ctrl)
	s.mockAuthService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAIHandler(s.mockSummaryService, s.mockSuggestionService, s.mockQuotaService, s.mockAuthService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

func (s *AIHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAIHandlerSuite(t *testing.T) {
	suite.Run(t, new(AIHandlerSuite))
}

func (s *AIHandlerSuite) createAuthContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)
	return c, rec
}

func (s *AIHandlerSuite) TestGenerateSummary_Success() {
	reqBody := dto.AISummaryRequest{StartDate: "2024-06-01", EndDate: "2024-06-30"}
	summary := &dto.AISummaryResponse{
		Summary:     "Seu maior gasto foi com moradia.",
		Suggestions: []string{"Revise o aluguel"},
		Usage:       dto.AIUsageResponse{Month: "2024-06", Used: 1, Limit: 2, Remaining: 1},
	}

	s.mockSummaryService.EXPECT().
		GenerateSummary(gomock.Any(), s.testUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, filters models.TransactionFilters) (*dto.AISummaryResponse, error) {
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			return summary, nil
		})

	c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/summary", reqBody)
	err := s.handler.GenerateSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AISummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(summary.Summary, response.Summary)
	s.Equal(1, response.Usage.Used)
}

func (s *AIHandlerSuite) TestGenerateSummary_NoDateRange() {
	s.mockSummaryService.EXPECT().
		GenerateSummary(gomock.Any(), s.testUserID, models.TransactionFilters{}).
		Return(&dto.AISummaryResponse{Summary: "Resumo", Suggestions: []string{}}, nil)

	c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/summary", dto.AISummaryRequest{})
	err := s.handler.GenerateSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AIHandlerSuite) TestGenerateSummary_ErrorMapping() {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "no figures",
			serviceErr:     services.ErrNoFigures,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "AI_002",
		},
		{
			name:           "quota exhausted",
			serviceErr:     services.ErrQuotaExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "QUOTA_001",
		},
		{
			name:           "upstream failure",
			serviceErr:     services.ErrSummaryGeneration,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "AI_001",
		},
		{
			name:           "user not found",
			serviceErr:     services.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "USER_001",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockSummaryService.EXPECT().
				GenerateSummary(gomock.Any(), s.testUserID, gomock.Any()).
				Return(nil, tt.serviceErr)

			c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/summary", dto.AISummaryRequest{})
			err := s.handler.GenerateSummary(c)

			s.NoError(err)
			s.Equal(tt.expectedStatus, rec.Code)
			s.Contains(rec.Body.String(), tt.expectedCode)
		})
	}
}

func (s *AIHandlerSuite) TestGenerateSummary_InvalidDates() {
	tests := []struct {
		name string
		body dto.AISummaryRequest
	}{
		{name: "malformed start", body: dto.AISummaryRequest{StartDate: "junho"}},
		{name: "malformed end", body: dto.AISummaryRequest{EndDate: "30/06/2024"}},
		{name: "inverted range", body: dto.AISummaryRequest{StartDate: "2024-06-30", EndDate: "2024-06-01"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/summary", tt.body)
			err := s.handler.GenerateSummary(c)

			s.NoError(err)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Contains(rec.Body.String(), "VALIDATION_006")
		})
	}
}

func (s *AIHandlerSuite) TestGenerateSummary_MissingAuthContext() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GenerateSummary(c)

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AIHandlerSuite) TestUsage_Success() {
	user := &models.User{ID: s.testUserID, AIUsageMonth: "2024-06", AIUsageCount: 1}
	status := dto.AIUsageResponse{Month: "2024-06", Used: 1, Limit: 2, Remaining: 1}

	s.mockAuthService.EXPECT().GetProfile(s.testUserID).Return(user, nil)
	s.mockQuotaService.EXPECT().Status(user, gomock.Any()).Return(status)

	c, rec := s.createAuthContext(http.MethodGet, "/api/v1/ai/usage", nil)
	err := s.handler.Usage(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AIUsageResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(status, response)
}

func (s *AIHandlerSuite) TestUsage_UserNotFound() {
	s.mockAuthService.EXPECT().GetProfile(s.testUserID).Return(nil, services.ErrUserNotFound)

	c, rec := s.createAuthContext(http.MethodGet, "/api/v1/ai/usage", nil)
	err := s.handler.Usage(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AIHandlerSuite) TestSuggestCategory_Applied() {
	reqBody := dto.SuggestCategoryRequest{TransactionName: "Supermercado"}

	s.mockSuggestionService.EXPECT().
		Suggest(gomock.Any(), s.testUserID, "Supermercado").
		Return(models.CategoryFood, true)

	c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/suggest-category", reqBody)
	err := s.handler.SuggestCategory(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SuggestCategoryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().NotNil(response.Category)
	s.Equal(models.CategoryFood, *response.Category)
}

func (s *AIHandlerSuite) TestSuggestCategory_NoSuggestionIsStillOK() {
	reqBody := dto.SuggestCategoryRequest{TransactionName: "ab"}

	s.mockSuggestionService.EXPECT().
		Suggest(gomock.Any(), s.testUserID, "ab").
		Return("", false)

	c, rec := s.createAuthContext(http.MethodPost, "/api/v1/ai/suggest-category", reqBody)
	err := s.handler.SuggestCategory(c)

	s.NoError(err)
	// Degrades to a null suggestion rather than an error status
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SuggestCategoryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Nil(response.Category)
}

func (s *AIHandlerSuite) TestSuggestCategory_MissingName() {
	c, _ := s.createAuthContext(http.MethodPost, "/api/v1/ai/suggest-category", dto.SuggestCategoryRequest{})
	err := s.handler.SuggestCategory(c)

	s.Error(err)
}
