package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/errors"
	"ecodin/internal/models"
	"ecodin/internal/services"

	"github.com/labstack/echo/v4"
)

// AIHandler serves the AI summary, quota usage and category suggestion
// endpoints
type AIHandler struct {
	summaryService    services.SummaryServiceInterface
	suggestionService services.SuggestionServiceInterface
	quotaService      services.QuotaServiceInterface
	authService       services.AuthServiceInterface
}

// NewAIHandler creates a new AI handler
func NewAIHandler(
	summaryService services.SummaryServiceInterface,
	suggestionService services.SuggestionServiceInterface,
	quotaService services.QuotaServiceInterface,
	authService services.AuthServiceInterface,
) *AIHandler {
	return &AIHandler{
		summaryService:    summaryService,
		suggestionService: suggestionService,
		quotaService:      quotaService,
		authService:       authService,
	}
}

// GenerateSummary produces an AI spending summary for the selected period
// @Summary Generate AI spending summary
// @Description Generate a summary of the user's finances for the selected date range. Counts against the monthly quota only on success.
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AISummaryRequest true "Date range selection"
// @Success 200 {object} dto.AISummaryResponse "Generated summary with updated usage"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 422 {object} errors.ErrorResponse "No figures to summarize - AI_002"
// @Failure 429 {object} errors.ErrorResponse "Monthly quota exhausted - QUOTA_001"
// @Failure 502 {object} errors.ErrorResponse "Upstream generation failure - AI_001"
// @Router /ai/summary [post]
func (h *AIHandler) GenerateSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AISummaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	filters, err := summaryFilters(&req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	summary, err := h.summaryService.GenerateSummary(c.Request().Context(), userID, filters)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNoFigures):
			return SendError(c, errors.AINoTransactions)
		case stderrors.Is(err, services.ErrQuotaExceeded):
			return SendError(c, errors.QuotaExceeded)
		case stderrors.Is(err, services.ErrSummaryGeneration):
			return SendError(c, errors.AIGenerationFailed)
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, summary)
}

// Usage reports the user's AI summary quota state for the current month
// @Summary Get AI quota usage
// @Description Report how many AI summaries the user has generated this month and how many remain
// @Tags AI
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AIUsageResponse "Quota state"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /ai/usage [get]
func (h *AIHandler) Usage(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, h.quotaService.Status(user, time.Now().UTC()))
}

// SuggestCategory suggests an expense category for a transaction name
// @Summary Suggest an expense category
// @Description Suggest a category for the given transaction name. Responds 200 with a null category when the name is too short, the request was superseded or the model failed.
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestCategoryRequest true "Transaction name"
// @Success 200 {object} dto.SuggestCategoryResponse "Suggestion, possibly null"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /ai/suggest-category [post]
func (h *AIHandler) SuggestCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SuggestCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response := dto.SuggestCategoryResponse{}
	if category, ok := h.suggestionService.Suggest(c.Request().Context(), userID, req.TransactionName); ok {
		response.Category = &category
	}

	return c.JSON(http.StatusOK, response)
}

// summaryFilters converts the request's optional date strings into
// transaction filters with the same inclusive bounds the listing uses
func summaryFilters(req *dto.AISummaryRequest) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{}

	if req.StartDate != "" {
		parsed, err := time.Parse(dateParamLayout, req.StartDate)
		if err != nil {
			return models.TransactionFilters{}, ErrInvalidDateRange
		}
		filters.StartDate = &parsed
	}

	if req.EndDate != "" {
		parsed, err := time.Parse(dateParamLayout, req.EndDate)
		if err != nil {
			return models.TransactionFilters{}, ErrInvalidDateRange
		}
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.EndDate = &endOfDay
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return models.TransactionFilters{}, ErrInvalidDateRange
	}

	return filters, nil
}
