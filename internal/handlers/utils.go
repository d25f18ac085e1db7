package handlers

import (
	"fmt"
	"time"

	"ecodin/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// ErrInvalidDateRange is returned when a date query parameter does not parse
// or the range is inverted
var ErrInvalidDateRange = fmt.Errorf("invalid date range")

const dateParamLayout = "2006-01-02"

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// parseTransactionFilters reads the optional start_date, end_date, type and
// category query parameters. Dates use YYYY-MM-DD and both bounds are
// inclusive: the end date covers the whole day.
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}

	if start := c.QueryParam("start_date"); start != "" {
		parsed, err := time.Parse(dateParamLayout, start)
		if err != nil {
			return models.TransactionFilters{}, ErrInvalidDateRange
		}
		filters.StartDate = &parsed
	}

	if end := c.QueryParam("end_date"); end != "" {
		parsed, err := time.Parse(dateParamLayout, end)
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
