package handlers

import (
	"net/http"

	"ecodin/internal/dto"
	"ecodin/internal/errors"
	"ecodin/internal/reports"
	"ecodin/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the dashboard aggregation endpoints
type ReportHandler struct {
	transactionService services.TransactionServiceInterface
	authService        services.AuthServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	transactionService services.TransactionServiceInterface,
	authService services.AuthServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		transactionService: transactionService,
		authService:        authService,
	}
}

// Summary returns period totals, the expense breakdown and savings progress
// @Summary Dashboard summary report
// @Description Totals, expense breakdown by category and savings goal progress for the selected date range
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryReportResponse "Summary report"
// @Failure 400 {object} errors.ErrorResponse "Invalid date range - VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	transactions, err := h.transactionService.List(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	totals := reports.ComputeTotals(transactions)
	byCategory := reports.ExpensesByCategory(transactions)
	progress := reports.SavingsProgress(totals.Balance, user.SavingsGoal)

	categoryResponses := make([]dto.CategoryTotalResponse, 0, len(byCategory))
	for _, entry := range byCategory {
		categoryResponses = append(categoryResponses, dto.CategoryTotalResponse{
			Category: entry.Category,
			Total:    entry.Total.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, dto.SummaryReportResponse{
		Totals: dto.TotalsResponse{
			Income:   totals.Income.StringFixed(2),
			Expenses: totals.Expenses.StringFixed(2),
			Balance:  totals.Balance.StringFixed(2),
		},
		ByCategory:      categoryResponses,
		SavingsGoal:     user.SavingsGoal.StringFixed(2),
		SavingsProgress: progress.StringFixed(2),
	})
}

// Trends returns the month-bucketed income and expense series
// @Summary Monthly trends report
// @Description Income and expense totals bucketed by calendar month, ordered ascending
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrendsReportResponse "Trends report"
// @Failure 400 {object} errors.ErrorResponse "Invalid date range - VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /reports/trends [get]
func (h *ReportHandler) Trends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	transactions, err := h.transactionService.List(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	series := reports.MonthlySeries(transactions)
	points := make([]dto.MonthlyPointResponse, 0, len(series))
	for _, point := range series {
		points = append(points, dto.MonthlyPointResponse{
			Month:   point.Month,
			Income:  point.Income.StringFixed(2),
			Expense: point.Expense.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, dto.TrendsReportResponse{Series: points})
}
