package handlers

import (
	"net/http"

	"ecodin/internal/dto"
	"ecodin/internal/errors"
	"ecodin/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SavingsGoalHandler manages the per-user savings goal
type SavingsGoalHandler struct {
	savingsGoalService services.SavingsGoalServiceInterface
}

// NewSavingsGoalHandler creates a new savings goal handler
func NewSavingsGoalHandler(savingsGoalService services.SavingsGoalServiceInterface) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		savingsGoalService: savingsGoalService,
	}
}

// SetGoal sets the authenticated user's monthly savings goal
// @Summary Set savings goal
// @Description Set the user's monthly savings goal. The minimum is 1.
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetSavingsGoalRequest true "Savings goal"
// @Success 200 {object} SuccessResponse{message=string} "Goal updated"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or VALIDATION_004"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /me/savings-goal [put]
func (h *SavingsGoalHandler) SetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := decimal.NewFromString(req.Goal)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal amount"))
	}

	if err := h.savingsGoalService.SetGoal(userID, goal); err != nil {
		switch err {
		case services.ErrInvalidSavingsGoal:
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Savings goal must be at least 1"))
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Savings goal updated successfully",
	})
}
