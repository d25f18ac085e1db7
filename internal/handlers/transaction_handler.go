package handlers

import (
	"net/http"

	"ecodin/internal/dto"
	"ecodin/internal/errors"
	"ecodin/internal/models"
	"ecodin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction CRUD endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create records a new transaction
// @Summary Create a transaction
// @Description Record an income or expense entry for the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or TRANSACTION_002/003/004/005"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(userID, &req)
	if err != nil {
		return h.mapMutationError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction created successfully",
	})
}

// List returns the user's transactions, optionally filtered by date range,
// type and category
// @Summary List transactions
// @Description List the authenticated user's transactions ordered by date. Optional filters: start_date, end_date (YYYY-MM-DD, inclusive), type, category.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param type query string false "Transaction type (income or expense)"
// @Param category query string false "Expense category"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction listing"
// @Failure 400 {object} errors.ErrorResponse "Invalid date range - VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
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

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		Count:        len(responses),
	})
}

// Update replaces the mutable fields of a transaction
// @Summary Update a transaction
// @Description Replace the type, name, amount, category and date of one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Updated transaction fields"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Transaction not found - TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Update(userID, transactionID, &req)
	if err != nil {
		return h.mapMutationError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction updated successfully",
	})
}

// Delete removes a transaction
// @Summary Delete a transaction
// @Description Delete one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{message=string} "Transaction deleted"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Transaction not found - TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		return h.mapMutationError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// mapMutationError maps transaction service errors onto the error code
// registry. Ownership failures are reported as not found so transaction IDs
// are not probeable across users.
func (h *TransactionHandler) mapMutationError(c echo.Context, err error) error {
	switch err {
	case services.ErrTransactionNotFound, services.ErrNotTransactionOwner:
		return SendError(c, errors.TransactionNotFound)
	case services.ErrExpenseNeedsCategory:
		return SendError(c, errors.TransactionInvalidCategory)
	case models.ErrInvalidAmount:
		return SendError(c, errors.TransactionInvalidAmount)
	case models.ErrInvalidCategory:
		return SendError(c, errors.TransactionInvalidCategory)
	case models.ErrNameTooShort:
		return SendError(c, errors.TransactionNameTooShort)
	case models.ErrInvalidTransactionType:
		return SendError(c, errors.TransactionInvalidType)
	default:
		return SendSystemError(c, err)
	}
}

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:       transaction.ID.String(),
		Type:     transaction.Type,
		Name:     transaction.Name,
		Amount:   transaction.Amount.StringFixed(2),
		Category: transaction.Category,
		Date:     transaction.Date,
	}
}
