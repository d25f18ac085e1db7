package validation

import (
	"reflect"
	"strings"

	"ecodin/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("savings_goal", validateSavingsGoal)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateExpenseCategory validates that the category is a member of the
// expense category enumeration. The income sentinel "Renda" is rejected
// here: it is assigned server side, never submitted.
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidExpenseCategory(fl.Field().String())
}

// validatePositiveAmount validates that a decimal string parses and is
// strictly greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

// validateSavingsGoal validates that a decimal string parses and is at least 1
func validateSavingsGoal(fl validator.FieldLevel) bool {
	goal, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return goal.GreaterThanOrEqual(decimal.NewFromInt(1))
}
