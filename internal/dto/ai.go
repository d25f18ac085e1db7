package dto

// AI Request DTOs

// AISummaryRequest selects the date range the summary is computed over.
// Dates are YYYY-MM-DD; both are optional.
type AISummaryRequest struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// SuggestCategoryRequest asks for a category suggestion for a transaction name
type SuggestCategoryRequest struct {
	TransactionName string `json:"transactionName" validate:"required"`
}

// AI Response DTOs

// AISummaryResponse carries the generated summary plus the updated usage state
type AISummaryResponse struct {
	Summary     string          `json:"summary"`
	Suggestions []string        `json:"suggestions"`
	Usage       AIUsageResponse `json:"usage"`
}

// AIUsageResponse reports the monthly quota state
type AIUsageResponse struct {
	Month     string `json:"month"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

// SuggestCategoryResponse carries the suggested category, or null when the
// suggestion was skipped, superseded or failed
type SuggestCategoryResponse struct {
	Category *string `json:"category"`
}
