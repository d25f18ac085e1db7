package dto

// Report Response DTOs

// TotalsResponse holds the aggregate figures for the selected period
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// CategoryTotalResponse is one entry of the expense breakdown, ordered by
// descending total for display
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// SummaryReportResponse is the dashboard payload: totals, breakdown and
// savings progress for the selected date range
type SummaryReportResponse struct {
	Totals          TotalsResponse          `json:"totals"`
	ByCategory      []CategoryTotalResponse `json:"byCategory"`
	SavingsGoal     string                  `json:"savingsGoal"`
	SavingsProgress string                  `json:"savingsProgress"`
}

// MonthlyPointResponse is one month of the trends series
type MonthlyPointResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// TrendsReportResponse is the month-bucketed income/expense series, ordered
// ascending by month key
type TrendsReportResponse struct {
	Series []MonthlyPointResponse `json:"series"`
}
