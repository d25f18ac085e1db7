package models

import "time"

// TransactionFilters narrows a per-user transaction listing. Date bounds are
// inclusive on both ends; either side may be nil for a one-sided range, and a
// fully empty filter returns everything.
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Category  string
}

// IsEmpty returns true when no filter criteria are set
func (f *TransactionFilters) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.Type == "" && f.Category == ""
}
