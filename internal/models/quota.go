package models

// QuotaRecord is the per-user monthly AI-usage counter as read from the user
// row. A nil record means the user has never generated a summary.
type QuotaRecord struct {
	UsageMonth string `json:"usage_month"`
	UsageCount int    `json:"usage_count"`
}

// QuotaFromUser extracts the quota record embedded in the user row.
// Returns nil when no usage has ever been recorded.
func QuotaFromUser(u *User) *QuotaRecord {
	if u == nil || u.AIUsageMonth == "" {
		return nil
	}
	return &QuotaRecord{
		UsageMonth: u.AIUsageMonth,
		UsageCount: u.AIUsageCount,
	}
}

// EffectiveCount returns the usage count relative to the given month key.
/// A record from a different month counts as zero: the stored value is stale
// and will be lazily reset on the next write.
func (q *QuotaRecord) EffectiveCount(currentMonthKey string) int {
	if q == nil || q.UsageMonth != currentMonthKey {
		return 0
	}
	return q.UsageCount
}
