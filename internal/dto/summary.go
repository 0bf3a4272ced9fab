package dto

// CategoryTotalResponse is one row of the expense breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// MonthSummaryResponse is the aggregate for one calendar month.
type MonthSummaryResponse struct {
	Year       int                     `json:"year"`
	Month      int                     `json:"month"`
	Income     string                  `json:"income"`
	Expense    string                  `json:"expense"`
	Balance    string                  `json:"balance"`
	ByCategory []CategoryTotalResponse `json:"byCategory"`
	Entries    []EntryResponse         `json:"entries"`
}

// InsightResponse is the language-model narrative for one month.
type InsightResponse struct {
	Insight string `json:"insight"`
}
