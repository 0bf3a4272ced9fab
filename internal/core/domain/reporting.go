package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the expense-by-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthSummary is the computed aggregate for one calendar month: the month's
// entries sorted most-recent-first, the income/expense/balance totals and the
// expense-only category breakdown sorted by total descending.
type MonthSummary struct {
	Entries    []Entry         `json:"entries"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Balance    decimal.Decimal `json:"balance"`
	ByCategory []CategoryTotal `json:"byCategory"`
}
