package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates whether a ledger entry is money in or money out.
type EntryKind string

const (
	Income  EntryKind = "income"
	Expense EntryKind = "expense"
)

// Valid reports whether k is one of the two known kinds.
func (k EntryKind) Valid() bool {
	return k == Income || k == Expense
}

// EntryStatus is the settlement state of an entry.
type EntryStatus string

const (
	StatusPending EntryStatus = "pending"
	StatusPaid    EntryStatus = "paid"
	StatusOverdue EntryStatus = "overdue"
)

// SeriesKind is the explicit discriminant for how an entry was produced.
// Legacy records carry it only implicitly via the installment pair and the
// recurring flag; InferSeriesKind reconstructs it once at load time.
type SeriesKind string

const (
	SeriesSingle      SeriesKind = "single"
	SeriesInstallment SeriesKind = "installment"
	SeriesFixed       SeriesKind = "fixed"
)

// Entry is one ledger record, scoped to a single user.
// Amount is always non-negative; direction is carried by Kind.
type Entry struct {
	EntryID     string          `json:"id"`
	Kind        EntryKind       `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	OccursOn    Date            `json:"date"`
	Status      EntryStatus     `json:"status"`
	SeriesKind  SeriesKind      `json:"seriesKind,omitempty"`

	// Legacy-shaped series fields, kept alongside SeriesKind so records
	// round-trip with data written by the original client.
	InstallmentCurrent int  `json:"installmentCurrent,omitempty"`
	InstallmentTotal   int  `json:"installmentTotal,omitempty"`
	IsRecurring        bool `json:"isRecurring,omitempty"`
}

// InferSeriesKind derives the discriminant for records persisted before the
// explicit tag existed.
func (e *Entry) InferSeriesKind() SeriesKind {
	if e.SeriesKind != "" {
		return e.SeriesKind
	}
	if e.IsRecurring {
		return SeriesFixed
	}
	if e.InstallmentTotal > 0 {
		return SeriesInstallment
	}
	return SeriesSingle
}

// SameCalendarMonth reports whether the entry occurs in the given year/month.
// Comparison is on the calendar date only.
func (e *Entry) SameCalendarMonth(year int, month time.Month) bool {
	return e.OccursOn.Year() == year && e.OccursOn.Month() == month
}

var installmentSuffixRe = regexp.MustCompile(`\s\(\d+/\d+\)$`)

// StripInstallmentSuffix removes a trailing " (n/m)" installment marker from
// a description so edits operate on the base text the user typed.
func StripInstallmentSuffix(description string) string {
	return installmentSuffixRe.ReplaceAllString(description, "")
}
