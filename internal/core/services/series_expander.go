package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
)

// ExpandTemplate materializes one user-submitted template into its dated
// series of ledger entries. Single mode yields exactly one entry on the start
// date; installment mode yields one entry per installment, one month apart;
// fixed mode yields a bounded batch per frequency (12 weekly, 12 monthly, 2
// yearly). Every generated entry gets a fresh id and pending status.
//
// The template is assumed valid: non-empty description, non-negative amount,
// a real date. Callers validate before invoking.
func ExpandTemplate(tpl domain.EntryTemplate) []domain.Entry {
	count := 1
	switch tpl.Mode.Kind {
	case domain.SeriesInstallment:
		count = tpl.Mode.Installments
	case domain.SeriesFixed:
		count = tpl.Mode.Frequency.Occurrences()
	}

	entries := make([]domain.Entry, 0, count)
	for i := 0; i < count; i++ {
		entry := domain.Entry{
			EntryID:     uuid.NewString(),
			Kind:        tpl.Kind,
			Category:    tpl.Category,
			Description: tpl.Description,
			// Each installment carries the FULL template amount. The plan
			// labels a series of same-amount charges; it does not split one
			// total across them. Confirmed source behavior, not a bug.
			Amount:     tpl.Amount,
			OccursOn:   occurrenceDate(tpl, i),
			Status:     domain.StatusPending,
			SeriesKind: tpl.Mode.Kind,
		}

		switch tpl.Mode.Kind {
		case domain.SeriesFixed:
			entry.IsRecurring = true
		case domain.SeriesInstallment:
			if count > 1 {
				entry.Description = fmt.Sprintf("%s (%d/%d)", tpl.Description, i+1, count)
				entry.InstallmentCurrent = i + 1
				entry.InstallmentTotal = count
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

// occurrenceDate computes entry i's date. Month and year steps go through
// AddDate, whose end-of-month normalization (Jan 31 + 1 month = Mar 2/3)
// matches the roll-over the original client got from Date.setMonth.
func occurrenceDate(tpl domain.EntryTemplate, i int) domain.Date {
	if tpl.Mode.Kind == domain.SeriesFixed {
		switch tpl.Mode.Frequency {
		case domain.Weekly:
			return tpl.StartDate.AddDate(0, 0, 7*i)
		case domain.Yearly:
			return tpl.StartDate.AddDate(i, 0, 0)
		}
	}
	return tpl.StartDate.AddDate(0, i, 0)
}
