package services

import (
	"context"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
)

// LedgerSvcFacade owns all ledger mutations: expanding a template into its
// series, in-place edits, deletion and status toggling. Every mutation
// rewrites the user's full persisted record.
type LedgerSvcFacade interface {
	// CreateEntries validates the request, expands it into its series and
	// appends the generated entries to the ledger.
	CreateEntries(ctx context.Context, username string, req dto.CreateEntryRequest) ([]domain.Entry, error)

	// UpdateEntry replaces one entry in place, preserving its id and status.
	// The installment suffix, if any, is stripped from the stored description
	// before the edited base text is applied.
	UpdateEntry(ctx context.Context, username string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes one entry by id.
	DeleteEntry(ctx context.Context, username string, entryID string) error

	// ToggleStatus flips an entry between paid and pending.
	ToggleStatus(ctx context.Context, username string, entryID string) (*domain.Entry, error)

	// ListEntries returns the whole ledger in insertion order.
	ListEntries(ctx context.Context, username string) ([]domain.Entry, error)
}

// SummarySvcFacade recomputes the monthly aggregate from the authoritative
// ledger. Pure over its inputs; no cached state.
type SummarySvcFacade interface {
	MonthSummary(ctx context.Context, username string, year int, month int) (*domain.MonthSummary, error)
}

// ExportSvcFacade renders a month's aggregate for download.
type ExportSvcFacade interface {
	// MonthCSV renders one row per entry of the month: date, description,
	// category, kind, amount, status.
	MonthCSV(ctx context.Context, username string, year int, month int) ([]byte, error)

	// MonthReport renders a plain-text report with totals and the category
	// breakdown.
	MonthReport(ctx context.Context, username string, year int, month int) (string, error)
}

// InsightSvcFacade produces the language-model narrative for one month.
type InsightSvcFacade interface {
	MonthInsight(ctx context.Context, username string, year int, month int) (string, error)
}
