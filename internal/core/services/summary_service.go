package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
)

// summaryService recomputes the monthly aggregate from the authoritative
// ledger on every call. There is no cached aggregation state to invalidate.
type summaryService struct {
	recordRepo portsrepo.UserRecordRepository
}

// NewSummaryService creates the summary service.
func NewSummaryService(recordRepo portsrepo.UserRecordRepository) portssvc.SummarySvcFacade {
	return &summaryService{recordRepo: recordRepo}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// MonthSummary loads the ledger and folds it into the target month's
// aggregate.
func (s *summaryService) MonthSummary(ctx context.Context, username string, year int, month int) (*domain.MonthSummary, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	summary := AggregateMonth(record.Entries, year, time.Month(month))
	return &summary, nil
}

// AggregateMonth filters a ledger to one calendar month and computes the
// income/expense/balance totals and the expense-only category breakdown.
// Entries come back sorted by date descending, ties kept in insertion order;
// the breakdown is sorted by total descending.
func AggregateMonth(entries []domain.Entry, year int, month time.Month) domain.MonthSummary {
	filtered := make([]domain.Entry, 0)
	for _, entry := range entries {
		if entry.SameCalendarMonth(year, month) {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OccursOn.After(filtered[j].OccursOn)
	})

	income := decimal.Zero
	expense := decimal.Zero
	totals := make(map[string]decimal.Decimal)
	categories := make([]string, 0)

	for _, entry := range filtered {
		switch entry.Kind {
		case domain.Income:
			income = income.Add(entry.Amount)
		case domain.Expense:
			expense = expense.Add(entry.Amount)
			if _, seen := totals[entry.Category]; !seen {
				categories = append(categories, entry.Category)
			}
			totals[entry.Category] = totals[entry.Category].Add(entry.Amount)
		}
	}

	byCategory := make([]domain.CategoryTotal, 0, len(categories))
	for _, category := range categories {
		byCategory = append(byCategory, domain.CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Total.GreaterThan(byCategory[j].Total)
	})

	return domain.MonthSummary{
		Entries:    filtered,
		Income:     income,
		Expense:    expense,
		Balance:    income.Sub(expense),
		ByCategory: byCategory,
	}
}
