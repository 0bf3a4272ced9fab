package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/core/services"
)

func entryOn(date string, kind domain.EntryKind, category string, amount int64) domain.Entry {
	occursOn, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return domain.Entry{
		EntryID:     date + "-" + category,
		Kind:        kind,
		Category:    category,
		Description: category,
		Amount:      decimal.NewFromInt(amount),
		OccursOn:    occursOn,
		Status:      domain.StatusPending,
		SeriesKind:  domain.SeriesSingle,
	}
}

func TestAggregateMonth_Totals(t *testing.T) {
	entries := []domain.Entry{
		entryOn("2024-03-01", domain.Income, "💰 Salário", 500),
		entryOn("2024-03-10", domain.Expense, "🍽️ Alimentação", 100),
		entryOn("2024-04-01", domain.Expense, "🍽️ Alimentação", 999),
	}

	summary := services.AggregateMonth(entries, 2024, time.March)

	require.Len(t, summary.Entries, 2)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(400)))
	require.Len(t, summary.ByCategory, 1)
	assert.Equal(t, "🍽️ Alimentação", summary.ByCategory[0].Category)
	assert.True(t, summary.ByCategory[0].Total.Equal(decimal.NewFromInt(100)))
}

func TestAggregateMonth_FiltersExactMonth(t *testing.T) {
	entries := []domain.Entry{
		entryOn("2024-02-29", domain.Expense, "🧾 Contas", 10),
		entryOn("2024-03-01", domain.Expense, "🧾 Contas", 20),
		entryOn("2024-03-31", domain.Expense, "🧾 Contas", 30),
		entryOn("2024-04-01", domain.Expense, "🧾 Contas", 40),
		entryOn("2023-03-15", domain.Expense, "🧾 Contas", 50),
	}

	summary := services.AggregateMonth(entries, 2024, time.March)

	require.Len(t, summary.Entries, 2)
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(50)))
}

func TestAggregateMonth_SortsDateDescendingStable(t *testing.T) {
	first := entryOn("2024-03-10", domain.Expense, "🧾 Contas", 1)
	second := entryOn("2024-03-10", domain.Expense, "🍽️ Alimentação", 2)
	older := entryOn("2024-03-05", domain.Expense, "🚗 Transporte", 3)
	newest := entryOn("2024-03-20", domain.Income, "💰 Salário", 4)

	summary := services.AggregateMonth([]domain.Entry{first, second, older, newest}, 2024, time.March)

	require.Len(t, summary.Entries, 4)
	assert.Equal(t, newest.EntryID, summary.Entries[0].EntryID)
	// Same-date entries keep their original relative order.
	assert.Equal(t, first.EntryID, summary.Entries[1].EntryID)
	assert.Equal(t, second.EntryID, summary.Entries[2].EntryID)
	assert.Equal(t, older.EntryID, summary.Entries[3].EntryID)
}

func TestAggregateMonth_CategoryBreakdownExpensesOnly(t *testing.T) {
	entries := []domain.Entry{
		entryOn("2024-03-01", domain.Income, "💰 Salário", 5000),
		entryOn("2024-03-02", domain.Expense, "🍽️ Alimentação", 200),
		entryOn("2024-03-03", domain.Expense, "🏠 Moradia", 1200),
		entryOn("2024-03-04", domain.Expense, "🍽️ Alimentação", 100),
	}

	summary := services.AggregateMonth(entries, 2024, time.March)

	require.Len(t, summary.ByCategory, 2)
	assert.Equal(t, "🏠 Moradia", summary.ByCategory[0].Category)
	assert.True(t, summary.ByCategory[0].Total.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "🍽️ Alimentação", summary.ByCategory[1].Category)
	assert.True(t, summary.ByCategory[1].Total.Equal(decimal.NewFromInt(300)))

	breakdownSum := decimal.Zero
	for _, row := range summary.ByCategory {
		breakdownSum = breakdownSum.Add(row.Total)
	}
	assert.True(t, breakdownSum.Equal(summary.Expense))
}

func TestAggregateMonth_EmptyMonth(t *testing.T) {
	summary := services.AggregateMonth(nil, 2024, time.March)

	assert.Empty(t, summary.Entries)
	assert.Empty(t, summary.ByCategory)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestSummaryService_MonthSummary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRecordRepository)
	svc := services.NewSummaryService(mockRepo)

	record := &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234"},
		Entries: []domain.Entry{
			entryOn("2024-03-01", domain.Income, "💰 Salário", 500),
			entryOn("2024-03-10", domain.Expense, "🍽️ Alimentação", 100),
		},
	}
	mockRepo.On("Load", ctx, "ana").Return(record, nil).Once()

	summary, err := svc.MonthSummary(ctx, "ana", 2024, 3)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(400)))
	mockRepo.AssertExpectations(t)
}
