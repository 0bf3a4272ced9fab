package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/core/services"
)

func TestExpandTemplate_Single(t *testing.T) {
	tpl := domain.EntryTemplate{
		Kind:        domain.Expense,
		Category:    "🍽️ Alimentação",
		Description: "Mercado",
		Amount:      decimal.NewFromInt(150),
		StartDate:   domain.NewDate(2024, time.March, 5),
		Mode:        domain.SeriesMode{Kind: domain.SeriesSingle},
	}

	entries := services.ExpandTemplate(tpl)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, domain.Expense, entry.Kind)
	assert.Equal(t, "Mercado", entry.Description)
	assert.Equal(t, "2024-03-05", entry.OccursOn.String())
	assert.Equal(t, domain.StatusPending, entry.Status)
	assert.Equal(t, domain.SeriesSingle, entry.SeriesKind)
	assert.Zero(t, entry.InstallmentTotal)
	assert.False(t, entry.IsRecurring)
}

func TestExpandTemplate_Installments(t *testing.T) {
	tpl := domain.EntryTemplate{
		Kind:        domain.Expense,
		Category:    "🛍️ Compras",
		Description: "TV",
		Amount:      decimal.NewFromInt(300),
		StartDate:   domain.NewDate(2024, time.January, 10),
		Mode:        domain.SeriesMode{Kind: domain.SeriesInstallment, Installments: 3},
	}

	entries := services.ExpandTemplate(tpl)

	require.Len(t, entries, 3)
	wantDates := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	wantDescriptions := []string{"TV (1/3)", "TV (2/3)", "TV (3/3)"}
	for i, entry := range entries {
		assert.Equal(t, wantDates[i], entry.OccursOn.String())
		assert.Equal(t, wantDescriptions[i], entry.Description)
		// Each installment carries the full amount; the series is a plan of
		// same-amount charges, not a split of one total.
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(300)), "installment %d amount", i+1)
		assert.Equal(t, i+1, entry.InstallmentCurrent)
		assert.Equal(t, 3, entry.InstallmentTotal)
		assert.Equal(t, domain.SeriesInstallment, entry.SeriesKind)
		assert.Equal(t, domain.StatusPending, entry.Status)
	}
}

func TestExpandTemplate_SingleInstallmentHasNoSuffix(t *testing.T) {
	tpl := domain.EntryTemplate{
		Kind:        domain.Expense,
		Category:    "🧾 Contas",
		Description: "Luz",
		Amount:      decimal.NewFromInt(80),
		StartDate:   domain.NewDate(2024, time.May, 1),
		Mode:        domain.SeriesMode{Kind: domain.SeriesInstallment, Installments: 1},
	}

	entries := services.ExpandTemplate(tpl)

	require.Len(t, entries, 1)
	assert.Equal(t, "Luz", entries[0].Description)
	assert.Zero(t, entries[0].InstallmentCurrent)
	assert.Zero(t, entries[0].InstallmentTotal)
}

func TestExpandTemplate_FixedCardinality(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.Frequency
		wantCount int
	}{
		{name: "weekly yields 12", frequency: domain.Weekly, wantCount: 12},
		{name: "monthly yields 12", frequency: domain.Monthly, wantCount: 12},
		{name: "yearly yields 2", frequency: domain.Yearly, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := domain.EntryTemplate{
				Kind:        domain.Income,
				Category:    "💰 Salário",
				Description: "Salário",
				Amount:      decimal.NewFromInt(5000),
				StartDate:   domain.NewDate(2024, time.January, 5),
				Mode:        domain.SeriesMode{Kind: domain.SeriesFixed, Frequency: tt.frequency},
			}

			entries := services.ExpandTemplate(tpl)

			require.Len(t, entries, tt.wantCount)
			for _, entry := range entries {
				assert.Equal(t, "Salário", entry.Description)
				assert.True(t, entry.IsRecurring)
				assert.Equal(t, domain.SeriesFixed, entry.SeriesKind)
			}
		})
	}
}

func TestExpandTemplate_FixedDateProgression(t *testing.T) {
	start := domain.NewDate(2024, time.January, 15)

	weekly := services.ExpandTemplate(domain.EntryTemplate{
		Kind: domain.Expense, Description: "Feira", Amount: decimal.NewFromInt(50),
		StartDate: start,
		Mode:      domain.SeriesMode{Kind: domain.SeriesFixed, Frequency: domain.Weekly},
	})
	assert.Equal(t, "2024-01-15", weekly[0].OccursOn.String())
	assert.Equal(t, "2024-01-22", weekly[1].OccursOn.String())
	assert.Equal(t, "2024-04-01", weekly[11].OccursOn.String())

	monthly := services.ExpandTemplate(domain.EntryTemplate{
		Kind: domain.Expense, Description: "Aluguel", Amount: decimal.NewFromInt(1200),
		StartDate: start,
		Mode:      domain.SeriesMode{Kind: domain.SeriesFixed, Frequency: domain.Monthly},
	})
	assert.Equal(t, "2024-01-15", monthly[0].OccursOn.String())
	assert.Equal(t, "2024-02-15", monthly[1].OccursOn.String())
	assert.Equal(t, "2024-12-15", monthly[11].OccursOn.String())

	yearly := services.ExpandTemplate(domain.EntryTemplate{
		Kind: domain.Expense, Description: "IPVA", Amount: decimal.NewFromInt(900),
		StartDate: start,
		Mode:      domain.SeriesMode{Kind: domain.SeriesFixed, Frequency: domain.Yearly},
	})
	assert.Equal(t, "2024-01-15", yearly[0].OccursOn.String())
	assert.Equal(t, "2025-01-15", yearly[1].OccursOn.String())
}

func TestExpandTemplate_MonthEndRollsOver(t *testing.T) {
	tpl := domain.EntryTemplate{
		Kind:        domain.Expense,
		Category:    "🧾 Contas",
		Description: "Assinatura",
		Amount:      decimal.NewFromInt(40),
		StartDate:   domain.NewDate(2024, time.January, 31),
		Mode:        domain.SeriesMode{Kind: domain.SeriesInstallment, Installments: 3},
	}

	entries := services.ExpandTemplate(tpl)

	require.Len(t, entries, 3)
	// Jan 31 + 1 month normalizes past February's end, matching the
	// roll-over the original client produced.
	assert.Equal(t, "2024-01-31", entries[0].OccursOn.String())
	assert.Equal(t, "2024-03-02", entries[1].OccursOn.String())
	assert.Equal(t, "2024-03-31", entries[2].OccursOn.String())
}

func TestExpandTemplate_FreshIDs(t *testing.T) {
	tpl := domain.EntryTemplate{
		Kind:        domain.Expense,
		Description: "Curso",
		Amount:      decimal.NewFromInt(200),
		StartDate:   domain.NewDate(2024, time.June, 1),
		Mode:        domain.SeriesMode{Kind: domain.SeriesInstallment, Installments: 4},
	}

	entries := services.ExpandTemplate(tpl)

	ids := make(map[string]struct{})
	for _, entry := range entries {
		ids[entry.EntryID] = struct{}{}
	}
	assert.Len(t, ids, 4)
}
