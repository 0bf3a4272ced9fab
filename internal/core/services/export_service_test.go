package services_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/core/services"
)

func exportRecord() *domain.UserRecord {
	return &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234"},
		Entries: []domain.Entry{
			entryOn("2024-03-01", domain.Income, "💰 Salário", 5000),
			entryOn("2024-03-10", domain.Expense, "🍽️ Alimentação", 350),
		},
	}
}

func TestExportService_MonthCSV(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRecordRepository)
	mockRepo.On("Load", ctx, "ana").Return(exportRecord(), nil).Once()
	svc := services.NewExportService(services.NewSummaryService(mockRepo))

	data, err := svc.MonthCSV(ctx, "ana", 2024, 3)

	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Data", "Descrição", "Categoria", "Tipo", "Valor", "Status"}, rows[0])
	// Rows follow the summary order: date descending.
	assert.Equal(t, []string{"2024-03-10", "🍽️ Alimentação", "🍽️ Alimentação", "expense", "350", "pending"}, rows[1])
	assert.Equal(t, "2024-03-01", rows[2][0])
	assert.Equal(t, "income", rows[2][3])
}

func TestExportService_MonthReport(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRecordRepository)
	mockRepo.On("Load", ctx, "ana").Return(exportRecord(), nil).Once()
	svc := services.NewExportService(services.NewSummaryService(mockRepo))

	report, err := svc.MonthReport(ctx, "ana", 2024, 3)

	require.NoError(t, err)
	assert.Contains(t, report, "março de 2024")
	assert.Contains(t, report, "Receitas: R$ 5000,00")
	assert.Contains(t, report, "Despesas: R$ 350,00")
	assert.Contains(t, report, "Saldo:    R$ 4650,00")
	assert.Contains(t, report, "🍽️ Alimentação: R$ 350,00")
}

func TestExportService_EmptyMonthStillRendersTotals(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRecordRepository)
	mockRepo.On("Load", ctx, "ana").Return(&domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234"},
		Entries: []domain.Entry{},
	}, nil).Once()
	svc := services.NewExportService(services.NewSummaryService(mockRepo))

	report, err := svc.MonthReport(ctx, "ana", 2024, 3)

	require.NoError(t, err)
	assert.Contains(t, report, "Saldo:    R$ 0,00")
	assert.NotContains(t, report, "Lançamentos:")
}
