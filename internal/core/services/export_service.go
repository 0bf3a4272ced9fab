package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/utils"
)

// exportService renders a month's aggregate for download. It has no feedback
// into the data model; everything here is derived from the summary.
type exportService struct {
	summarySvc portssvc.SummarySvcFacade
}

// NewExportService creates the export service.
func NewExportService(summarySvc portssvc.SummarySvcFacade) portssvc.ExportSvcFacade {
	return &exportService{summarySvc: summarySvc}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// MonthCSV renders one row per entry of the aggregated month. Column order
// follows the original export: date, description, category, kind, amount,
// status.
func (s *exportService) MonthCSV(ctx context.Context, username string, year int, month int) ([]byte, error) {
	summary, err := s.summarySvc.MonthSummary(ctx, username, year, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Data", "Descrição", "Categoria", "Tipo", "Valor", "Status"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, entry := range summary.Entries {
		row := []string{
			entry.OccursOn.String(),
			entry.Description,
			entry.Category,
			string(entry.Kind),
			entry.Amount.String(),
			string(entry.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// MonthReport renders the plain-text monthly report: totals first, then the
// category breakdown, then the entries.
func (s *exportService) MonthReport(ctx context.Context, username string, year int, month int) (string, error) {
	summary, err := s.summarySvc.MonthSummary(ctx, username, year, month)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "K3 Finance — Relatório Mensal — %s\n\n", utils.MonthLabel(year, time.Month(month)))
	fmt.Fprintf(&b, "Receitas: %s\n", utils.FormatMoney(summary.Income))
	fmt.Fprintf(&b, "Despesas: %s\n", utils.FormatMoney(summary.Expense))
	fmt.Fprintf(&b, "Saldo:    %s\n", utils.FormatMoney(summary.Balance))

	if len(summary.ByCategory) > 0 {
		b.WriteString("\nDespesas por categoria:\n")
		for _, row := range summary.ByCategory {
			fmt.Fprintf(&b, "  %s: %s\n", row.Category, utils.FormatMoney(row.Total))
		}
	}

	if len(summary.Entries) > 0 {
		b.WriteString("\nLançamentos:\n")
		for _, entry := range summary.Entries {
			fmt.Fprintf(&b, "  %s  %-10s %s — %s (%s)\n",
				entry.OccursOn.String(),
				string(entry.Kind),
				utils.FormatMoney(entry.Amount),
				entry.Description,
				string(entry.Status),
			)
		}
	}

	return b.String(), nil
}
