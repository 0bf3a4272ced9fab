package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/utils"
)

// NoEntriesInsight is returned without a model call when the month is empty.
const NoEntriesInsight = "Não encontrei lançamentos neste mês para analisar."

// insightService produces the language-model narrative for one month.
type insightService struct {
	recordRepo portsrepo.UserRecordRepository
	generator  portssvc.InsightGenerator
	timeout    time.Duration
}

// NewInsightService creates the insight service. timeout bounds the model
// call.
func NewInsightService(recordRepo portsrepo.UserRecordRepository, generator portssvc.InsightGenerator, timeout time.Duration) portssvc.InsightSvcFacade {
	return &insightService{recordRepo: recordRepo, generator: generator, timeout: timeout}
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

// MonthInsight aggregates the month and asks the model for a short analysis.
func (s *insightService) MonthInsight(ctx context.Context, username string, year int, month int) (string, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to load user record: %w", err)
	}

	summary := AggregateMonth(record.Entries, year, time.Month(month))
	if len(summary.Entries) == 0 {
		return NoEntriesInsight, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	label := utils.MonthLabel(year, time.Month(month))
	insight, err := s.generator.AnalyzeMonth(genCtx, label, summary.Entries)
	if err != nil {
		return "", fmt.Errorf("failed to generate insight: %w", err)
	}
	return insight, nil
}
