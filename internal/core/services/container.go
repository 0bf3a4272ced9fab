package services

import (
	"time"

	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
)

// Collaborators groups the external collaborator implementations the services
// depend on: document text extraction and the language-model calls.
type Collaborators struct {
	Extractor portssvc.TextExtractor
	Parser    portssvc.StatementParser
	Insights  portssvc.InsightGenerator
}

// NewContainer wires all services with their dependencies. aiTimeout bounds
// every language-model round trip.
func NewContainer(recordRepo portsrepo.UserRecordRepository, collab Collaborators, aiTimeout time.Duration) *portssvc.ServiceContainer {
	summary := NewSummaryService(recordRepo)
	return &portssvc.ServiceContainer{
		User:    NewUserService(recordRepo),
		Ledger:  NewLedgerService(recordRepo),
		Summary: summary,
		Import:  NewImportService(recordRepo, collab.Extractor, collab.Parser, aiTimeout),
		Export:  NewExportService(summary),
		Insight: NewInsightService(recordRepo, collab.Insights, aiTimeout),
	}
}
