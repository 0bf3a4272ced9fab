package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
)

// importService drives the two-phase statement import. Preview extracts and
// parses with no ledger access; confirmation reconciles against the ledger as
// it stands at that moment, so edits made while the parse was in flight are
// visible to the dedup check.
type importService struct {
	recordRepo   portsrepo.UserRecordRepository
	extractor    portssvc.TextExtractor
	parser       portssvc.StatementParser
	parseTimeout time.Duration
}

// NewImportService creates the import service. parseTimeout bounds the
// language-model call; the model API gives no latency guarantee of its own.
func NewImportService(recordRepo portsrepo.UserRecordRepository, extractor portssvc.TextExtractor, parser portssvc.StatementParser, parseTimeout time.Duration) portssvc.ImportSvcFacade {
	return &importService{
		recordRepo:   recordRepo,
		extractor:    extractor,
		parser:       parser,
		parseTimeout: parseTimeout,
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// PreviewStatement turns an uploaded document into unconfirmed candidates.
func (s *importService) PreviewStatement(ctx context.Context, filename string, file io.Reader) ([]dto.CandidateEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	text, err := s.extractor.ExtractText(ctx, filename, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrParseFailure, err)
	}
	if strings.TrimSpace(text) == "" {
		return []dto.CandidateEntry{}, nil
	}

	parseCtx, cancel := context.WithTimeout(ctx, s.parseTimeout)
	defer cancel()

	candidates, err := s.parser.ParseToCandidates(parseCtx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrParseFailure, err)
	}

	logger.Info("Statement parsed",
		slog.String("filename", filename),
		slog.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

// ConfirmImport reconciles the previewed candidates into the ledger and
// persists the accepted entries. Rejected candidates are dropped silently;
// the caller can compare offered vs accepted counts.
func (s *importService) ConfirmImport(ctx context.Context, username string, candidates []dto.CandidateEntry) ([]domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	accepted := Reconcile(record.Entries, candidates)
	if len(accepted) > 0 {
		record.Entries = append(record.Entries, accepted...)
		if err := s.recordRepo.Save(ctx, username, *record); err != nil {
			return nil, fmt.Errorf("failed to save user record: %w", err)
		}
	}

	logger.Info("Import confirmed",
		slog.Int("offered", len(candidates)),
		slog.Int("accepted", len(accepted)),
	)
	return accepted, nil
}

// Reconcile merges externally-parsed candidates into a ledger. A candidate
// survives when it has a numeric non-negative amount, a valid date, a
// description and a known kind, and no entry with the same exact
// (date, amount, description) triple exists in the ledger or earlier in the
// same batch. Survivors are materialized with a fresh id, the generic
// category bucket when none was extracted, and paid status: imported
// transactions are assumed already settled.
func Reconcile(existing []domain.Entry, candidates []dto.CandidateEntry) []domain.Entry {
	seen := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		seen[dedupKey(entry.OccursOn.String(), entry.Amount, entry.Description)] = struct{}{}
	}

	accepted := make([]domain.Entry, 0)
	for _, candidate := range candidates {
		kind := domain.EntryKind(candidate.Kind)
		if candidate.Amount == nil || candidate.Description == "" || !kind.Valid() {
			continue
		}
		amount := decimal.NewFromFloat(*candidate.Amount)
		if amount.IsNegative() {
			continue
		}
		occursOn, err := domain.ParseDate(candidate.Date)
		if err != nil {
			continue
		}

		key := dedupKey(candidate.Date, amount, candidate.Description)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		category := candidate.Category
		if category == "" {
			category = domain.DefaultCategory
		}

		accepted = append(accepted, domain.Entry{
			EntryID:     uuid.NewString(),
			Kind:        kind,
			Category:    category,
			Description: candidate.Description,
			Amount:      amount,
			OccursOn:    occursOn,
			Status:      domain.StatusPaid,
			SeriesKind:  domain.SeriesSingle,
		})
	}
	return accepted
}

func dedupKey(date string, amount decimal.Decimal, description string) string {
	return date + "\x00" + amount.String() + "\x00" + description
}
