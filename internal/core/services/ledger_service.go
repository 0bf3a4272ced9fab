package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
)

// ledgerService owns all ledger mutations. Each one is a read-modify-write
// of the user's full persisted record.
type ledgerService struct {
	recordRepo portsrepo.UserRecordRepository
}

// NewLedgerService creates the ledger service.
func NewLedgerService(recordRepo portsrepo.UserRecordRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{recordRepo: recordRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// parseAmount normalizes form-style decimal commas and parses a non-negative
// monetary amount.
func parseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return amount, nil
}

// parseDate parses a calendar date in wire format.
func parseDate(raw string) (domain.Date, error) {
	date, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: date %q is not a valid YYYY-MM-DD date", apperrors.ErrValidation, raw)
	}
	return date, nil
}

// templateFromRequest validates a create request and builds the expander
// template. Invalid submissions are rejected here; the expander itself never
// runs on bad input.
func templateFromRequest(req dto.CreateEntryRequest) (domain.EntryTemplate, error) {
	kind := domain.EntryKind(req.Kind)
	if !kind.Valid() {
		return domain.EntryTemplate{}, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, req.Kind)
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.EntryTemplate{}, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return domain.EntryTemplate{}, err
	}
	startDate, err := parseDate(req.Date)
	if err != nil {
		return domain.EntryTemplate{}, err
	}

	mode := domain.SeriesMode{Kind: domain.SeriesSingle}
	if req.IsFixed {
		frequency := domain.Frequency(req.Frequency)
		if frequency == "" {
			frequency = domain.Monthly
		}
		if frequency.Occurrences() == 0 {
			return domain.EntryTemplate{}, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, req.Frequency)
		}
		mode = domain.SeriesMode{Kind: domain.SeriesFixed, Frequency: frequency}
	} else if req.Installments > 1 {
		if req.Installments > domain.MaxInstallments {
			return domain.EntryTemplate{}, fmt.Errorf("%w: installments must be at most %d", apperrors.ErrValidation, domain.MaxInstallments)
		}
		mode = domain.SeriesMode{Kind: domain.SeriesInstallment, Installments: req.Installments}
	}

	return domain.EntryTemplate{
		Kind:        kind,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
		StartDate:   startDate,
		Mode:        mode,
	}, nil
}

// CreateEntries expands the template and appends the resulting series.
func (s *ledgerService) CreateEntries(ctx context.Context, username string, req dto.CreateEntryRequest) ([]domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tpl, err := templateFromRequest(req)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	entries := ExpandTemplate(tpl)
	record.Entries = append(record.Entries, entries...)

	if err := s.recordRepo.Save(ctx, username, *record); err != nil {
		return nil, fmt.Errorf("failed to save user record: %w", err)
	}

	logger.Info("Entries created",
		slog.Int("count", len(entries)),
		slog.String("series_kind", string(tpl.Mode.Kind)),
	)
	return entries, nil
}

// UpdateEntry replaces one entry in place. The entry keeps its id, status and
// series tags; kind, category, amount, description and date are re-derived
// from the edited fields. A trailing installment marker in the submitted text
// is stripped so the base description stays undecorated.
func (s *ledgerService) UpdateEntry(ctx context.Context, username string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	kind := domain.EntryKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, req.Kind)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	occursOn, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	idx := findEntry(record.Entries, entryID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}

	entry := record.Entries[idx]
	entry.Kind = kind
	entry.Category = req.Category
	entry.Description = domain.StripInstallmentSuffix(strings.TrimSpace(req.Description))
	entry.Amount = amount
	entry.OccursOn = occursOn
	record.Entries[idx] = entry

	if err := s.recordRepo.Save(ctx, username, *record); err != nil {
		return nil, fmt.Errorf("failed to save user record: %w", err)
	}
	return &entry, nil
}

// DeleteEntry removes one entry by id.
func (s *ledgerService) DeleteEntry(ctx context.Context, username string, entryID string) error {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to load user record: %w", err)
	}

	idx := findEntry(record.Entries, entryID)
	if idx < 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}

	record.Entries = append(record.Entries[:idx], record.Entries[idx+1:]...)
	if err := s.recordRepo.Save(ctx, username, *record); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	return nil
}

// ToggleStatus flips an entry between paid and pending. An overdue entry
// toggles to paid.
func (s *ledgerService) ToggleStatus(ctx context.Context, username string, entryID string) (*domain.Entry, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	idx := findEntry(record.Entries, entryID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}

	entry := record.Entries[idx]
	if entry.Status == domain.StatusPaid {
		entry.Status = domain.StatusPending
	} else {
		entry.Status = domain.StatusPaid
	}
	record.Entries[idx] = entry

	if err := s.recordRepo.Save(ctx, username, *record); err != nil {
		return nil, fmt.Errorf("failed to save user record: %w", err)
	}
	return &entry, nil
}

// ListEntries returns the whole ledger in insertion order.
func (s *ledgerService) ListEntries(ctx context.Context, username string) ([]domain.Entry, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	return record.Entries, nil
}

func findEntry(entries []domain.Entry, entryID string) int {
	for i := range entries {
		if entries[i].EntryID == entryID {
			return i
		}
	}
	return -1
}
