package services

import (
	"context"
	"io"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
)

// ImportSvcFacade drives the two-phase statement import: parse a document
// into candidates for preview, then reconcile confirmed candidates into the
// ledger. Dismissing the preview simply never calls ConfirmImport.
type ImportSvcFacade interface {
	// PreviewStatement extracts text from the uploaded document and asks the
	// language-model collaborator to parse it into candidates. No ledger
	// mutation happens here.
	PreviewStatement(ctx context.Context, filename string, file io.Reader) ([]dto.CandidateEntry, error)

	// ConfirmImport validates and deduplicates the candidates against the
	// ledger as it stands now, appends the survivors and returns them.
	ConfirmImport(ctx context.Context, username string, candidates []dto.CandidateEntry) ([]domain.Entry, error)
}

// TextExtractor is the document-text-extraction collaborator. It turns an
// uploaded PDF or CSV into plain text, failing for unreadable documents.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, file io.Reader) (string, error)
}

// StatementParser is the free-text-to-transactions collaborator, an external
// language-model call. Its output is best-effort and untrusted: fields may be
// missing or malformed, the call may fail outright, and latency is unbounded
// (the adapter enforces the configured timeout).
type StatementParser interface {
	ParseToCandidates(ctx context.Context, text string) ([]dto.CandidateEntry, error)
}

// InsightGenerator is the language-model collaborator behind the monthly
// analysis narrative.
type InsightGenerator interface {
	AnalyzeMonth(ctx context.Context, monthLabel string, entries []domain.Entry) (string, error)
}
