// Package extract implements the document-text-extraction collaborator:
// uploaded PDF statements go through a PDF text extractor, anything else is
// treated as delimited plain text and read through unchanged.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
)

// Extractor turns uploaded bank statements into plain text.
type Extractor struct{}

// NewExtractor creates the extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var _ portssvc.TextExtractor = (*Extractor)(nil)

// ExtractText reads the full upload and extracts its text. Unreadable
// documents fail with an error; the import flow surfaces that and aborts
// with no ledger mutation.
func (e *Extractor) ExtractText(_ context.Context, filename string, file io.Reader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return extractPDF(data)
	}
	return string(data), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}
