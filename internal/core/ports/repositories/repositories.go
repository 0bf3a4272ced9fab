package repositories

import (
	"context"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
)

// UserRecordRepository is the persistence collaborator: one record per
// username holding the full profile + ledger, with whole-record overwrite
// semantics. Every mutation is a read-modify-write of the complete record.
type UserRecordRepository interface {
	// Create stores a brand-new record. Returns apperrors.ErrDuplicate if the
	// username is already taken.
	Create(ctx context.Context, username string, record domain.UserRecord) error

	// Load returns the full record for a username, or apperrors.ErrNotFound.
	Load(ctx context.Context, username string) (*domain.UserRecord, error)

	// Save overwrites the full record for an existing username.
	Save(ctx context.Context, username string, record domain.UserRecord) error
}
