package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
)

// PgxUserRecordRepository stores one JSONB record per username: the full
// profile + ledger, overwritten whole on every save. This mirrors the
// key-value semantics the rest of the system is written against; there is
// no partial-update protocol.
type PgxUserRecordRepository struct {
	db *pgxpool.Pool
}

// NewPgxUserRecordRepository creates the repository.
func NewPgxUserRecordRepository(db *pgxpool.Pool) portsrepo.UserRecordRepository {
	return &PgxUserRecordRepository{db: db}
}

var _ portsrepo.UserRecordRepository = (*PgxUserRecordRepository)(nil)

const uniqueViolationCode = "23505"

// Create inserts a brand-new record, failing with ErrDuplicate when the
// username is taken.
func (r *PgxUserRecordRepository) Create(ctx context.Context, username string, record domain.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	query := `
        INSERT INTO user_records (username, data, created_at, updated_at)
        VALUES ($1, $2, now(), now());
    `
	_, err = r.db.Exec(ctx, query, username, data)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, username)
		}
		return fmt.Errorf("failed to create user record: %w", err)
	}
	return nil
}

// Load returns the full record for a username.
func (r *PgxUserRecordRepository) Load(ctx context.Context, username string) (*domain.UserRecord, error) {
	query := `SELECT data FROM user_records WHERE username = $1;`

	var data []byte
	err := r.db.QueryRow(ctx, query, username).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: username %q", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	var record domain.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user record: %w", err)
	}

	// Legacy records carry the series discriminant only implicitly.
	for i := range record.Entries {
		record.Entries[i].SeriesKind = record.Entries[i].InferSeriesKind()
	}
	return &record, nil
}

// Save overwrites the full record for an existing username.
func (r *PgxUserRecordRepository) Save(ctx context.Context, username string, record domain.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	query := `
        UPDATE user_records SET data = $2, updated_at = now()
        WHERE username = $1;
    `
	tag, err := r.db.Exec(ctx, query, username, data)
	if err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: username %q", apperrors.ErrNotFound, username)
	}
	return nil
}
