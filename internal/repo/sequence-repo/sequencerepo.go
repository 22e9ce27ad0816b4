package sequencerepo

import (
	"context"

	"github.com/sokha-dev/staffportal/internal/pg"
	"go.uber.org/zap"
)

// RequestSequence is the shared counter behind public request identifiers.
// Reimbursements and payments draw from the same sequence.
const RequestSequence = "request_id"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Next returns the next value of the named sequence. The upsert-increment runs
// as one statement, so concurrent callers never share a value and a missing
// sequence starts at 0 and yields 1. When called inside a transaction the
// increment rolls back with it.
func (r *Repository) Next(ctx context.Context, name string) (int, error) {
	query := `
        INSERT INTO sequences (name, value)
        VALUES ($1, 1)
        ON CONFLICT (name) DO UPDATE
        SET value = sequences.value + 1
        RETURNING value
    `
	var value int
	err := r.db.QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		zap.L().Error("can't advance sequence", zap.String("name", name), zap.Error(err))
		return 0, err
	}
	return value, nil
}

// Reset puts the named sequence back to zero. Administrative use only; issued
// identifiers are never reclaimed by the running system.
func (r *Repository) Reset(ctx context.Context, name string) error {
	query := `
        UPDATE sequences
        SET value = 0
        WHERE name = $1
    `
	_, err := r.db.Exec(ctx, query, name)
	if err != nil {
		zap.L().Error("can't reset sequence", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
