package requestrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/pg"
	sequencerepo "github.com/sokha-dev/staffportal/internal/repo/sequence-repo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=requestrepo.go -destination=requestrepo_mock.go -package=requestrepo

// Sequences issues the monotonically increasing values behind public request
// identifiers.
type Sequences interface {
	Next(ctx context.Context, name string) (int, error)
}

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	sequences Sequences
}

func New(db pg.Database, txManager pg.TXManager, sequences Sequences) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		sequences: sequences,
	}
}

const requestColumns = "id, request_id, type, staff_name, date, description, purpose, amount, status, proof_filename, created_at, approved_date, paid_date"

func buildWhere(f domain.RequestFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.StaffName != "" {
		add("staff_name = $%d", f.StaffName)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if !f.Since.IsZero() {
		add("created_at >= $%d", f.Since)
	}
	if f.ProofFilename != "" {
		add("proof_filename = $%d", f.ProofFilename)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var req domain.Request
	err := row.Scan(
		&req.ID, &req.RequestID, &req.Type, &req.StaffName, &req.Date,
		&req.Description, &req.Purpose, &req.Amount, &req.Status,
		&req.ProofFilename, &req.CreatedAt, &req.ApprovedDate, &req.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Save allocates the next public identifier and inserts the request in one
// transaction. A failed insert rolls the counter increment back, so an
// identifier is only ever burned together with a stored record.
func (r *Repository) Save(ctx context.Context, req *domain.Request) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		seq, err := r.sequences.Next(ctx, sequencerepo.RequestSequence)
		if err != nil {
			return err
		}
		req.RequestID = domain.FormatRequestID(seq)

		query := `
        INSERT INTO requests (request_id, type, staff_name, date, description, purpose, amount, status, proof_filename, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
		err = r.db.QueryRow(ctx, query,
			req.RequestID, req.Type, req.StaffName, req.Date, req.Description,
			req.Purpose, req.Amount, req.Status, req.ProofFilename, req.CreatedAt,
		).Scan(&req.ID)
		if err != nil {
			zap.L().Error("can't save request", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindByKey(ctx context.Context, key domain.RequestKey) (*domain.Request, error) {
	var query string
	var arg any
	if key.IsPublic() {
		query = "SELECT " + requestColumns + " FROM requests WHERE request_id = $1"
		arg = key.Public
	} else {
		query = "SELECT " + requestColumns + " FROM requests WHERE id = $1"
		arg = key.Internal
	}

	req, err := scanRequest(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) Find(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + requestColumns + " FROM requests" + where + " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// CountPending returns per-type counts of pending requests created at or after
// since.
func (r *Repository) CountPending(ctx context.Context, since time.Time) (*domain.PendingSummary, error) {
	query := `
        SELECT type, COUNT(*)
        FROM requests
        WHERE status = $1 AND created_at >= $2
        GROUP BY type
    `
	rows, err := r.db.Query(ctx, query, domain.StatusPending, since)
	if err != nil {
		zap.L().Error("can't count pending requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	summary := &domain.PendingSummary{}
	for rows.Next() {
		var reqType domain.RequestType
		var count int
		if err := rows.Scan(&reqType, &count); err != nil {
			zap.L().Error("can't scan pending count row", zap.Error(err))
			return nil, err
		}
		switch reqType {
		case domain.TypeReimbursement:
			summary.ReimbursementPending = count
		case domain.TypePayment:
			summary.PaymentPending = count
		}
	}
	return summary, nil
}

// UpdateStatus applies a status transition as a single conditional update, so
// no reader ever observes a request with a status and date stamps that
// disagree. The set clauses mirror domain.ApplyTransition: Paid backfills the
// approval stamp only when missing, Approved clears any paid stamp, Pending
// and Rejected clear both.
func (r *Repository) UpdateStatus(ctx context.Context, key domain.RequestKey, status domain.Status, now time.Time) error {
	var set string
	var args []any
	switch status {
	case domain.StatusPaid:
		set = "status = $1, paid_date = $2, approved_date = COALESCE(approved_date, $2)"
		args = []any{status, now}
	case domain.StatusApproved:
		set = "status = $1, approved_date = $2, paid_date = NULL"
		args = []any{status, now}
	case domain.StatusPending, domain.StatusRejected:
		set = "status = $1, approved_date = NULL, paid_date = NULL"
		args = []any{status}
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	var where string
	if key.IsPublic() {
		where = fmt.Sprintf("request_id = $%d", len(args)+1)
		args = append(args, key.Public)
	} else {
		where = fmt.Sprintf("id = $%d", len(args)+1)
		args = append(args, key.Internal)
	}

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "UPDATE requests SET "+set+" WHERE "+where, args...)
		if err != nil {
			zap.L().Error("failed to update request status", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: request %v", domain.ErrNotFound, key)
		}
		return nil
	})
}

// ProofExists reports whether any request references the stored attachment
// name.
func (r *Repository) ProofExists(ctx context.Context, filename string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM requests WHERE proof_filename = $1)
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, filename).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check proof reference", zap.Error(err))
		return false, err
	}
	return exists, nil
}
