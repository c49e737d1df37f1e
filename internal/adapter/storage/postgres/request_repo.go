package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const requestColumns = `id, request_type, method, asset_id, user_id, amount_minor,
		memo, metadata, status, assigned_admin_id, created_at, updated_at`

// RequestRepo implements ports.RequestRepository.
type RequestRepo struct {
	pool Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(pool Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

// Create inserts a new request.
func (r *RequestRepo) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (id, request_type, method, asset_id, user_id, amount_minor,
		memo, metadata, status, assigned_admin_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.Type, req.Method, req.AssetID, req.UserID, req.AmountMinor,
		req.Memo, req.Metadata, req.Status, req.AssignedAdminID,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID fetches a request by UUID (non-locking read).
func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE id = $1`, requestColumns)
	return scanRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a request with a row lock held until tx ends.
func (r *RequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE id = $1 FOR UPDATE`, requestColumns)
	return scanRequest(tx.QueryRow(ctx, query, id))
}

// ClaimIfNew atomically assigns the request to adminID if the row is still
// NEW. The status guard in the WHERE clause is what makes a lost race show
// up as zero affected rows instead of a silent overwrite.
func (r *RequestRepo) ClaimIfNew(ctx context.Context, tx pgx.Tx, id, adminID uuid.UUID) (bool, error) {
	query := `UPDATE requests SET status = $1, assigned_admin_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5 AND assigned_admin_id IS NULL`

	tag, err := tx.Exec(ctx, query, domain.StatusAssigned, adminID, time.Now().UTC(), id, domain.StatusNew)
	if err != nil {
		return false, fmt.Errorf("claim request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TransitionStatus moves the request from -> to only if it currently holds
// `from` and is assigned to adminID.
func (r *RequestRepo) TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.RequestStatus, adminID uuid.UUID) (bool, error) {
	query := `UPDATE requests SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND assigned_admin_id = $5`

	tag, err := tx.Exec(ctx, query, to, time.Now().UTC(), id, from, adminID)
	if err != nil {
		return false, fmt.Errorf("transition request status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetMemo overwrites the request memo within tx.
func (r *RequestRepo) SetMemo(ctx context.Context, tx pgx.Tx, id uuid.UUID, memo string) error {
	query := `UPDATE requests SET memo = $1, updated_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, memo, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set request memo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("request not found: %s", id)
	}
	return nil
}

// ReservedWithdrawMinor sums the user's withdraw amounts still in a pending
// status for the asset.
func (r *RequestRepo) ReservedWithdrawMinor(ctx context.Context, userID, assetID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount_minor), 0) FROM requests
		WHERE user_id = $1 AND asset_id = $2 AND request_type = $3 AND status = ANY($4)`

	var reserved int64
	err := r.pool.QueryRow(ctx, query, userID, assetID, domain.RequestTypeWithdraw, domain.PendingStatuses).Scan(&reserved)
	if err != nil {
		return 0, fmt.Errorf("sum reserved withdraws: %w", err)
	}
	return reserved, nil
}

// ListByUser fetches the user's requests, optionally filtered by status.
func (r *RequestRepo) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]domain.Request, error) {
	var (
		query string
		args  []any
	)
	if status != nil {
		query = fmt.Sprintf(`SELECT %s FROM requests WHERE user_id = $1 AND status = $2
			ORDER BY created_at DESC LIMIT $3`, requestColumns)
		args = []any{userID, *status, limit}
	} else {
		query = fmt.Sprintf(`SELECT %s FROM requests WHERE user_id = $1
			ORDER BY created_at DESC LIMIT $2`, requestColumns)
		args = []any{userID, limit}
	}
	return r.listRequests(ctx, query, args...)
}

// ListOpen fetches unassigned NEW requests, oldest first.
func (r *RequestRepo) ListOpen(ctx context.Context, limit int) ([]domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE status = $1
		ORDER BY created_at ASC LIMIT $2`, requestColumns)
	return r.listRequests(ctx, query, domain.StatusNew, limit)
}

// ListAssigned fetches the admin's in-flight requests.
func (r *RequestRepo) ListAssigned(ctx context.Context, adminID uuid.UUID, limit int) ([]domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests
		WHERE assigned_admin_id = $1 AND status = ANY($2)
		ORDER BY updated_at DESC LIMIT $3`, requestColumns)
	return r.listRequests(ctx, query, adminID, []domain.RequestStatus{
		domain.StatusAssigned, domain.StatusApproved, domain.StatusSent,
	}, limit)
}

// CountByStatuses counts requests in any of the given statuses.
func (r *RequestRepo) CountByStatuses(ctx context.Context, statuses []domain.RequestStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM requests WHERE status = ANY($1)`

	var count int64
	if err := r.pool.QueryRow(ctx, query, statuses).Scan(&count); err != nil {
		return 0, fmt.Errorf("count requests by status: %w", err)
	}
	return count, nil
}

// SumCompletedInWindow totals completed requests of one type created in
// [from, to) for the asset.
func (r *RequestRepo) SumCompletedInWindow(ctx context.Context, t domain.RequestType, assetID uuid.UUID, from, to time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount_minor), 0) FROM requests
		WHERE request_type = $1 AND asset_id = $2 AND status = $3
		AND created_at >= $4 AND created_at < $5`

	var total int64
	err := r.pool.QueryRow(ctx, query, t, assetID, domain.StatusCompleted, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum completed requests: %w", err)
	}
	return total, nil
}

func (r *RequestRepo) listRequests(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var reqs []domain.Request
	for rows.Next() {
		req := domain.Request{}
		err := rows.Scan(
			&req.ID, &req.Type, &req.Method, &req.AssetID, &req.UserID, &req.AmountMinor,
			&req.Memo, &req.Metadata, &req.Status, &req.AssignedAdminID,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan request row: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request rows: %w", err)
	}
	return reqs, nil
}

func scanRequest(row pgx.Row) (*domain.Request, error) {
	req := &domain.Request{}
	err := row.Scan(
		&req.ID, &req.Type, &req.Method, &req.AssetID, &req.UserID, &req.AmountMinor,
		&req.Memo, &req.Metadata, &req.Status, &req.AssignedAdminID,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}
	return req, nil
}
