package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AuditLogRepo implements ports.AuditLogRepository. Rows are append-only.
type AuditLogRepo struct {
	pool Pool
}

// NewAuditLogRepo creates a new AuditLogRepo.
func NewAuditLogRepo(pool Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Create appends one audit row inside the transition's transaction.
func (r *AuditLogRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.AdminActionLog) error {
	query := `INSERT INTO admin_action_logs (id, admin_id, request_id, action, from_status, to_status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		l.ID, l.AdminID, l.RequestID, l.Action, l.FromStatus, l.ToStatus, l.Note, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List fetches audit rows with filtering, newest first.
func (r *AuditLogRepo) List(ctx context.Context, params ports.AuditLogListParams) ([]domain.AdminActionLog, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.AdminID != nil {
		conditions = append(conditions, fmt.Sprintf("admin_id = $%d", argIdx))
		args = append(args, *params.AdminID)
		argIdx++
	}
	if params.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, *params.Action)
		argIdx++
	}
	if params.ToStatus != nil {
		conditions = append(conditions, fmt.Sprintf("to_status = $%d", argIdx))
		args = append(args, *params.ToStatus)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT id, admin_id, request_id, action, from_status, to_status, note, created_at
		FROM admin_action_logs %s ORDER BY created_at DESC LIMIT $%d`, where, argIdx)
	args = append(args, params.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.AdminActionLog
	for rows.Next() {
		l := domain.AdminActionLog{}
		err := rows.Scan(&l.ID, &l.AdminID, &l.RequestID, &l.Action, &l.FromStatus, &l.ToStatus, &l.Note, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log rows: %w", err)
	}
	return logs, nil
}
