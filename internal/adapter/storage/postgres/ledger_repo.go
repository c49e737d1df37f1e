package postgres

import (
	"context"
	"fmt"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository over the append-only
// ledger_entries and ledger_lines tables. Rows are only ever inserted.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// CreateEntry inserts the entry header and all of its lines inside tx.
func (r *LedgerRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	entryQuery := `INSERT INTO ledger_entries (id, request_id, memo, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, entryQuery, e.ID, e.RequestID, e.Memo, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	lineQuery := `INSERT INTO ledger_lines (id, entry_id, account_id, direction, amount_minor)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range e.Lines {
		l := &e.Lines[i]
		if _, err := tx.Exec(ctx, lineQuery, l.ID, l.EntryID, l.AccountID, l.Direction, l.AmountMinor); err != nil {
			return fmt.Errorf("insert ledger line: %w", err)
		}
	}
	return nil
}

// EntryExistsForRequest reports whether a posting already exists for the
// request. Runs inside tx so the check and the insert see the same snapshot.
func (r *LedgerRepo) EntryExistsForRequest(ctx context.Context, tx pgx.Tx, requestID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM ledger_entries WHERE request_id = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, requestID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check entry exists: %w", err)
	}
	return exists, nil
}

// WalletBalance computes sum(DEBIT) - sum(CREDIT) over the user's wallet
// account. A missing account yields 0.
func (r *LedgerRepo) WalletBalance(ctx context.Context, userID, assetID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN l.direction = 'DEBIT' THEN l.amount_minor ELSE -l.amount_minor END), 0)
		FROM ledger_lines l
		JOIN ledger_accounts a ON a.id = l.account_id
		WHERE a.account_type = $1 AND a.user_id = $2 AND a.asset_id = $3`

	var balance int64
	err := r.pool.QueryRow(ctx, query, domain.AccountUserWallet, userID, assetID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}
	return balance, nil
}

// SystemCashBalance computes sum(CREDIT) - sum(DEBIT) over the system cash
// account. The sign convention is the mirror of WalletBalance: the cash
// account is credited when money enters the system.
func (r *LedgerRepo) SystemCashBalance(ctx context.Context, assetID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN l.direction = 'CREDIT' THEN l.amount_minor ELSE -l.amount_minor END), 0)
		FROM ledger_lines l
		JOIN ledger_accounts a ON a.id = l.account_id
		WHERE a.account_type = $1 AND a.asset_id = $2`

	var balance int64
	err := r.pool.QueryRow(ctx, query, domain.AccountSystemCash, assetID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("system cash balance: %w", err)
	}
	return balance, nil
}

// ListEntries fetches the most recent entries with their lines.
func (r *LedgerRepo) ListEntries(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	entryQuery := `SELECT id, request_id, memo, created_at
		FROM ledger_entries ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, entryQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e := domain.LedgerEntry{}
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Memo, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entry rows: %w", err)
	}

	for i := range entries {
		lines, err := r.entryLines(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

func (r *LedgerRepo) entryLines(ctx context.Context, entryID uuid.UUID) ([]domain.LedgerLine, error) {
	query := `SELECT id, entry_id, account_id, direction, amount_minor
		FROM ledger_lines WHERE entry_id = $1 ORDER BY direction`

	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list ledger lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.LedgerLine
	for rows.Next() {
		l := domain.LedgerLine{}
		if err := rows.Scan(&l.ID, &l.EntryID, &l.AccountID, &l.Direction, &l.AmountMinor); err != nil {
			return nil, fmt.Errorf("scan ledger line row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger line rows: %w", err)
	}
	return lines, nil
}
