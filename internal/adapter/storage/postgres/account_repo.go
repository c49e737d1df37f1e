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

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// GetOrCreateUserWallet returns the user's wallet account for the asset,
// creating it on first use. Must run inside the caller's transaction so the
// created row is visible to the posting that follows.
func (r *AccountRepo) GetOrCreateUserWallet(ctx context.Context, tx pgx.Tx, userID, assetID uuid.UUID) (*domain.LedgerAccount, error) {
	query := `SELECT id, account_type, asset_id, user_id, created_at
		FROM ledger_accounts WHERE account_type = $1 AND user_id = $2 AND asset_id = $3`

	a := &domain.LedgerAccount{}
	err := tx.QueryRow(ctx, query, domain.AccountUserWallet, userID, assetID).Scan(
		&a.ID, &a.Type, &a.AssetID, &a.UserID, &a.CreatedAt,
	)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get user wallet account: %w", err)
	}

	a = &domain.LedgerAccount{
		ID:        uuid.New(),
		Type:      domain.AccountUserWallet,
		AssetID:   assetID,
		UserID:    &userID,
		CreatedAt: time.Now().UTC(),
	}
	insert := `INSERT INTO ledger_accounts (id, account_type, asset_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, insert, a.ID, a.Type, a.AssetID, a.UserID, a.CreatedAt); err != nil {
		return nil, fmt.Errorf("create user wallet account: %w", err)
	}
	return a, nil
}

// GetOrCreateSystemCash returns the singleton system cash account for the
// asset, creating it on first use. Must run inside the caller's transaction.
func (r *AccountRepo) GetOrCreateSystemCash(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (*domain.LedgerAccount, error) {
	query := `SELECT id, account_type, asset_id, user_id, created_at
		FROM ledger_accounts WHERE account_type = $1 AND asset_id = $2`

	a := &domain.LedgerAccount{}
	err := tx.QueryRow(ctx, query, domain.AccountSystemCash, assetID).Scan(
		&a.ID, &a.Type, &a.AssetID, &a.UserID, &a.CreatedAt,
	)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get system cash account: %w", err)
	}

	a = &domain.LedgerAccount{
		ID:        uuid.New(),
		Type:      domain.AccountSystemCash,
		AssetID:   assetID,
		CreatedAt: time.Now().UTC(),
	}
	insert := `INSERT INTO ledger_accounts (id, account_type, asset_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, insert, a.ID, a.Type, a.AssetID, nil, a.CreatedAt); err != nil {
		return nil, fmt.Errorf("create system cash account: %w", err)
	}
	return a, nil
}
