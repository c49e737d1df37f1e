package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRepository.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

// Create inserts a new asset into the database.
func (r *AssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (id, code, kind, decimals, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Code, a.Kind, a.Decimals, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByCode fetches an asset by its code.
func (r *AssetRepo) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	query := `SELECT id, code, kind, decimals, created_at FROM assets WHERE code = $1`

	a := &domain.Asset{}
	err := r.pool.QueryRow(ctx, query, code).Scan(&a.ID, &a.Code, &a.Kind, &a.Decimals, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset by code: %w", err)
	}
	return a, nil
}
