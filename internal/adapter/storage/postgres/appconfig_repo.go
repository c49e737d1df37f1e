package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// AppConfigRepo implements ports.AppConfigRepository over a key/JSON table.
type AppConfigRepo struct {
	pool Pool
}

// NewAppConfigRepo creates a new AppConfigRepo.
func NewAppConfigRepo(pool Pool) *AppConfigRepo {
	return &AppConfigRepo{pool: pool}
}

// Get returns the JSON document for key, or nil, nil when absent.
func (r *AppConfigRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM app_config WHERE key = $1`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app config: %w", err)
	}
	return value, nil
}

// Upsert writes the JSON document for key, replacing any previous value.
func (r *AppConfigRepo) Upsert(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO app_config (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert app config: %w", err)
	}
	return nil
}
