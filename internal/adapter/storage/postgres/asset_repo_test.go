package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	asset := &domain.Asset{
		ID:        uuid.New(),
		Code:      "TL",
		Kind:      domain.AssetKindFiat,
		Decimals:  2,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(asset.ID, asset.Code, asset.Kind, asset.Decimals, asset.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), asset))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_GetByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	assetID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM assets").
		WithArgs("TL").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "kind", "decimals", "created_at"}).
			AddRow(assetID, "TL", domain.AssetKindFiat, int32(2), time.Now().UTC()))

	a, err := repo.GetByCode(context.Background(), "TL")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, assetID, a.ID)
	assert.Equal(t, "TL", a.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_GetByCode_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM assets").
		WithArgs("XX").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "kind", "decimals", "created_at"}))

	a, err := repo.GetByCode(context.Background(), "XX")
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}
