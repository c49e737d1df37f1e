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

func accountColumns() []string {
	return []string{"id", "account_type", "asset_id", "user_id", "created_at"}
}

func TestAccountRepo_GetOrCreateUserWallet_Existing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	userID := uuid.New()
	assetID := uuid.New()
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts").
		WithArgs(domain.AccountUserWallet, userID, assetID).
		WillReturnRows(pgxmock.NewRows(accountColumns()).AddRow(
			accountID, domain.AccountUserWallet, assetID, &userID, time.Now().UTC(),
		))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	a, err := repo.GetOrCreateUserWallet(context.Background(), tx, userID, assetID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, accountID, a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetOrCreateUserWallet_CreatesOnMiss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	userID := uuid.New()
	assetID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts").
		WithArgs(domain.AccountUserWallet, userID, assetID).
		WillReturnRows(pgxmock.NewRows(accountColumns()))
	mock.ExpectExec("INSERT INTO ledger_accounts").
		WithArgs(pgxmock.AnyArg(), domain.AccountUserWallet, assetID, &userID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	a, err := repo.GetOrCreateUserWallet(context.Background(), tx, userID, assetID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.AccountUserWallet, a.Type)
	require.NotNil(t, a.UserID)
	assert.Equal(t, userID, *a.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetOrCreateSystemCash_CreatesOnMiss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	assetID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts").
		WithArgs(domain.AccountSystemCash, assetID).
		WillReturnRows(pgxmock.NewRows(accountColumns()))
	mock.ExpectExec("INSERT INTO ledger_accounts").
		WithArgs(pgxmock.AnyArg(), domain.AccountSystemCash, assetID, nil, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	a, err := repo.GetOrCreateSystemCash(context.Background(), tx, assetID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.AccountSystemCash, a.Type)
	assert.Nil(t, a.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
