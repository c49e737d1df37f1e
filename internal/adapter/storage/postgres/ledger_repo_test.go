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

func TestLedgerRepo_CreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	requestID := uuid.New()
	entry := &domain.LedgerEntry{
		ID:        uuid.New(),
		RequestID: &requestID,
		Memo:      "deposit completion",
		CreatedAt: time.Now().UTC(),
	}
	entry.Lines = []domain.LedgerLine{
		{ID: uuid.New(), EntryID: entry.ID, AccountID: uuid.New(), Direction: domain.Debit, AmountMinor: 150000},
		{ID: uuid.New(), EntryID: entry.ID, AccountID: uuid.New(), Direction: domain.Credit, AmountMinor: 150000},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ledger_entries").
		WithArgs(entry.ID, entry.RequestID, entry.Memo, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for _, l := range entry.Lines {
		mock.ExpectExec("INSERT INTO ledger_lines").
			WithArgs(l.ID, l.EntryID, l.AccountID, l.Direction, l.AmountMinor).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateEntry(context.Background(), tx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_EntryExistsForRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(requestID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	exists, err := repo.EntryExistsForRequest(context.Background(), tx, requestID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_WalletBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	userID := uuid.New()
	assetID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(domain.AccountUserWallet, userID, assetID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(150000)))

	balance, err := repo.WalletBalance(context.Background(), userID, assetID)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SystemCashBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	assetID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(domain.AccountSystemCash, assetID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(100000)))

	balance, err := repo.SystemCashBalance(context.Background(), assetID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
