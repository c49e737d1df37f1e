package service

import (
	"context"
	"testing"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	ledgerRepo *mocks.MockLedgerRepository
	reqRepo    *mocks.MockRequestRepository
	assetRepo  *mocks.MockAssetRepository
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		reqRepo:    mocks.NewMockRequestRepository(ctrl),
		assetRepo:  mocks.NewMockAssetRepository(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.ledgerRepo, d.reqRepo, d.assetRepo, zerolog.Nop())
	return d
}

func TestLedgerService_WalletBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()
	userID := uuid.New()

	d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	d.ledgerRepo.EXPECT().WalletBalance(ctx, userID, asset.ID).Return(int64(150000), nil)

	balance, err := d.svc.WalletBalance(ctx, userID, "TL")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), balance)
}

func TestLedgerService_WalletBalance_UnknownAsset(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.assetRepo.EXPECT().GetByCode(ctx, "XX").Return(nil, nil)

	_, err := d.svc.WalletBalance(ctx, uuid.New(), "XX")
	assertAppErrorCode(t, err, "RES_001")
}

func TestLedgerService_AvailableBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()
	userID := uuid.New()

	cases := []struct {
		name     string
		balance  int64
		reserved int64
		expected int64
	}{
		{"no reservations", 150000, 0, 150000},
		{"partial reservation", 150000, 125000, 25000},
		{"fully reserved", 150000, 150000, 0},
		{"floored at zero", 100000, 150000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
			d.ledgerRepo.EXPECT().WalletBalance(ctx, userID, asset.ID).Return(tc.balance, nil)
			d.reqRepo.EXPECT().ReservedWithdrawMinor(ctx, userID, asset.ID).Return(tc.reserved, nil)

			available, err := d.svc.AvailableBalance(ctx, userID, "TL")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, available)
		})
	}
}

func TestLedgerService_SystemCashBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()

	d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	d.ledgerRepo.EXPECT().SystemCashBalance(ctx, asset.ID).Return(int64(100000), nil)

	balance, err := d.svc.SystemCashBalance(ctx, "TL")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)
}

func TestLedgerService_ListEntries(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entries := []domain.LedgerEntry{{ID: uuid.New()}}

	d.ledgerRepo.EXPECT().ListEntries(ctx, defaultListLimit).Return(entries, nil)

	result, err := d.svc.ListEntries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
