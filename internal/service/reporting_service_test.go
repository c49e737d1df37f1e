package service

import (
	"context"
	"testing"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportingService_DailySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reqRepo := mocks.NewMockRequestRepository(ctrl)
	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	assetRepo := mocks.NewMockAssetRepository(ctrl)
	svc := NewReportingService(reqRepo, ledgerRepo, assetRepo, "TL", zerolog.Nop())

	ctx := context.Background()
	asset := testAsset()
	day := time.Date(2026, 8, 30, 15, 42, 0, 0, time.UTC)
	dayStart := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	reqRepo.EXPECT().SumCompletedInWindow(ctx, domain.RequestTypeDeposit, asset.ID, dayStart, dayEnd).Return(int64(180000), nil)
	reqRepo.EXPECT().SumCompletedInWindow(ctx, domain.RequestTypeWithdraw, asset.ID, dayStart, dayEnd).Return(int64(50000), nil)
	reqRepo.EXPECT().CountByStatuses(ctx, domain.PendingStatuses).Return(int64(3), nil)
	reqRepo.EXPECT().CountByStatuses(ctx, []domain.RequestStatus{domain.StatusCompleted}).Return(int64(7), nil)
	ledgerRepo.EXPECT().SystemCashBalance(ctx, asset.ID).Return(int64(130000), nil)

	summary, err := svc.DailySummary(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, dayStart, summary.Day)
	assert.Equal(t, int64(180000), summary.TotalDepositsMinor)
	assert.Equal(t, int64(50000), summary.TotalWithdrawsMinor)
	assert.Equal(t, int64(3), summary.PendingCount)
	assert.Equal(t, int64(7), summary.CompletedCount)
	assert.Equal(t, int64(130000), summary.SystemCashMinor)
}
