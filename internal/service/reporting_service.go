package service

import (
	"context"
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReportingServiceImpl implements ports.ReportingService.
type ReportingServiceImpl struct {
	reqRepo    ports.RequestRepository
	ledgerRepo ports.LedgerRepository
	assetRepo  ports.AssetRepository
	assetCode  string
	log        zerolog.Logger
}

// NewReportingService creates a new ReportingServiceImpl. assetCode is the
// asset the daily summary reports on.
func NewReportingService(
	reqRepo ports.RequestRepository,
	ledgerRepo ports.LedgerRepository,
	assetRepo ports.AssetRepository,
	assetCode string,
	log zerolog.Logger,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		reqRepo:    reqRepo,
		ledgerRepo: ledgerRepo,
		assetRepo:  assetRepo,
		assetCode:  assetCode,
		log:        log,
	}
}

// DailySummary aggregates request and ledger data over the UTC calendar day
// containing `day`.
func (s *ReportingServiceImpl) DailySummary(ctx context.Context, day time.Time) (*ports.DailySummary, error) {
	asset, err := s.assetRepo.GetByCode(ctx, s.assetCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	deposits, err := s.reqRepo.SumCompletedInWindow(ctx, domain.RequestTypeDeposit, asset.ID, dayStart, dayEnd)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum deposits: %w", err))
	}
	withdraws, err := s.reqRepo.SumCompletedInWindow(ctx, domain.RequestTypeWithdraw, asset.ID, dayStart, dayEnd)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum withdraws: %w", err))
	}
	pending, err := s.reqRepo.CountByStatuses(ctx, domain.PendingStatuses)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count pending: %w", err))
	}
	completed, err := s.reqRepo.CountByStatuses(ctx, []domain.RequestStatus{domain.StatusCompleted})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count completed: %w", err))
	}
	systemCash, err := s.ledgerRepo.SystemCashBalance(ctx, asset.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("system cash balance: %w", err))
	}

	return &ports.DailySummary{
		Day:                 dayStart,
		TotalDepositsMinor:  deposits,
		TotalWithdrawsMinor: withdraws,
		PendingCount:        pending,
		CompletedCount:      completed,
		SystemCashMinor:     systemCash,
	}, nil
}
