package service

import (
	"context"
	"fmt"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService: read-only balance views
// derived from the posting tables.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	reqRepo    ports.RequestRepository
	assetRepo  ports.AssetRepository
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	reqRepo ports.RequestRepository,
	assetRepo ports.AssetRepository,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		reqRepo:    reqRepo,
		assetRepo:  assetRepo,
		log:        log,
	}
}

// WalletBalance is the user's posted balance: sum of debits minus credits on
// their wallet account.
func (s *LedgerServiceImpl) WalletBalance(ctx context.Context, userID uuid.UUID, assetCode string) (int64, error) {
	asset, err := s.resolveAsset(ctx, assetCode)
	if err != nil {
		return 0, err
	}
	balance, err := s.ledgerRepo.WalletBalance(ctx, userID, asset.ID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("wallet balance: %w", err))
	}
	return balance, nil
}

// AvailableBalance is the wallet balance minus the amounts reserved by the
// user's still-pending withdraw requests, floored at zero.
func (s *LedgerServiceImpl) AvailableBalance(ctx context.Context, userID uuid.UUID, assetCode string) (int64, error) {
	asset, err := s.resolveAsset(ctx, assetCode)
	if err != nil {
		return 0, err
	}
	balance, err := s.ledgerRepo.WalletBalance(ctx, userID, asset.ID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("wallet balance: %w", err))
	}
	reserved, err := s.reqRepo.ReservedWithdrawMinor(ctx, userID, asset.ID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("reserved withdraws: %w", err))
	}
	available := balance - reserved
	if available < 0 {
		available = 0
	}
	return available, nil
}

// SystemCashBalance is the operator-side cash position for the asset: sum of
// credits minus debits on the system cash account.
func (s *LedgerServiceImpl) SystemCashBalance(ctx context.Context, assetCode string) (int64, error) {
	asset, err := s.resolveAsset(ctx, assetCode)
	if err != nil {
		return 0, err
	}
	balance, err := s.ledgerRepo.SystemCashBalance(ctx, asset.ID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("system cash balance: %w", err))
	}
	return balance, nil
}

// ListEntries fetches the most recent ledger entries with their lines.
func (s *LedgerServiceImpl) ListEntries(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger entries: %w", err))
	}
	return entries, nil
}

func (s *LedgerServiceImpl) resolveAsset(ctx context.Context, code string) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}
	return asset, nil
}
