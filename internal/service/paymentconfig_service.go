package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentConfigKey is the app_config row holding the payment enablement
// document.
const PaymentConfigKey = "PAYMENT_CONFIG"

const configCacheTTL = 5 * time.Minute

// PaymentConfigServiceImpl implements ports.PaymentConfigService. Reads go
// through Redis first, then the app_config table, then built-in defaults.
type PaymentConfigServiceImpl struct {
	cfgRepo    ports.AppConfigRepository
	cache      ports.ConfigCache
	auditRepo  ports.AuditLogRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewPaymentConfigService creates a new PaymentConfigServiceImpl.
func NewPaymentConfigService(
	cfgRepo ports.AppConfigRepository,
	cache ports.ConfigCache,
	auditRepo ports.AuditLogRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PaymentConfigServiceImpl {
	return &PaymentConfigServiceImpl{
		cfgRepo:    cfgRepo,
		cache:      cache,
		auditRepo:  auditRepo,
		transactor: transactor,
		log:        log,
	}
}

// Get returns the current payment config snapshot. A cache or store miss
// falls back to the built-in defaults rather than failing the caller.
func (s *PaymentConfigServiceImpl) Get(ctx context.Context) (domain.PaymentConfig, error) {
	cached, err := s.cache.Get(ctx, PaymentConfigKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("config cache read failed, falling through to DB")
	}
	if cached != nil {
		var cfg domain.PaymentConfig
		if err := json.Unmarshal(cached, &cfg); err == nil {
			return cfg, nil
		}
		s.log.Warn().Msg("cached payment config is malformed, falling through to DB")
	}

	raw, err := s.cfgRepo.Get(ctx, PaymentConfigKey)
	if err != nil {
		return domain.PaymentConfig{}, apperror.InternalError(fmt.Errorf("get payment config: %w", err))
	}
	if raw == nil {
		return domain.DefaultPaymentConfig(), nil
	}

	var cfg domain.PaymentConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return domain.PaymentConfig{}, apperror.InternalError(fmt.Errorf("unmarshal payment config: %w", err))
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := s.cache.Set(ctx, PaymentConfigKey, data, configCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("config cache write failed")
		}
	}
	return cfg, nil
}

// Update replaces the payment config document, invalidates the cache and
// writes an UPDATE_CONFIG audit row.
func (s *PaymentConfigServiceImpl) Update(ctx context.Context, adminID uuid.UUID, cfg domain.PaymentConfig) (domain.PaymentConfig, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return domain.PaymentConfig{}, apperror.InternalError(fmt.Errorf("marshal payment config: %w", err))
	}

	if err := s.cfgRepo.Upsert(ctx, PaymentConfigKey, data); err != nil {
		return domain.PaymentConfig{}, apperror.InternalError(fmt.Errorf("upsert payment config: %w", err))
	}

	if err := s.cache.Delete(ctx, PaymentConfigKey); err != nil {
		s.log.Warn().Err(err).Msg("config cache invalidation failed")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.PaymentConfig{}, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	entry := &domain.AdminActionLog{
		ID:        uuid.New(),
		AdminID:   adminID,
		Action:    domain.ActionUpdateConfig,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.auditRepo.Create(ctx, dbTx, entry); err != nil {
		return domain.PaymentConfig{}, apperror.InternalError(fmt.Errorf("create audit log: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return domain.PaymentConfig{}, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("admin_id", adminID.String()).
		Bool("deposits_enabled", cfg.DepositsEnabled).
		Bool("withdraws_enabled", cfg.WithdrawsEnabled).
		Msg("payment config updated")

	return cfg, nil
}
