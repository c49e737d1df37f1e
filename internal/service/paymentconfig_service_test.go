package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type configTestDeps struct {
	svc        *PaymentConfigServiceImpl
	cfgRepo    *mocks.MockAppConfigRepository
	cache      *mocks.MockConfigCache
	auditRepo  *mocks.MockAuditLogRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupConfigService(t *testing.T) *configTestDeps {
	ctrl := gomock.NewController(t)
	d := &configTestDeps{
		cfgRepo:    mocks.NewMockAppConfigRepository(ctrl),
		cache:      mocks.NewMockConfigCache(ctrl),
		auditRepo:  mocks.NewMockAuditLogRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPaymentConfigService(d.cfgRepo, d.cache, d.auditRepo, d.transactor, zerolog.Nop())
	return d
}

func TestPaymentConfigService_Get_CacheHit(t *testing.T) {
	d := setupConfigService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.DefaultPaymentConfig()
	stored.DepositsEnabled = false
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	d.cache.EXPECT().Get(ctx, PaymentConfigKey).Return(data, nil)

	cfg, err := d.svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.DepositsEnabled)
	assert.True(t, cfg.WithdrawsEnabled)
}

func TestPaymentConfigService_Get_CacheMissReadsStore(t *testing.T) {
	d := setupConfigService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.DefaultPaymentConfig()
	stored.WithdrawMethods[domain.MethodCrypto] = false
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	d.cache.EXPECT().Get(ctx, PaymentConfigKey).Return(nil, nil)
	d.cfgRepo.EXPECT().Get(ctx, PaymentConfigKey).Return(data, nil)
	d.cache.EXPECT().Set(ctx, PaymentConfigKey, gomock.Any(), configCacheTTL).Return(nil)

	cfg, err := d.svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.WithdrawMethods[domain.MethodCrypto])
}

func TestPaymentConfigService_Get_MissingRowFallsBackToDefaults(t *testing.T) {
	d := setupConfigService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, PaymentConfigKey).Return(nil, nil)
	d.cfgRepo.EXPECT().Get(ctx, PaymentConfigKey).Return(nil, nil)

	cfg, err := d.svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.DepositsEnabled)
	assert.True(t, cfg.MethodEnabled(domain.RequestTypeDeposit, domain.MethodBank))
}

func TestPaymentConfigService_Update(t *testing.T) {
	d := setupConfigService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()
	tx := &mockTx{}

	cfg := domain.DefaultPaymentConfig()
	cfg.WithdrawsEnabled = false

	d.cfgRepo.EXPECT().Upsert(ctx, PaymentConfigKey, gomock.Any()).Return(nil)
	d.cache.EXPECT().Delete(ctx, PaymentConfigKey).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, l *domain.AdminActionLog) error {
			assert.Equal(t, domain.ActionUpdateConfig, l.Action)
			assert.Equal(t, adminID, l.AdminID)
			return nil
		})

	updated, err := d.svc.Update(ctx, adminID, cfg)
	require.NoError(t, err)
	assert.False(t, updated.WithdrawsEnabled)
}
