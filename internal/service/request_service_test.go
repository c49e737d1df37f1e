package service

import (
	"context"
	"errors"
	"testing"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/internal/core/ports/mocks"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMinAmount = 1000

type requestTestDeps struct {
	svc         *RequestServiceImpl
	reqRepo     *mocks.MockRequestRepository
	assetRepo   *mocks.MockAssetRepository
	accountRepo *mocks.MockAccountRepository
	ledgerRepo  *mocks.MockLedgerRepository
	auditRepo   *mocks.MockAuditLogRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupRequestService(t *testing.T) *requestTestDeps {
	ctrl := gomock.NewController(t)
	d := &requestTestDeps{
		reqRepo:     mocks.NewMockRequestRepository(ctrl),
		assetRepo:   mocks.NewMockAssetRepository(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		auditRepo:   mocks.NewMockAuditLogRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewRequestService(
		d.reqRepo, d.assetRepo, d.accountRepo, d.ledgerRepo,
		d.auditRepo, d.transactor, testMinAmount, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func testAsset() *domain.Asset {
	return &domain.Asset{ID: uuid.New(), Code: "TL", Kind: domain.AssetKindFiat, Decimals: 2}
}

// ==================== Create Tests ====================

func TestRequestService_CreateDeposit_Success(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()
	userID := uuid.New()

	d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	d.reqRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	req, err := d.svc.CreateDeposit(ctx, ports.CreateRequestParams{
		UserID:      userID,
		AssetCode:   "TL",
		Method:      domain.MethodBank,
		AmountMinor: 150000,
	}, domain.DefaultPaymentConfig())

	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, domain.StatusNew, req.Status)
	assert.Equal(t, domain.RequestTypeDeposit, req.Type)
	assert.Equal(t, asset.ID, req.AssetID)
	assert.Nil(t, req.AssignedAdminID)
}

func TestRequestService_CreateDeposit_AmountBelowMinimum(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateDeposit(context.Background(), ports.CreateRequestParams{
		UserID:      uuid.New(),
		AssetCode:   "TL",
		Method:      domain.MethodBank,
		AmountMinor: 999,
	}, domain.DefaultPaymentConfig())

	assertAppErrorCode(t, err, "VAL_001")
}

func TestRequestService_CreateDeposit_MethodDisabled(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	cfg := domain.DefaultPaymentConfig()
	cfg.DepositMethods[domain.MethodCard] = false

	_, err := d.svc.CreateDeposit(context.Background(), ports.CreateRequestParams{
		UserID:      uuid.New(),
		AssetCode:   "TL",
		Method:      domain.MethodCard,
		AmountMinor: 50000,
	}, cfg)

	assertAppErrorCode(t, err, "VAL_002")
}

func TestRequestService_CreateWithdraw_InsufficientFunds(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()
	userID := uuid.New()

	d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	// Balance 150000 with 125000 already reserved leaves 25000 available.
	d.ledgerRepo.EXPECT().WalletBalance(ctx, userID, asset.ID).Return(int64(150000), nil)
	d.reqRepo.EXPECT().ReservedWithdrawMinor(ctx, userID, asset.ID).Return(int64(125000), nil)

	_, err := d.svc.CreateWithdraw(ctx, ports.CreateRequestParams{
		UserID:      userID,
		AssetCode:   "TL",
		Method:      domain.MethodBank,
		AmountMinor: 50000,
	}, domain.DefaultPaymentConfig())

	assertAppErrorCode(t, err, "PAY_001")
}

func TestRequestService_CreateWithdraw_Success(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asset := testAsset()
	userID := uuid.New()

	d.assetRepo.EXPECT().GetByCode(ctx, "TL").Return(asset, nil)
	d.ledgerRepo.EXPECT().WalletBalance(ctx, userID, asset.ID).Return(int64(150000), nil)
	d.reqRepo.EXPECT().ReservedWithdrawMinor(ctx, userID, asset.ID).Return(int64(100000), nil)
	d.reqRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	req, err := d.svc.CreateWithdraw(ctx, ports.CreateRequestParams{
		UserID:      userID,
		AssetCode:   "TL",
		Method:      domain.MethodBank,
		AmountMinor: 25000,
	}, domain.DefaultPaymentConfig())

	require.NoError(t, err)
	assert.Equal(t, domain.RequestTypeWithdraw, req.Type)
	assert.Equal(t, domain.StatusNew, req.Status)
}

// ==================== Claim Tests ====================

func TestRequestService_Claim_Success(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:     requestID,
		Status: domain.StatusNew,
	}, nil)
	d.reqRepo.EXPECT().ClaimIfNew(ctx, tx, requestID, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.Claim(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, status)
}

func TestRequestService_Claim_IdempotentReclaim(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	// Already assigned to the same admin: no update, no audit row.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Status:          domain.StatusAssigned,
		AssignedAdminID: &adminID,
	}, nil)

	status, err := d.svc.Claim(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, status)
}

func TestRequestService_Claim_AlreadyClaimedByOther(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	otherAdmin := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Status:          domain.StatusAssigned,
		AssignedAdminID: &otherAdmin,
	}, nil)

	_, err := d.svc.Claim(ctx, requestID, uuid.New())
	assertAppErrorCode(t, err, "STATE_001")
}

func TestRequestService_Claim_LostRace(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	// Row read as NEW but the conditional update affects zero rows.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:     requestID,
		Status: domain.StatusNew,
	}, nil)
	d.reqRepo.EXPECT().ClaimIfNew(ctx, tx, requestID, adminID).Return(false, nil)

	_, err := d.svc.Claim(ctx, requestID, adminID)
	assertAppErrorCode(t, err, "STATE_001")
}

func TestRequestService_Claim_NotFound(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(nil, nil)

	_, err := d.svc.Claim(ctx, requestID, uuid.New())
	assertAppErrorCode(t, err, "RES_001")
}

// ==================== Transition Tests ====================

func TestRequestService_Approve_Success(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Status:          domain.StatusAssigned,
		AssignedAdminID: &adminID,
	}, nil)
	d.reqRepo.EXPECT().TransitionStatus(ctx, tx, requestID, domain.StatusAssigned, domain.StatusApproved, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.Approve(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, status)
}

func TestRequestService_Approve_WrongAdmin(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	otherAdmin := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Status:          domain.StatusAssigned,
		AssignedAdminID: &otherAdmin,
	}, nil)

	_, err := d.svc.Approve(ctx, requestID, uuid.New())
	assertAppErrorCode(t, err, "AUTH_003")
}

func TestRequestService_Approve_WrongStatus(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:     requestID,
		Status: domain.StatusNew,
	}, nil)

	_, err := d.svc.Approve(ctx, requestID, adminID)
	assertAppErrorCode(t, err, "STATE_001")
}

func TestRequestService_Reject_WritesReason(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	reason := "document mismatch"
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Status:          domain.StatusAssigned,
		AssignedAdminID: &adminID,
	}, nil)
	d.reqRepo.EXPECT().SetMemo(ctx, tx, requestID, reason).Return(nil)
	d.reqRepo.EXPECT().TransitionStatus(ctx, tx, requestID, domain.StatusAssigned, domain.StatusRejected, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.Reject(ctx, requestID, adminID, &reason)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, status)
}

func TestRequestService_MarkSent_DepositRejected(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeDeposit,
		Method:          domain.MethodBank,
		Status:          domain.StatusApproved,
		AssignedAdminID: &adminID,
	}, nil)

	_, err := d.svc.MarkSent(ctx, requestID, adminID)
	assertAppErrorCode(t, err, "STATE_001")
}

func TestRequestService_RequestConfirmation_CardDeposit(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeDeposit,
		Method:          domain.MethodCard,
		Status:          domain.StatusApproved,
		AssignedAdminID: &adminID,
	}, nil)
	d.reqRepo.EXPECT().TransitionStatus(ctx, tx, requestID, domain.StatusApproved, domain.StatusSent, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.RequestConfirmation(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, status)
}

// ==================== Complete Tests ====================

func TestRequestService_Complete_BankDeposit(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	userID := uuid.New()
	assetID := uuid.New()
	walletAccount := uuid.New()
	cashAccount := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeDeposit,
		Method:          domain.MethodBank,
		AssetID:         assetID,
		UserID:          userID,
		AmountMinor:     150000,
		Status:          domain.StatusApproved,
		AssignedAdminID: &adminID,
	}, nil)
	d.ledgerRepo.EXPECT().EntryExistsForRequest(ctx, tx, requestID).Return(false, nil)
	d.accountRepo.EXPECT().GetOrCreateUserWallet(ctx, tx, userID, assetID).
		Return(&domain.LedgerAccount{ID: walletAccount, Type: domain.AccountUserWallet}, nil)
	d.accountRepo.EXPECT().GetOrCreateSystemCash(ctx, tx, assetID).
		Return(&domain.LedgerAccount{ID: cashAccount, Type: domain.AccountSystemCash}, nil)
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			require.Len(t, e.Lines, 2)
			assert.True(t, e.IsBalanced())
			assert.Equal(t, walletAccount, e.Lines[0].AccountID)
			assert.Equal(t, domain.Debit, e.Lines[0].Direction)
			assert.Equal(t, cashAccount, e.Lines[1].AccountID)
			assert.Equal(t, domain.Credit, e.Lines[1].Direction)
			assert.Equal(t, int64(150000), e.Lines[0].AmountMinor)
			return nil
		})
	d.reqRepo.EXPECT().TransitionStatus(ctx, tx, requestID, domain.StatusApproved, domain.StatusCompleted, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.Complete(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, status)
}

func TestRequestService_Complete_WithdrawFromSent(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	userID := uuid.New()
	assetID := uuid.New()
	walletAccount := uuid.New()
	cashAccount := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeWithdraw,
		Method:          domain.MethodBank,
		AssetID:         assetID,
		UserID:          userID,
		AmountMinor:     50000,
		Status:          domain.StatusSent,
		AssignedAdminID: &adminID,
	}, nil)
	d.ledgerRepo.EXPECT().EntryExistsForRequest(ctx, tx, requestID).Return(false, nil)
	d.accountRepo.EXPECT().GetOrCreateUserWallet(ctx, tx, userID, assetID).
		Return(&domain.LedgerAccount{ID: walletAccount}, nil)
	d.accountRepo.EXPECT().GetOrCreateSystemCash(ctx, tx, assetID).
		Return(&domain.LedgerAccount{ID: cashAccount}, nil)
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			require.Len(t, e.Lines, 2)
			assert.Equal(t, domain.Credit, e.Lines[0].Direction, "withdraw credits the wallet")
			assert.Equal(t, domain.Debit, e.Lines[1].Direction, "withdraw debits system cash")
			return nil
		})
	d.reqRepo.EXPECT().TransitionStatus(ctx, tx, requestID, domain.StatusSent, domain.StatusCompleted, adminID).Return(true, nil)
	d.auditRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	status, err := d.svc.Complete(ctx, requestID, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, status)
}

func TestRequestService_Complete_DuplicatePosting(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeDeposit,
		Method:          domain.MethodBank,
		Status:          domain.StatusApproved,
		AssignedAdminID: &adminID,
	}, nil)
	d.ledgerRepo.EXPECT().EntryExistsForRequest(ctx, tx, requestID).Return(true, nil)

	_, err := d.svc.Complete(ctx, requestID, adminID)
	assertAppErrorCode(t, err, "PAY_002")
}

func TestRequestService_Complete_CardDepositNeedsConfirmation(t *testing.T) {
	d := setupRequestService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()
	tx := &mockTx{}

	// Card deposit sitting in APPROVED must go through RequestConfirmation
	// before Complete.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.reqRepo.EXPECT().GetByIDForUpdate(ctx, tx, requestID).Return(&domain.Request{
		ID:              requestID,
		Type:            domain.RequestTypeDeposit,
		Method:          domain.MethodCard,
		Status:          domain.StatusApproved,
		AssignedAdminID: &adminID,
	}, nil)

	_, err := d.svc.Complete(ctx, requestID, adminID)
	assertAppErrorCode(t, err, "STATE_001")
}
