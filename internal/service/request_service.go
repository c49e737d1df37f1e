package service

import (
	"context"
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// RequestServiceImpl implements ports.RequestService: request creation, the
// admin lifecycle state machine, and the exactly-once completion committer.
type RequestServiceImpl struct {
	reqRepo     ports.RequestRepository
	assetRepo   ports.AssetRepository
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	auditRepo   ports.AuditLogRepository
	transactor  ports.DBTransactor
	minAmount   int64
	log         zerolog.Logger
}

// NewRequestService creates a new RequestServiceImpl.
func NewRequestService(
	reqRepo ports.RequestRepository,
	assetRepo ports.AssetRepository,
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	auditRepo ports.AuditLogRepository,
	transactor ports.DBTransactor,
	minAmountMinor int64,
	log zerolog.Logger,
) *RequestServiceImpl {
	return &RequestServiceImpl{
		reqRepo:     reqRepo,
		assetRepo:   assetRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		auditRepo:   auditRepo,
		transactor:  transactor,
		minAmount:   minAmountMinor,
		log:         log,
	}
}

// CreateDeposit validates and persists a new deposit request in NEW.
func (s *RequestServiceImpl) CreateDeposit(ctx context.Context, p ports.CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error) {
	return s.createRequest(ctx, domain.RequestTypeDeposit, p, cfg)
}

// CreateWithdraw validates and persists a new withdraw request in NEW.
// The amount must fit within the user's available balance: wallet balance
// minus the sum of their still-pending withdraw requests.
func (s *RequestServiceImpl) CreateWithdraw(ctx context.Context, p ports.CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error) {
	return s.createRequest(ctx, domain.RequestTypeWithdraw, p, cfg)
}

// CreateWithdrawForUser is the admin-initiated withdraw. Same validation as
// CreateWithdraw plus an ADMIN_CREATE_WITHDRAW audit row.
func (s *RequestServiceImpl) CreateWithdrawForUser(ctx context.Context, adminID uuid.UUID, p ports.CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error) {
	req, err := s.createRequest(ctx, domain.RequestTypeWithdraw, p, cfg)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	status := req.Status
	entry := &domain.AdminActionLog{
		ID:        uuid.New(),
		AdminID:   adminID,
		RequestID: &req.ID,
		Action:    domain.ActionAdminCreateWithdraw,
		ToStatus:  &status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.auditRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create audit log: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	return req, nil
}

func (s *RequestServiceImpl) createRequest(ctx context.Context, t domain.RequestType, p ports.CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error) {
	if p.AmountMinor < s.minAmount {
		return nil, apperror.ErrAmountBelowMinimum(s.minAmount)
	}
	if !domain.ValidMethod(p.Method) {
		return nil, apperror.Validation(fmt.Sprintf("unknown payment method: %s", p.Method))
	}
	if !cfg.MethodEnabled(t, p.Method) {
		return nil, apperror.ErrMethodDisabled(string(p.Method))
	}

	asset, err := s.assetRepo.GetByCode(ctx, p.AssetCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	if t == domain.RequestTypeWithdraw {
		available, err := s.availableBalance(ctx, p.UserID, asset.ID)
		if err != nil {
			return nil, err
		}
		if p.AmountMinor > available {
			return nil, apperror.ErrInsufficientFunds(available)
		}
	}

	now := time.Now().UTC()
	req := &domain.Request{
		ID:          uuid.New(),
		Type:        t,
		Method:      p.Method,
		AssetID:     asset.ID,
		UserID:      p.UserID,
		AmountMinor: p.AmountMinor,
		Memo:        p.Memo,
		Metadata:    p.Metadata,
		Status:      domain.StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create request: %w", err))
	}

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("user_id", req.UserID.String()).
		Str("type", string(req.Type)).
		Str("method", string(req.Method)).
		Int64("amount_minor", req.AmountMinor).
		Msg("request created")

	return req, nil
}

// availableBalance is wallet balance minus reserved pending withdraws,
// floored at zero.
func (s *RequestServiceImpl) availableBalance(ctx context.Context, userID, assetID uuid.UUID) (int64, error) {
	balance, err := s.ledgerRepo.WalletBalance(ctx, userID, assetID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("wallet balance: %w", err))
	}
	reserved, err := s.reqRepo.ReservedWithdrawMinor(ctx, userID, assetID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("reserved withdraws: %w", err))
	}
	available := balance - reserved
	if available < 0 {
		available = 0
	}
	return available, nil
}

// Claim assigns a NEW request to the admin. Claiming a request already held
// by the same admin is an idempotent success; it writes no second audit row.
func (s *RequestServiceImpl) Claim(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.lockRequest(ctx, dbTx, requestID)
	if err != nil {
		return "", err
	}

	if req.Status == domain.StatusAssigned && req.IsAssignedTo(adminID) {
		return domain.StatusAssigned, nil
	}
	if req.Status != domain.StatusNew {
		return "", apperror.ErrStateConflict("claim", string(domain.StatusNew), string(req.Status))
	}

	claimed, err := s.reqRepo.ClaimIfNew(ctx, dbTx, requestID, adminID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("claim request: %w", err))
	}
	if !claimed {
		return "", apperror.ErrStateConflict("claim", string(domain.StatusNew), string(req.Status))
	}

	if err := s.writeAudit(ctx, dbTx, adminID, requestID, domain.ActionClaim, domain.StatusNew, domain.StatusAssigned, nil); err != nil {
		return "", err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("request_id", requestID.String()).
		Str("admin_id", adminID.String()).
		Msg("request claimed")

	return domain.StatusAssigned, nil
}

// Approve moves an ASSIGNED request to APPROVED.
func (s *RequestServiceImpl) Approve(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
	return s.simpleTransition(ctx, requestID, adminID, "approve",
		domain.ActionApprove, domain.StatusAssigned, domain.StatusApproved, nil, nil)
}

// Reject moves an ASSIGNED request to REJECTED, optionally overwriting the
// memo with the rejection reason.
func (s *RequestServiceImpl) Reject(ctx context.Context, requestID, adminID uuid.UUID, reason *string) (domain.RequestStatus, error) {
	var beforeTransition func(ctx context.Context, dbTx pgx.Tx, req *domain.Request) error
	if reason != nil {
		beforeTransition = func(ctx context.Context, dbTx pgx.Tx, req *domain.Request) error {
			if err := s.reqRepo.SetMemo(ctx, dbTx, req.ID, *reason); err != nil {
				return apperror.InternalError(fmt.Errorf("set reject reason: %w", err))
			}
			return nil
		}
	}
	return s.simpleTransition(ctx, requestID, adminID, "reject",
		domain.ActionReject, domain.StatusAssigned, domain.StatusRejected, reason, beforeTransition)
}

// MarkSent records that a withdraw's funds were sent out. Withdraw only.
func (s *RequestServiceImpl) MarkSent(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
	check := func(ctx context.Context, dbTx pgx.Tx, req *domain.Request) error {
		if req.Type != domain.RequestTypeWithdraw {
			return apperror.ErrStateConflict("mark sent", "WITHDRAW request", string(req.Type)+" request")
		}
		return nil
	}
	return s.simpleTransition(ctx, requestID, adminID, "mark sent",
		domain.ActionSend, domain.StatusApproved, domain.StatusSent, nil, check)
}

// RequestConfirmation moves a card deposit to SENT pending the user's
// confirmation. Card deposits only.
func (s *RequestServiceImpl) RequestConfirmation(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
	check := func(ctx context.Context, dbTx pgx.Tx, req *domain.Request) error {
		if req.Type != domain.RequestTypeDeposit || req.Method != domain.MethodCard {
			return apperror.ErrStateConflict("request confirmation", "CARD deposit",
				string(req.Method)+" "+string(req.Type))
		}
		return nil
	}
	return s.simpleTransition(ctx, requestID, adminID, "request confirmation",
		domain.ActionRequestConfirmation, domain.StatusApproved, domain.StatusSent, nil, check)
}

// simpleTransition runs one guarded state transition plus its audit row as a
// single unit of work. extra, when set, runs after the guards but before the
// conditional status update, inside the same transaction.
func (s *RequestServiceImpl) simpleTransition(
	ctx context.Context,
	requestID, adminID uuid.UUID,
	actionName string,
	action domain.AdminAction,
	from, to domain.RequestStatus,
	note *string,
	extra func(ctx context.Context, dbTx pgx.Tx, req *domain.Request) error,
) (domain.RequestStatus, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.lockRequest(ctx, dbTx, requestID)
	if err != nil {
		return "", err
	}
	if req.Status != from {
		return "", apperror.ErrStateConflict(actionName, string(from), string(req.Status))
	}
	if !req.IsAssignedTo(adminID) {
		return "", apperror.ErrNotAssignedAdmin()
	}
	if extra != nil {
		if err := extra(ctx, dbTx, req); err != nil {
			return "", err
		}
	}

	moved, err := s.reqRepo.TransitionStatus(ctx, dbTx, requestID, from, to, adminID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("%s request: %w", actionName, err))
	}
	if !moved {
		return "", apperror.ErrStateConflict(actionName, string(from), string(req.Status))
	}

	if err := s.writeAudit(ctx, dbTx, adminID, requestID, action, from, to, note); err != nil {
		return "", err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("request_id", requestID.String()).
		Str("admin_id", adminID.String()).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("request transitioned")

	return to, nil
}

// Complete posts the balanced ledger entry for the request and advances it to
// COMPLETED. The status guard, the duplicate-posting check, the entry insert
// and the status update all commit or abort together, so a request is posted
// at most once no matter how calls race or retry.
func (s *RequestServiceImpl) Complete(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.lockRequest(ctx, dbTx, requestID)
	if err != nil {
		return "", err
	}

	from := req.CompletesFrom()
	if req.Status != from {
		return "", apperror.ErrStateConflict("complete", string(from), string(req.Status))
	}
	if !req.IsAssignedTo(adminID) {
		return "", apperror.ErrNotAssignedAdmin()
	}

	exists, err := s.ledgerRepo.EntryExistsForRequest(ctx, dbTx, requestID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("check existing entry: %w", err))
	}
	if exists {
		return "", apperror.ErrDuplicatePosting()
	}

	wallet, err := s.accountRepo.GetOrCreateUserWallet(ctx, dbTx, req.UserID, req.AssetID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("wallet account: %w", err))
	}
	cash, err := s.accountRepo.GetOrCreateSystemCash(ctx, dbTx, req.AssetID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("system cash account: %w", err))
	}

	entry := buildCompletionEntry(req, wallet.ID, cash.ID)
	if err := s.ledgerRepo.CreateEntry(ctx, dbTx, entry); err != nil {
		return "", apperror.InternalError(fmt.Errorf("post ledger entry: %w", err))
	}

	moved, err := s.reqRepo.TransitionStatus(ctx, dbTx, requestID, from, domain.StatusCompleted, adminID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("complete request: %w", err))
	}
	if !moved {
		return "", apperror.ErrStateConflict("complete", string(from), string(req.Status))
	}

	if err := s.writeAudit(ctx, dbTx, adminID, requestID, domain.ActionComplete, from, domain.StatusCompleted, nil); err != nil {
		return "", err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("request_id", requestID.String()).
		Str("admin_id", adminID.String()).
		Str("type", string(req.Type)).
		Int64("amount_minor", req.AmountMinor).
		Msg("request completed, ledger entry posted")

	return domain.StatusCompleted, nil
}

// buildCompletionEntry constructs the two-line balanced entry for a request.
// DEPOSIT debits the wallet and credits system cash; WITHDRAW is the mirror.
func buildCompletionEntry(req *domain.Request, walletAccountID, cashAccountID uuid.UUID) *domain.LedgerEntry {
	walletDir, cashDir := domain.Debit, domain.Credit
	if req.Type == domain.RequestTypeWithdraw {
		walletDir, cashDir = domain.Credit, domain.Debit
	}

	requestID := req.ID
	entry := &domain.LedgerEntry{
		ID:        uuid.New(),
		RequestID: &requestID,
		Memo:      fmt.Sprintf("%s completion", req.Type),
		CreatedAt: time.Now().UTC(),
	}
	entry.Lines = []domain.LedgerLine{
		{ID: uuid.New(), EntryID: entry.ID, AccountID: walletAccountID, Direction: walletDir, AmountMinor: req.AmountMinor},
		{ID: uuid.New(), EntryID: entry.ID, AccountID: cashAccountID, Direction: cashDir, AmountMinor: req.AmountMinor},
	}
	return entry
}

// GetByID fetches one request.
func (s *RequestServiceImpl) GetByID(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("request")
	}
	return req, nil
}

// ListForUser lists the user's requests, optionally filtered by status.
func (s *RequestServiceImpl) ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]domain.Request, error) {
	reqs, err := s.reqRepo.ListByUser(ctx, userID, status, normalizeLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list user requests: %w", err))
	}
	return reqs, nil
}

// ListOpen lists unassigned NEW requests, oldest first.
func (s *RequestServiceImpl) ListOpen(ctx context.Context, limit int) ([]domain.Request, error) {
	reqs, err := s.reqRepo.ListOpen(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list open requests: %w", err))
	}
	return reqs, nil
}

// ListAssigned lists the admin's in-flight requests.
func (s *RequestServiceImpl) ListAssigned(ctx context.Context, adminID uuid.UUID, limit int) ([]domain.Request, error) {
	reqs, err := s.reqRepo.ListAssigned(ctx, adminID, normalizeLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list assigned requests: %w", err))
	}
	return reqs, nil
}

func (s *RequestServiceImpl) lockRequest(ctx context.Context, dbTx pgx.Tx, requestID uuid.UUID) (*domain.Request, error) {
	req, err := s.reqRepo.GetByIDForUpdate(ctx, dbTx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("request")
	}
	return req, nil
}

func (s *RequestServiceImpl) writeAudit(ctx context.Context, dbTx pgx.Tx, adminID, requestID uuid.UUID, action domain.AdminAction, from, to domain.RequestStatus, note *string) error {
	entry := &domain.AdminActionLog{
		ID:         uuid.New(),
		AdminID:    adminID,
		RequestID:  &requestID,
		Action:     action,
		FromStatus: &from,
		ToStatus:   &to,
		Note:       note,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.auditRepo.Create(ctx, dbTx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("create audit log: %w", err))
	}
	return nil
}

const defaultListLimit = 50

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return limit
}
