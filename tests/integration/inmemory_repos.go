package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Asset Repo ---

type inMemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]*domain.Asset
}

func newInMemoryAssetRepo() *inMemoryAssetRepo {
	return &inMemoryAssetRepo{assets: make(map[uuid.UUID]*domain.Asset)}
}

func (r *inMemoryAssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.assets {
		if existing.Code == a.Code {
			return fmt.Errorf("asset code already exists")
		}
	}
	r.assets[a.ID] = a
	return nil
}

func (r *inMemoryAssetRepo) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assets {
		if a.Code == code {
			return a, nil
		}
	}
	return nil, nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.LedgerAccount
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.LedgerAccount)}
}

func (r *inMemoryAccountRepo) GetOrCreateUserWallet(ctx context.Context, tx pgx.Tx, userID, assetID uuid.UUID) (*domain.LedgerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Type == domain.AccountUserWallet && a.AssetID == assetID && a.UserID != nil && *a.UserID == userID {
			return a, nil
		}
	}
	uid := userID
	a := &domain.LedgerAccount{
		ID:        uuid.New(),
		Type:      domain.AccountUserWallet,
		AssetID:   assetID,
		UserID:    &uid,
		CreatedAt: time.Now().UTC(),
	}
	r.accounts[a.ID] = a
	return a, nil
}

func (r *inMemoryAccountRepo) GetOrCreateSystemCash(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (*domain.LedgerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Type == domain.AccountSystemCash && a.AssetID == assetID {
			return a, nil
		}
	}
	a := &domain.LedgerAccount{
		ID:        uuid.New(),
		Type:      domain.AccountSystemCash,
		AssetID:   assetID,
		CreatedAt: time.Now().UTC(),
	}
	r.accounts[a.ID] = a
	return a, nil
}

func (r *inMemoryAccountRepo) get(id uuid.UUID) *domain.LedgerAccount {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[id]
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu       sync.RWMutex
	entries  map[uuid.UUID]*domain.LedgerEntry
	accounts *inMemoryAccountRepo
}

func newInMemoryLedgerRepo(accounts *inMemoryAccountRepo) *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{
		entries:  make(map[uuid.UUID]*domain.LedgerEntry),
		accounts: accounts,
	}
}

func (r *inMemoryLedgerRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.RequestID != nil {
		for _, existing := range r.entries {
			if existing.RequestID != nil && *existing.RequestID == *e.RequestID {
				return fmt.Errorf("entry already exists for request")
			}
		}
	}
	cp := *e
	cp.Lines = append([]domain.LedgerLine(nil), e.Lines...)
	r.entries[e.ID] = &cp
	return nil
}

func (r *inMemoryLedgerRepo) EntryExistsForRequest(ctx context.Context, tx pgx.Tx, requestID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.RequestID != nil && *e.RequestID == requestID {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryLedgerRepo) balance(match func(*domain.LedgerAccount) bool, debitPositive bool) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, e := range r.entries {
		for _, l := range e.Lines {
			acct := r.accounts.get(l.AccountID)
			if acct == nil || !match(acct) {
				continue
			}
			sign := int64(1)
			if (l.Direction == domain.Debit) != debitPositive {
				sign = -1
			}
			total += sign * l.AmountMinor
		}
	}
	return total
}

func (r *inMemoryLedgerRepo) WalletBalance(ctx context.Context, userID, assetID uuid.UUID) (int64, error) {
	return r.balance(func(a *domain.LedgerAccount) bool {
		return a.Type == domain.AccountUserWallet && a.AssetID == assetID && a.UserID != nil && *a.UserID == userID
	}, true), nil
}

func (r *inMemoryLedgerRepo) SystemCashBalance(ctx context.Context, assetID uuid.UUID) (int64, error) {
	return r.balance(func(a *domain.LedgerAccount) bool {
		return a.Type == domain.AccountSystemCash && a.AssetID == assetID
	}, false), nil
}

func (r *inMemoryLedgerRepo) ListEntries(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LedgerEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// --- In-Memory Request Repo ---

type inMemoryRequestRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*domain.Request
}

func newInMemoryRequestRepo() *inMemoryRequestRepo {
	return &inMemoryRequestRepo{requests: make(map[uuid.UUID]*domain.Request)}
}

func (r *inMemoryRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryRequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Request, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryRequestRepo) ClaimIfNew(ctx context.Context, tx pgx.Tx, id, adminID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != domain.StatusNew || req.AssignedAdminID != nil {
		return false, nil
	}
	aid := adminID
	req.Status = domain.StatusAssigned
	req.AssignedAdminID = &aid
	req.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryRequestRepo) TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.RequestStatus, adminID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != from || req.AssignedAdminID == nil || *req.AssignedAdminID != adminID {
		return false, nil
	}
	req.Status = to
	req.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryRequestRepo) SetMemo(ctx context.Context, tx pgx.Tx, id uuid.UUID, memo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return fmt.Errorf("request not found")
	}
	req.Memo = &memo
	return nil
}

func (r *inMemoryRequestRepo) ReservedWithdrawMinor(ctx context.Context, userID, assetID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, req := range r.requests {
		if req.Type != domain.RequestTypeWithdraw || req.UserID != userID || req.AssetID != assetID {
			continue
		}
		for _, s := range domain.PendingStatuses {
			if req.Status == s {
				total += req.AmountMinor
				break
			}
		}
	}
	return total, nil
}

func (r *inMemoryRequestRepo) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Request
	for _, req := range r.requests {
		if req.UserID != userID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *inMemoryRequestRepo) ListOpen(ctx context.Context, limit int) ([]domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Request
	for _, req := range r.requests {
		if req.Status == domain.StatusNew {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *inMemoryRequestRepo) ListAssigned(ctx context.Context, adminID uuid.UUID, limit int) ([]domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Request
	for _, req := range r.requests {
		if req.AssignedAdminID == nil || *req.AssignedAdminID != adminID {
			continue
		}
		switch req.Status {
		case domain.StatusAssigned, domain.StatusApproved, domain.StatusSent:
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *inMemoryRequestRepo) CountByStatuses(ctx context.Context, statuses []domain.RequestStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, req := range r.requests {
		for _, s := range statuses {
			if req.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *inMemoryRequestRepo) SumCompletedInWindow(ctx context.Context, t domain.RequestType, assetID uuid.UUID, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, req := range r.requests {
		if req.Type != t || req.AssetID != assetID || req.Status != domain.StatusCompleted {
			continue
		}
		if req.CreatedAt.Before(from) || !req.CreatedAt.Before(to) {
			continue
		}
		total += req.AmountMinor
	}
	return total, nil
}

// --- In-Memory Audit Log Repo ---

type inMemoryAuditRepo struct {
	mu   sync.RWMutex
	logs []domain.AdminActionLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.AdminActionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *l)
	return nil
}

func (r *inMemoryAuditRepo) List(ctx context.Context, params ports.AuditLogListParams) ([]domain.AdminActionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AdminActionLog
	for _, l := range r.logs {
		if params.AdminID != nil && l.AdminID != *params.AdminID {
			continue
		}
		if params.Action != nil && l.Action != *params.Action {
			continue
		}
		if params.ToStatus != nil && (l.ToStatus == nil || *l.ToStatus != *params.ToStatus) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// rowsForRequest counts audit rows referencing one request.
func (r *inMemoryAuditRepo) rowsForRequest(requestID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.logs {
		if l.RequestID != nil && *l.RequestID == requestID {
			n++
		}
	}
	return n
}

// --- In-Memory User / Admin Repos ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type inMemoryAdminRepo struct {
	mu     sync.RWMutex
	admins map[uuid.UUID]*domain.AdminUser
}

func newInMemoryAdminRepo() *inMemoryAdminRepo {
	return &inMemoryAdminRepo{admins: make(map[uuid.UUID]*domain.AdminUser)}
}

func (r *inMemoryAdminRepo) seed(a *domain.AdminUser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[a.ID] = a
}

func (r *inMemoryAdminRepo) Create(ctx context.Context, a *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *inMemoryAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *inMemoryAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

// --- In-Memory App Config Repo ---

type inMemoryAppConfigRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func newInMemoryAppConfigRepo() *inMemoryAppConfigRepo {
	return &inMemoryAppConfigRepo{values: make(map[string][]byte)}
}

func (r *inMemoryAppConfigRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *inMemoryAppConfigRepo) Upsert(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append([]byte(nil), value...)
	return nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
