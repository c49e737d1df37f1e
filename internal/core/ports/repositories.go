package ports

import (
	"context"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssetRepository defines persistence operations for assets.
type AssetRepository interface {
	Create(ctx context.Context, a *domain.Asset) error
	GetByCode(ctx context.Context, code string) (*domain.Asset, error)
}

// AccountRepository manages ledger accounts. Both lookups are
// lookup-or-create and must run inside the committer's transaction.
type AccountRepository interface {
	GetOrCreateUserWallet(ctx context.Context, tx pgx.Tx, userID, assetID uuid.UUID) (*domain.LedgerAccount, error)
	GetOrCreateSystemCash(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (*domain.LedgerAccount, error)
}

// LedgerRepository owns the append-only entry/line tables and the balance
// aggregates derived from them.
type LedgerRepository interface {
	// CreateEntry persists an entry with its lines inside a transaction.
	CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error
	// EntryExistsForRequest checks the one-entry-per-request invariant.
	// Must run inside the same transaction as the subsequent CreateEntry.
	EntryExistsForRequest(ctx context.Context, tx pgx.Tx, requestID uuid.UUID) (bool, error)
	// WalletBalance computes sum(DEBIT) - sum(CREDIT) over the user's wallet
	// account. Returns 0 when the account does not exist.
	WalletBalance(ctx context.Context, userID, assetID uuid.UUID) (int64, error)
	// SystemCashBalance computes sum(CREDIT) - sum(DEBIT) over the system
	// cash account. The sign is deliberately inverted relative to
	// WalletBalance: the cash account is credited on deposits.
	SystemCashBalance(ctx context.Context, assetID uuid.UUID) (int64, error)
	ListEntries(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

// RequestRepository defines persistence for money-movement requests.
// Every status change goes through a conditional update so that lost races
// surface as a failed guard, never as a double-applied transition.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	// GetByIDForUpdate locks the request row for the duration of tx.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Request, error)
	// ClaimIfNew atomically assigns the request to adminID, only if the row
	// is still NEW. Returns false when the guard did not match.
	ClaimIfNew(ctx context.Context, tx pgx.Tx, id, adminID uuid.UUID) (bool, error)
	// TransitionStatus moves status from -> to only if the row currently
	// holds `from` and is assigned to adminID. Returns false otherwise.
	TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.RequestStatus, adminID uuid.UUID) (bool, error)
	// SetMemo overwrites the request memo (reject reason).
	SetMemo(ctx context.Context, tx pgx.Tx, id uuid.UUID, memo string) error
	// ReservedWithdrawMinor sums the user's withdraw requests still in a
	// pending status for the asset.
	ReservedWithdrawMinor(ctx context.Context, userID, assetID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]domain.Request, error)
	// ListOpen returns unassigned NEW requests (the shared queue).
	ListOpen(ctx context.Context, limit int) ([]domain.Request, error)
	// ListAssigned returns the admin's in-flight requests.
	ListAssigned(ctx context.Context, adminID uuid.UUID, limit int) ([]domain.Request, error)
	CountByStatuses(ctx context.Context, statuses []domain.RequestStatus) (int64, error)
	// SumCompletedInWindow totals completed requests of one type created in
	// [from, to) for the asset.
	SumCompletedInWindow(ctx context.Context, t domain.RequestType, assetID uuid.UUID, from, to time.Time) (int64, error)
}

// AuditLogRepository persists admin action log rows.
type AuditLogRepository interface {
	// Create appends one audit row inside the transition's transaction.
	Create(ctx context.Context, tx pgx.Tx, l *domain.AdminActionLog) error
	List(ctx context.Context, params AuditLogListParams) ([]domain.AdminActionLog, error)
}

// AuditLogListParams holds filters for listing audit rows.
type AuditLogListParams struct {
	AdminID  *uuid.UUID
	Action   *domain.AdminAction
	ToStatus *domain.RequestStatus
	From     *time.Time
	To       *time.Time
	Limit    int
}

// UserRepository defines persistence for end users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AdminRepository defines persistence for admin users. Creation happens
// through the seed tool only, there is no admin self-registration.
type AdminRepository interface {
	Create(ctx context.Context, a *domain.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// AppConfigRepository stores JSON configuration documents by key.
type AppConfigRepository interface {
	// Get returns nil, nil when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Upsert(ctx context.Context, key string, value []byte) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
