package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// CreateRequestParams carries the validated inputs for request creation.
// Metadata is an opaque payload owned by the transport layer.
type CreateRequestParams struct {
	UserID      uuid.UUID
	AssetCode   string
	Method      domain.RequestMethod
	AmountMinor int64
	Memo        *string
	Metadata    json.RawMessage
}

// RequestService is the request lifecycle state machine plus the completion
// committer. Actor identity is always an explicit parameter; the core never
// reads it from shared context.
type RequestService interface {
	CreateDeposit(ctx context.Context, p CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error)
	CreateWithdraw(ctx context.Context, p CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error)
	// CreateWithdrawForUser is the admin-initiated variant; it additionally
	// writes an ADMIN_CREATE_WITHDRAW audit row.
	CreateWithdrawForUser(ctx context.Context, adminID uuid.UUID, p CreateRequestParams, cfg domain.PaymentConfig) (*domain.Request, error)

	Claim(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)
	Approve(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)
	Reject(ctx context.Context, requestID, adminID uuid.UUID, reason *string) (domain.RequestStatus, error)
	// MarkSent records that a withdraw's funds were sent out (withdraw only).
	MarkSent(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)
	// RequestConfirmation moves a card deposit to SENT pending the user's
	// confirmation (card deposits only).
	RequestConfirmation(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)
	// Complete posts the balanced ledger entry and advances the request to
	// COMPLETED, exactly once per request.
	Complete(ctx context.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)

	GetByID(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]domain.Request, error)
	ListOpen(ctx context.Context, limit int) ([]domain.Request, error)
	ListAssigned(ctx context.Context, adminID uuid.UUID, limit int) ([]domain.Request, error)
}

// LedgerService exposes balance reads derived from the posting tables.
type LedgerService interface {
	WalletBalance(ctx context.Context, userID uuid.UUID, assetCode string) (int64, error)
	// AvailableBalance is max(0, WalletBalance - reserved pending withdraws).
	AvailableBalance(ctx context.Context, userID uuid.UUID, assetCode string) (int64, error)
	SystemCashBalance(ctx context.Context, assetCode string) (int64, error)
	ListEntries(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

// DailySummary aggregates request and ledger data for one calendar day.
type DailySummary struct {
	Day                 time.Time `json:"day"`
	TotalDepositsMinor  int64     `json:"total_deposits_minor"`
	TotalWithdrawsMinor int64     `json:"total_withdraws_minor"`
	PendingCount        int64     `json:"pending_count"`
	CompletedCount      int64     `json:"completed_count"`
	SystemCashMinor     int64     `json:"system_cash_minor"`
}

// ReportingService produces read-only aggregations.
type ReportingService interface {
	DailySummary(ctx context.Context, day time.Time) (*DailySummary, error)
}

// AuditService reads the admin action log.
type AuditService interface {
	List(ctx context.Context, params AuditLogListParams) ([]domain.AdminActionLog, error)
}

// PaymentConfigService serves and updates the payment enablement snapshot.
type PaymentConfigService interface {
	Get(ctx context.Context) (domain.PaymentConfig, error)
	Update(ctx context.Context, adminID uuid.UUID, cfg domain.PaymentConfig) (domain.PaymentConfig, error)
}

// TokenClaims is the validated content of a JWT.
type TokenClaims struct {
	SubjectID uuid.UUID
	Email     string
	Role      string // "USER", "ADMIN" or "SUPER_ADMIN"
}

// TokenService issues and validates JWTs.
type TokenService interface {
	Generate(subjectID uuid.UUID, email, role string) (token string, expiry int64, err error)
	Validate(token string) (*TokenClaims, error)
}

// HashService hashes and verifies passwords.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AuthService authenticates users and admins.
type AuthService interface {
	LoginUser(ctx context.Context, email, password string) (*LoginResult, error)
	LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error)
	RegisterUser(ctx context.Context, email, password string) (*domain.User, error)
}

// ConfigCache caches the serialized payment config snapshot.
type ConfigCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts events in a fixed window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
