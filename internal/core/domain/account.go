package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerAccountType identifies the two account kinds of the ledger.
type LedgerAccountType string

const (
	// AccountSystemCash is the platform's pooled cash position, one per asset.
	AccountSystemCash LedgerAccountType = "SYSTEM_CASH"
	// AccountUserWallet is a per-(user, asset) wallet account.
	AccountUserWallet LedgerAccountType = "USER_WALLET"
)

// LedgerAccount is a ledger account for one asset. SYSTEM_CASH accounts have
// no owning user. Accounts are created lazily on first use.
type LedgerAccount struct {
	ID        uuid.UUID         `json:"id"`
	Type      LedgerAccountType `json:"type"`
	AssetID   uuid.UUID         `json:"asset_id"`
	UserID    *uuid.UUID        `json:"user_id,omitempty"` // nil for SYSTEM_CASH
	CreatedAt time.Time         `json:"created_at"`
}
