package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RequestType represents the direction of a money-movement request.
type RequestType string

const (
	RequestTypeDeposit  RequestType = "DEPOSIT"
	RequestTypeWithdraw RequestType = "WITHDRAW"
)

// RequestMethod is the payment rail the user picked.
type RequestMethod string

const (
	MethodBank   RequestMethod = "BANK"
	MethodCard   RequestMethod = "CARD"
	MethodCrypto RequestMethod = "CRYPTO"
)

// RequestStatus is the lifecycle state of a request.
// Valid flow: NEW -> ASSIGNED -> APPROVED -> (REJECTED | SENT) -> COMPLETED.
type RequestStatus string

const (
	StatusNew       RequestStatus = "NEW"
	StatusAssigned  RequestStatus = "ASSIGNED"
	StatusApproved  RequestStatus = "APPROVED"
	StatusSent      RequestStatus = "SENT"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusRejected  RequestStatus = "REJECTED"
)

// PendingStatuses are the states in which a withdraw request still reserves
// wallet balance.
var PendingStatuses = []RequestStatus{StatusNew, StatusAssigned, StatusApproved, StatusSent}

// Request is a user's instruction to move money. Created by a user action,
// mutated only by admin actions through the state machine, never deleted.
type Request struct {
	ID              uuid.UUID       `json:"id"`
	Type            RequestType     `json:"type"`
	Method          RequestMethod   `json:"method"`
	AssetID         uuid.UUID       `json:"asset_id"`
	UserID          uuid.UUID       `json:"user_id"`
	AmountMinor     int64           `json:"amount_minor"`
	Memo            *string         `json:"memo,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"` // opaque to the core
	Status          RequestStatus   `json:"status"`
	AssignedAdminID *uuid.UUID      `json:"assigned_admin_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsTerminal returns true when no further transition is permitted.
func (r *Request) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusRejected
}

// IsAssignedTo reports whether the request is held by the given admin.
func (r *Request) IsAssignedTo(adminID uuid.UUID) bool {
	return r.AssignedAdminID != nil && *r.AssignedAdminID == adminID
}

// CompletesFrom returns the status a request must hold before Complete may
// post the ledger entry. Bank/crypto deposits complete straight from
// APPROVED; card deposits and all withdraws need the SENT confirmation first.
func (r *Request) CompletesFrom() RequestStatus {
	if r.Type == RequestTypeWithdraw {
		return StatusSent
	}
	if r.Method == MethodCard {
		return StatusSent
	}
	return StatusApproved
}

// ValidMethod reports whether m is a known payment method.
func ValidMethod(m RequestMethod) bool {
	switch m {
	case MethodBank, MethodCard, MethodCrypto:
		return true
	}
	return false
}
