package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminAction names a state-machine transition performed by an admin.
type AdminAction string

const (
	ActionClaim               AdminAction = "CLAIM"
	ActionApprove             AdminAction = "APPROVE"
	ActionReject              AdminAction = "REJECT"
	ActionSend                AdminAction = "SEND"
	ActionRequestConfirmation AdminAction = "REQUEST_CONFIRMATION"
	ActionComplete            AdminAction = "COMPLETE"
	ActionAdminCreateWithdraw AdminAction = "ADMIN_CREATE_WITHDRAW"
	ActionUpdateConfig        AdminAction = "UPDATE_CONFIG"
)

// AdminActionLog is an immutable audit row written for every state-machine
// transition an admin performs.
type AdminActionLog struct {
	ID         uuid.UUID      `json:"id"`
	AdminID    uuid.UUID      `json:"admin_id"`
	RequestID  *uuid.UUID     `json:"request_id,omitempty"`
	Action     AdminAction    `json:"action"`
	FromStatus *RequestStatus `json:"from_status,omitempty"`
	ToStatus   *RequestStatus `json:"to_status,omitempty"`
	Note       *string        `json:"note,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
