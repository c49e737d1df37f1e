package dto

import (
	"encoding/json"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for user and admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateRequestBody is the request body for deposit/withdraw creation.
type CreateRequestBody struct {
	AssetCode   string          `json:"asset_code" binding:"omitempty,min=2,max=10"`
	Method      string          `json:"method" binding:"required,oneof=BANK CARD CRYPTO"`
	AmountMinor int64           `json:"amount_minor" binding:"required,gt=0"`
	Memo        *string         `json:"memo,omitempty" binding:"omitempty,max=500"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// RejectBody carries the optional rejection reason.
type RejectBody struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// RequestResponse is the wire form of a request record.
type RequestResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Method          string          `json:"method"`
	AssetID         string          `json:"asset_id"`
	UserID          string          `json:"user_id"`
	AmountMinor     int64           `json:"amount_minor"`
	Memo            *string         `json:"memo,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	Status          string          `json:"status"`
	AssignedAdminID *string         `json:"assigned_admin_id,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// ToRequestResponse converts a domain request to its wire form.
func ToRequestResponse(r *domain.Request) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID.String(),
		Type:        string(r.Type),
		Method:      string(r.Method),
		AssetID:     r.AssetID.String(),
		UserID:      r.UserID.String(),
		AmountMinor: r.AmountMinor,
		Memo:        r.Memo,
		Metadata:    r.Metadata,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
	if r.AssignedAdminID != nil {
		s := r.AssignedAdminID.String()
		resp.AssignedAdminID = &s
	}
	return resp
}

// ToRequestResponses converts a slice of domain requests.
func ToRequestResponses(reqs []domain.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, ToRequestResponse(&reqs[i]))
	}
	return out
}

// StatusResponse reports the request status after a transition.
type StatusResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// BalanceResponse is the response for balance queries.
type BalanceResponse struct {
	AssetCode      string `json:"asset_code"`
	BalanceMinor   int64  `json:"balance_minor"`
	AvailableMinor int64  `json:"available_minor"`
}

// SystemCashResponse is the operator cash position.
type SystemCashResponse struct {
	AssetCode string `json:"asset_code"`
	CashMinor int64  `json:"cash_minor"`
}

// LedgerLineResponse is one posting leg.
type LedgerLineResponse struct {
	AccountID   string `json:"account_id"`
	Direction   string `json:"direction"`
	AmountMinor int64  `json:"amount_minor"`
}

// LedgerEntryResponse is the wire form of a ledger entry with its lines.
type LedgerEntryResponse struct {
	ID        string               `json:"id"`
	RequestID *string              `json:"request_id,omitempty"`
	Memo      string               `json:"memo"`
	CreatedAt string               `json:"created_at"`
	Lines     []LedgerLineResponse `json:"lines"`
}

// ToLedgerEntryResponses converts domain entries to wire form.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := LedgerEntryResponse{
			ID:        e.ID.String(),
			Memo:      e.Memo,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
		if e.RequestID != nil {
			s := e.RequestID.String()
			resp.RequestID = &s
		}
		for _, l := range e.Lines {
			resp.Lines = append(resp.Lines, LedgerLineResponse{
				AccountID:   l.AccountID.String(),
				Direction:   string(l.Direction),
				AmountMinor: l.AmountMinor,
			})
		}
		out = append(out, resp)
	}
	return out
}

// AuditLogResponse is the wire form of one admin action log row.
type AuditLogResponse struct {
	ID         string  `json:"id"`
	AdminID    string  `json:"admin_id"`
	RequestID  *string `json:"request_id,omitempty"`
	Action     string  `json:"action"`
	FromStatus *string `json:"from_status,omitempty"`
	ToStatus   *string `json:"to_status,omitempty"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ToAuditLogResponses converts domain audit rows to wire form.
func ToAuditLogResponses(logs []domain.AdminActionLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := AuditLogResponse{
			ID:        l.ID.String(),
			AdminID:   l.AdminID.String(),
			Action:    string(l.Action),
			Note:      l.Note,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		}
		if l.RequestID != nil {
			s := l.RequestID.String()
			resp.RequestID = &s
		}
		if l.FromStatus != nil {
			s := string(*l.FromStatus)
			resp.FromStatus = &s
		}
		if l.ToStatus != nil {
			s := string(*l.ToStatus)
			resp.ToStatus = &s
		}
		out = append(out, resp)
	}
	return out
}

// DailySummaryResponse is the wire form of the daily report.
type DailySummaryResponse struct {
	Day                 string `json:"day"`
	TotalDepositsMinor  int64  `json:"total_deposits_minor"`
	TotalWithdrawsMinor int64  `json:"total_withdraws_minor"`
	PendingCount        int64  `json:"pending_count"`
	CompletedCount      int64  `json:"completed_count"`
	SystemCashMinor     int64  `json:"system_cash_minor"`
}

// ToDailySummaryResponse converts the service aggregate to wire form.
func ToDailySummaryResponse(s *ports.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Day:                 s.Day.Format("2006-01-02"),
		TotalDepositsMinor:  s.TotalDepositsMinor,
		TotalWithdrawsMinor: s.TotalWithdrawsMinor,
		PendingCount:        s.PendingCount,
		CompletedCount:      s.CompletedCount,
		SystemCashMinor:     s.SystemCashMinor,
	}
}
