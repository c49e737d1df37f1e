package handler

import (
	"time"

	"github.com/valerpay/custody-ledger/internal/adapter/http/dto"
	"github.com/valerpay/custody-ledger/internal/adapter/http/middleware"
	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"
	"github.com/valerpay/custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles the admin request-processing, reporting and
// configuration endpoints.
type AdminHandler struct {
	requestSvc   ports.RequestService
	ledgerSvc    ports.LedgerService
	reportingSvc ports.ReportingService
	auditSvc     ports.AuditService
	configSvc    ports.PaymentConfigService
	assetCode    string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	requestSvc ports.RequestService,
	ledgerSvc ports.LedgerService,
	reportingSvc ports.ReportingService,
	auditSvc ports.AuditService,
	configSvc ports.PaymentConfigService,
	assetCode string,
) *AdminHandler {
	return &AdminHandler{
		requestSvc:   requestSvc,
		ledgerSvc:    ledgerSvc,
		reportingSvc: reportingSvc,
		auditSvc:     auditSvc,
		configSvc:    configSvc,
		assetCode:    assetCode,
	}
}

// identifiers pulls the admin identity and the :id path parameter.
func (h *AdminHandler) identifiers(c *gin.Context) (adminID, requestID uuid.UUID, ok bool) {
	adminID, ok = middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, uuid.Nil, false
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return uuid.Nil, uuid.Nil, false
	}
	return adminID, requestID, true
}

// transition runs one state-machine action and writes the resulting status.
func (h *AdminHandler) transition(c *gin.Context, fn func(ctx *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error)) {
	adminID, requestID, ok := h.identifiers(c)
	if !ok {
		return
	}

	status, err := fn(c, requestID, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatusResponse{
		RequestID: requestID.String(),
		Status:    string(status),
	})
}

// Claim handles POST /api/v1/admin/requests/:id/claim.
func (h *AdminHandler) Claim(c *gin.Context) {
	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.Claim(c.Request.Context(), requestID, adminID)
	})
}

// Approve handles POST /api/v1/admin/requests/:id/approve.
func (h *AdminHandler) Approve(c *gin.Context) {
	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.Approve(c.Request.Context(), requestID, adminID)
	})
}

// Reject handles POST /api/v1/admin/requests/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	var body dto.RejectBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.Reject(c.Request.Context(), requestID, adminID, body.Reason)
	})
}

// MarkSent handles POST /api/v1/admin/requests/:id/send.
func (h *AdminHandler) MarkSent(c *gin.Context) {
	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.MarkSent(c.Request.Context(), requestID, adminID)
	})
}

// RequestConfirmation handles POST /api/v1/admin/requests/:id/request-confirmation.
func (h *AdminHandler) RequestConfirmation(c *gin.Context) {
	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.RequestConfirmation(c.Request.Context(), requestID, adminID)
	})
}

// Complete handles POST /api/v1/admin/requests/:id/complete.
func (h *AdminHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, requestID, adminID uuid.UUID) (domain.RequestStatus, error) {
		return h.requestSvc.Complete(c.Request.Context(), requestID, adminID)
	})
}

// CreateWithdrawForUser handles POST /api/v1/admin/users/:id/withdrawals.
func (h *AdminHandler) CreateWithdrawForUser(c *gin.Context) {
	adminID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	var req dto.CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	assetCode := req.AssetCode
	if assetCode == "" {
		assetCode = h.assetCode
	}

	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.requestSvc.CreateWithdrawForUser(c.Request.Context(), adminID, ports.CreateRequestParams{
		UserID:      userID,
		AssetCode:   assetCode,
		Method:      domain.RequestMethod(req.Method),
		AmountMinor: req.AmountMinor,
		Memo:        req.Memo,
		Metadata:    req.Metadata,
	}, cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToRequestResponse(result))
}

// GetRequest handles GET /api/v1/admin/requests/:id.
func (h *AdminHandler) GetRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return
	}

	result, err := h.requestSvc.GetByID(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRequestResponse(result))
}

// ListOpen handles GET /api/v1/admin/requests/open.
func (h *AdminHandler) ListOpen(c *gin.Context) {
	requests, err := h.requestSvc.ListOpen(c.Request.Context(), queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRequestResponses(requests))
}

// ListAssigned handles GET /api/v1/admin/requests/assigned.
func (h *AdminHandler) ListAssigned(c *gin.Context) {
	adminID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	requests, err := h.requestSvc.ListAssigned(c.Request.Context(), adminID, queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRequestResponses(requests))
}

// ListLedgerEntries handles GET /api/v1/admin/ledger/entries.
func (h *AdminHandler) ListLedgerEntries(c *gin.Context) {
	entries, err := h.ledgerSvc.ListEntries(c.Request.Context(), queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToLedgerEntryResponses(entries))
}

// GetSystemCash handles GET /api/v1/admin/ledger/cash.
func (h *AdminHandler) GetSystemCash(c *gin.Context) {
	assetCode := c.Query("asset_code")
	if assetCode == "" {
		assetCode = h.assetCode
	}

	cash, err := h.ledgerSvc.SystemCashBalance(c.Request.Context(), assetCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SystemCashResponse{
		AssetCode: assetCode,
		CashMinor: cash,
	})
}

// DailyReport handles GET /api/v1/admin/reports/daily.
// Optional query param day=YYYY-MM-DD, defaults to today (UTC).
func (h *AdminHandler) DailyReport(c *gin.Context) {
	day := time.Now().UTC()
	if s := c.Query("day"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.Error(c, apperror.Validation("day must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	summary, err := h.reportingSvc.DailySummary(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToDailySummaryResponse(summary))
}

// ListAuditLogs handles GET /api/v1/admin/logs.
// Optional query params: admin_id, action, to_status, from, to, limit.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	params := ports.AuditLogListParams{Limit: queryLimit(c)}

	if s := c.Query("admin_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.Error(c, apperror.Validation("invalid admin_id"))
			return
		}
		params.AdminID = &id
	}
	if s := c.Query("action"); s != "" {
		a := domain.AdminAction(s)
		params.Action = &a
	}
	if s := c.Query("to_status"); s != "" {
		st := domain.RequestStatus(s)
		params.ToStatus = &st
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			response.Error(c, apperror.Validation("from must be RFC3339"))
			return
		}
		params.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			response.Error(c, apperror.Validation("to must be RFC3339"))
			return
		}
		params.To = &t
	}

	logs, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToAuditLogResponses(logs))
}

// GetPaymentConfig handles GET /api/v1/admin/config/payments.
func (h *AdminHandler) GetPaymentConfig(c *gin.Context) {
	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cfg)
}

// UpdatePaymentConfig handles PUT /api/v1/admin/config/payments.
func (h *AdminHandler) UpdatePaymentConfig(c *gin.Context) {
	adminID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var cfg domain.PaymentConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	updated, err := h.configSvc.Update(c.Request.Context(), adminID, cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}
