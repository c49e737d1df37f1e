package handler

import (
	"strconv"

	"github.com/valerpay/custody-ledger/internal/adapter/http/dto"
	"github.com/valerpay/custody-ledger/internal/adapter/http/middleware"
	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"
	"github.com/valerpay/custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-facing request and balance endpoints.
type UserHandler struct {
	requestSvc ports.RequestService
	ledgerSvc  ports.LedgerService
	configSvc  ports.PaymentConfigService
	assetCode  string
}

// NewUserHandler creates a new UserHandler. assetCode is the platform's
// default asset, applied when a request body omits asset_code.
func NewUserHandler(requestSvc ports.RequestService, ledgerSvc ports.LedgerService, configSvc ports.PaymentConfigService, assetCode string) *UserHandler {
	return &UserHandler{
		requestSvc: requestSvc,
		ledgerSvc:  ledgerSvc,
		configSvc:  configSvc,
		assetCode:  assetCode,
	}
}

func (h *UserHandler) createParams(c *gin.Context, req dto.CreateRequestBody) (ports.CreateRequestParams, bool) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return ports.CreateRequestParams{}, false
	}

	assetCode := req.AssetCode
	if assetCode == "" {
		assetCode = h.assetCode
	}

	return ports.CreateRequestParams{
		UserID:      userID,
		AssetCode:   assetCode,
		Method:      domain.RequestMethod(req.Method),
		AmountMinor: req.AmountMinor,
		Memo:        req.Memo,
		Metadata:    req.Metadata,
	}, true
}

// CreateDeposit handles POST /api/v1/user/requests/deposit.
func (h *UserHandler) CreateDeposit(c *gin.Context) {
	var req dto.CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params, ok := h.createParams(c, req)
	if !ok {
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.requestSvc.CreateDeposit(c.Request.Context(), params, cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToRequestResponse(result))
}

// CreateWithdraw handles POST /api/v1/user/requests/withdraw.
func (h *UserHandler) CreateWithdraw(c *gin.Context) {
	var req dto.CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params, ok := h.createParams(c, req)
	if !ok {
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.requestSvc.CreateWithdraw(c.Request.Context(), params, cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToRequestResponse(result))
}

// ListRequests handles GET /api/v1/user/requests.
// Optional query params: status, limit.
func (h *UserHandler) ListRequests(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var status *domain.RequestStatus
	if s := c.Query("status"); s != "" {
		rs := domain.RequestStatus(s)
		status = &rs
	}

	requests, err := h.requestSvc.ListForUser(c.Request.Context(), userID, status, queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRequestResponses(requests))
}

// GetBalance handles GET /api/v1/user/balance.
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	assetCode := c.Query("asset_code")
	if assetCode == "" {
		assetCode = h.assetCode
	}

	ctx := c.Request.Context()
	balance, err := h.ledgerSvc.WalletBalance(ctx, userID, assetCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	available, err := h.ledgerSvc.AvailableBalance(ctx, userID, assetCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AssetCode:      assetCode,
		BalanceMinor:   balance,
		AvailableMinor: available,
	})
}

// GetPaymentConfig handles GET /api/v1/user/config/payments.
// Returns the enablement snapshot plus the platform's receiving coordinates.
func (h *UserHandler) GetPaymentConfig(c *gin.Context) {
	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cfg)
}

// queryLimit parses the optional limit query parameter. Zero means the
// service default.
func queryLimit(c *gin.Context) int {
	s := c.Query("limit")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
