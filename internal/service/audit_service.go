package service

import (
	"context"
	"fmt"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService.
type AuditServiceImpl struct {
	auditRepo ports.AuditLogRepository
	log       zerolog.Logger
}

// NewAuditService creates a new AuditServiceImpl.
func NewAuditService(auditRepo ports.AuditLogRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo, log: log}
}

// List fetches admin action log rows matching the filters, newest first.
func (s *AuditServiceImpl) List(ctx context.Context, params ports.AuditLogListParams) ([]domain.AdminActionLog, error) {
	params.Limit = normalizeLimit(params.Limit)
	logs, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list audit logs: %w", err))
	}
	return logs, nil
}
