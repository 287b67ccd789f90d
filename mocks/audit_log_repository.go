package mocks

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"

	"github.com/stretchr/testify/mock"
)

type AuditLogRepository struct {
	mock.Mock
}

func (r *AuditLogRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	attrs models.CreateAuditLogAttributes, newAuditLogId string,
) error {
	args := r.Called(ctx, exec, attrs, newAuditLogId)
	return args.Error(0)
}

func (r *AuditLogRepository) GetAuditLogById(ctx context.Context, exec repositories.Executor,
	auditLogId string,
) (models.AuditLog, error) {
	args := r.Called(ctx, exec, auditLogId)
	return args.Get(0).(models.AuditLog), args.Error(1)
}

func (r *AuditLogRepository) ListAuditLogs(ctx context.Context, exec repositories.Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLog, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.AuditLog), args.Error(1)
}

type AuditTrail struct {
	mock.Mock
}

func (t *AuditTrail) RecordAction(ctx context.Context, attrs models.CreateAuditLogAttributes,
) (models.AuditLog, error) {
	args := t.Called(ctx, attrs)
	return args.Get(0).(models.AuditLog), args.Error(1)
}
