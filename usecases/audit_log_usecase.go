package usecases

import (
	"context"
	"strings"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/usecases/executor_factory"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type AuditLogUsecaseRepository interface {
	CreateAuditLog(ctx context.Context, exec repositories.Executor,
		attrs models.CreateAuditLogAttributes, newAuditLogId string) error
	GetAuditLogById(ctx context.Context, exec repositories.Executor, auditLogId string) (models.AuditLog, error)
	ListAuditLogs(ctx context.Context, exec repositories.Executor,
		filters models.AuditLogFilters) ([]models.AuditLog, error)
}

type AuditLogUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      AuditLogUsecaseRepository
	userRepository  userAccountReader
}

// RecordAction appends one entry to the audit trail. The trail is
// append-only: there is no update or delete counterpart anywhere in the
// service.
func (usecase *AuditLogUsecase) RecordAction(
	ctx context.Context,
	attrs models.CreateAuditLogAttributes,
) (models.AuditLog, error) {
	if strings.TrimSpace(attrs.Entity) == "" {
		return models.AuditLog{}, errors.Wrap(models.BadParameterError, "audit entity must not be blank")
	}
	if strings.TrimSpace(attrs.EntityId) == "" {
		return models.AuditLog{}, errors.Wrap(models.BadParameterError, "audit entity id must not be blank")
	}
	if models.AuditActionFrom(string(attrs.Action)) == models.UnknownAuditAction {
		return models.AuditLog{}, errors.Wrap(models.BadParameterError,
			"unknown audit action "+string(attrs.Action))
	}

	exec := usecase.executorFactory.NewExecutor()
	if attrs.PerformedBy != "" {
		if _, err := usecase.userRepository.GetUserAccountById(ctx, exec, attrs.PerformedBy); err != nil {
			return models.AuditLog{}, errors.Wrap(err, "could not resolve audit performer")
		}
	}

	newAuditLogId := uuid.NewString()
	if err := usecase.repository.CreateAuditLog(ctx, exec, attrs, newAuditLogId); err != nil {
		return models.AuditLog{}, err
	}
	return usecase.repository.GetAuditLogById(ctx, exec, newAuditLogId)
}

// ListAuditLogs returns trail entries most recent first, optionally narrowed
// by entity, action, performer or time window.
func (usecase *AuditLogUsecase) ListAuditLogs(
	ctx context.Context,
	filters models.AuditLogFilters,
) ([]models.AuditLog, error) {
	if filters.Action != "" && models.AuditActionFrom(string(filters.Action)) == models.UnknownAuditAction {
		return nil, errors.Wrap(models.BadParameterError,
			"unknown audit action filter "+string(filters.Action))
	}
	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListAuditLogs(ctx, exec, filters)
}
