package repositories

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

// CreateAuditLog appends one entry to the audit trail. There is no update or
// delete counterpart anywhere in the repository: the table is append-only.
func (repo *CareDbRepository) CreateAuditLog(
	ctx context.Context,
	exec Executor,
	attrs models.CreateAuditLogAttributes,
	newAuditLogId string,
) error {
	var performedBy *string
	if attrs.PerformedBy != "" {
		performedBy = &attrs.PerformedBy
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_AUDIT_LOGS).
			Columns(
				"id",
				"entity",
				"entity_id",
				"action",
				"performed_by",
				"details",
			).
			Values(
				newAuditLogId,
				attrs.Entity,
				attrs.EntityId,
				attrs.Action,
				performedBy,
				attrs.Details,
			),
	)
}

func (repo *CareDbRepository) GetAuditLogById(
	ctx context.Context,
	exec Executor,
	auditLogId string,
) (models.AuditLog, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAuditLogColumns...).
			From(dbmodels.TABLE_AUDIT_LOGS).
			Where(squirrel.Eq{"id": auditLogId}),
		dbmodels.AdaptAuditLog,
	)
}

func (repo *CareDbRepository) ListAuditLogs(
	ctx context.Context,
	exec Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLog, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditLogColumns...).
		From(dbmodels.TABLE_AUDIT_LOGS).
		OrderBy("performed_at DESC, id DESC")

	if filters.Entity != "" {
		query = query.Where(squirrel.Eq{"entity": filters.Entity})
	}
	if filters.EntityId != "" {
		query = query.Where(squirrel.Eq{"entity_id": filters.EntityId})
	}
	if filters.Action != "" {
		query = query.Where(squirrel.Eq{"action": filters.Action})
	}
	if filters.PerformedBy != "" {
		query = query.Where(squirrel.Eq{"performed_by": filters.PerformedBy})
	}
	if !filters.From.IsZero() {
		query = query.Where("performed_at >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("performed_at <= ?", filters.To)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditLog)
}
