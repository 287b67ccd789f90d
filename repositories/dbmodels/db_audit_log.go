package dbmodels

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/pure_utils"
	"github.com/sixtosix/sixtosix-backend/utils"
)

type DBAuditLog struct {
	Id          string    `db:"id"`
	Entity      string    `db:"entity"`
	EntityId    string    `db:"entity_id"`
	Action      string    `db:"action"`
	PerformedBy *string   `db:"performed_by"`
	PerformedAt time.Time `db:"performed_at"`
	Details     *string   `db:"details"`
}

const TABLE_AUDIT_LOGS = "audit_logs"

var SelectAuditLogColumns = utils.ColumnList[DBAuditLog]()

func AdaptAuditLog(db DBAuditLog) (models.AuditLog, error) {
	return models.AuditLog{
		Id:          db.Id,
		Entity:      db.Entity,
		EntityId:    db.EntityId,
		Action:      models.AuditActionFrom(db.Action),
		PerformedBy: pure_utils.PtrValueOrDefault(db.PerformedBy, ""),
		PerformedAt: db.PerformedAt,
		Details:     pure_utils.PtrValueOrDefault(db.Details, ""),
	}, nil
}
