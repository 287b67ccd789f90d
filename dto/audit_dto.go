package dto

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"

	"github.com/guregu/null/v5"
)

type AuditLog struct {
	Id          string      `json:"id"`
	Entity      string      `json:"entity"`
	EntityId    string      `json:"entity_id"`
	Action      string      `json:"action"`
	PerformedBy null.String `json:"performed_by"`
	PerformedAt time.Time   `json:"performed_at"`
	Details     null.String `json:"details"`
}

func AdaptAuditLogDto(log models.AuditLog) AuditLog {
	return AuditLog{
		Id:          log.Id,
		Entity:      log.Entity,
		EntityId:    log.EntityId,
		Action:      string(log.Action),
		PerformedBy: null.NewString(log.PerformedBy, log.PerformedBy != ""),
		PerformedAt: log.PerformedAt,
		Details:     null.NewString(log.Details, log.Details != ""),
	}
}

type CreateAuditLogBody struct {
	Entity      string  `json:"entity" binding:"required"`
	EntityId    string  `json:"entity_id" binding:"required"`
	Action      string  `json:"action" binding:"required"`
	PerformedBy string  `json:"performed_by" binding:"omitempty,uuid"`
	Details     *string `json:"details"`
}

type AuditLogFiltersInput struct {
	Entity      string    `form:"entity"`
	EntityId    string    `form:"entity_id"`
	Action      string    `form:"action"`
	PerformedBy string    `form:"performed_by" binding:"omitempty,uuid"`
	From        time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

func AdaptAuditLogFilters(input AuditLogFiltersInput) models.AuditLogFilters {
	return models.AuditLogFilters{
		Entity:      input.Entity,
		EntityId:    input.EntityId,
		Action:      models.AuditAction(input.Action),
		PerformedBy: input.PerformedBy,
		From:        input.From,
		To:          input.To,
	}
}
