package models

import (
	"time"
)

// AuditLog is one immutable line of the global audit trail. Entries are only
// ever appended: nothing in the system updates or deletes them.
type AuditLog struct {
	Id          string
	Entity      string
	EntityId    string
	Action      AuditAction
	PerformedBy string
	PerformedAt time.Time
	Details     string
}

type AuditAction string

const (
	AuditActionCreate   AuditAction = "create"
	AuditActionUpdate   AuditAction = "update"
	AuditActionDelete   AuditAction = "delete"
	AuditActionFinalize AuditAction = "finalize"
	AuditActionApprove  AuditAction = "approve"
	AuditActionConfirm  AuditAction = "confirm"
	AuditActionResolve  AuditAction = "resolve"
	UnknownAuditAction  AuditAction = "unknown"
)

func AuditActionFrom(s string) AuditAction {
	switch s {
	case "create":
		return AuditActionCreate
	case "update":
		return AuditActionUpdate
	case "delete":
		return AuditActionDelete
	case "finalize":
		return AuditActionFinalize
	case "approve":
		return AuditActionApprove
	case "confirm":
		return AuditActionConfirm
	case "resolve":
		return AuditActionResolve
	default:
		return UnknownAuditAction
	}
}

type CreateAuditLogAttributes struct {
	Entity      string
	EntityId    string
	Action      AuditAction
	PerformedBy string
	Details     *string
}

// AuditLogFilters compose: zero values mean "no constraint" for that field.
type AuditLogFilters struct {
	Entity      string
	EntityId    string
	Action      AuditAction
	PerformedBy string
	From        time.Time
	To          time.Time
}
