package models

import (
	"time"
)

// UserAccount is the actor directory record for caregiving staff. Identity
// provisioning lives outside the core; version creators and audit performers
// reference user accounts by id only.
type UserAccount struct {
	Id         string
	KeycloakId string
	Role       UserRole
	CreatedAt  time.Time
}

type UserRole string

const (
	RoleCaregiver UserRole = "caregiver"
	RoleNurse     UserRole = "nurse"
	RoleAdmin     UserRole = "admin"
	UnknownRole   UserRole = "unknown"
)

func UserRoleFrom(s string) UserRole {
	switch s {
	case "caregiver":
		return RoleCaregiver
	case "nurse":
		return RoleNurse
	case "admin":
		return RoleAdmin
	default:
		return UnknownRole
	}
}
