package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditActionFrom(t *testing.T) {
	for _, action := range []AuditAction{
		AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionFinalize, AuditActionApprove, AuditActionConfirm, AuditActionResolve,
	} {
		assert.Equal(t, action, AuditActionFrom(string(action)))
	}

	assert.Equal(t, UnknownAuditAction, AuditActionFrom("archive"))
	assert.Equal(t, UnknownAuditAction, AuditActionFrom(""))
}

func TestAnamnesisVersionCanEdit(t *testing.T) {
	assert.True(t, AnamnesisVersion{VersionNumber: 1}.CanEdit())
	assert.False(t, AnamnesisVersion{VersionNumber: 1, Finalized: true}.CanEdit())
}
