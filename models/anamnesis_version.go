package models

import (
	"time"
)

// AnamnesisVersion is one snapshot of anamnesis content. Version numbers are
// contiguous starting at 1 and unique within an anamnesis. Once Finalized is
// true the version can never be edited again, Finalized included.
type AnamnesisVersion struct {
	Id            string
	AnamnesisId   string
	VersionNumber int
	Content       string
	CreatedBy     string
	CreatedAt     time.Time
	Finalized     bool
}

func (v AnamnesisVersion) CanEdit() bool {
	return !v.Finalized
}

type CreateAnamnesisVersionAttributes struct {
	AnamnesisId   string
	VersionNumber int
	Content       string
	CreatedBy     string
}
