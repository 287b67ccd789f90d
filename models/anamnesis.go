package models

import (
	"time"
)

// Anamnesis is the per-patient versioned record header. There is at most one
// anamnesis per patient, and the header is immutable after creation: all
// evolving content lives in AnamnesisVersion rows.
type Anamnesis struct {
	Id        string
	PatientId string
	CreatedAt time.Time
}

// AnamnesisHistory is the read composition of an anamnesis and its full
// version list, ordered by ascending version number.
type AnamnesisHistory struct {
	Anamnesis Anamnesis
	Versions  []AnamnesisVersion
}
