package models

import (
	"time"
)

// Patient is the subject directory record. Patient registration and
// soft-deletion are managed elsewhere; the anamnesis core only reads the
// identity and the Deleted flag before mutating operations.
type Patient struct {
	Id        string
	Firstname string
	Lastname  string
	Birthdate time.Time
	Deleted   bool
}
