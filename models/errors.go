package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Anamnesis lifecycle errors
var (
	// one anamnesis per patient
	ErrAnamnesisAlreadyExists = errors.Wrap(ConflictError,
		"an anamnesis already exists for this patient")

	// finalization is one-way; a second finalize is a conflict, not a silent no-op
	ErrVersionAlreadyFinalized = errors.Wrap(ConflictError,
		"anamnesis version is already finalized")

	// the version number race exceeded the retry budget
	ErrVersionNumberConflict = errors.Wrap(ConflictError,
		"could not allocate a version number for the anamnesis")
)
