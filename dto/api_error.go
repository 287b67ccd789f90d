package dto

type ErrorCode string

const (
	NotFoundCode                ErrorCode = "not_found"
	BadParameterCode            ErrorCode = "bad_parameter"
	AnamnesisAlreadyExistsCode  ErrorCode = "anamnesis_already_exists"
	VersionAlreadyFinalizedCode ErrorCode = "version_already_finalized"
	VersionNumberConflictCode   ErrorCode = "version_number_conflict"
	ConflictCode                ErrorCode = "conflict"
	InternalErrorCode           ErrorCode = "internal_error"
)

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code"`
}
