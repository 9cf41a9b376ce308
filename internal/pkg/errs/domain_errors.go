package errs

import "errors"

// Taxonomy marks. Concrete errors are marked with one of these via Mark and
// tested with Is, so transport layers can map them to status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
