package errs

import "errors"

// Cross-layer sentinels shared by handlers and use cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrProviderFailure  = errors.New("payment provider failure")
	ErrDatabaseFailure  = errors.New("database operation failed")
	ErrDomainValidation = errors.New("domain validation failed")
)
