package commands

import "travel-deals/internal/pkg/errs"

var (
	ErrInvalidRequest = errs.New("invalid request")
	ErrNotFound       = errs.New("not found")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
