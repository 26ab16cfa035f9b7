package domain

import "errors"

// Domain errors
var (
	ErrNotFound                   = errors.New("resource not found")
	ErrInvalidInput               = errors.New("invalid input")
	ErrUnauthorized               = errors.New("unauthorized")
	ErrInternalError              = errors.New("internal error")
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrInvalidCategory            = errors.New("invalid category")
	ErrInvalidAmount              = errors.New("amount must be positive with at most 2 decimal places")
	ErrInvalidMonth               = errors.New("month must be between 1 and 12")
	ErrDescriptionRequired        = errors.New("description is required")
	ErrDescriptionTooLong         = errors.New("description exceeds maximum length")
	ErrAccountTooLong             = errors.New("account exceeds maximum length")
	ErrEmptyUpdate                = errors.New("update has no fields")
	ErrConfirmationRequired       = errors.New("destructive operation requires confirmation")
	ErrStoreUnavailable           = errors.New("transaction store unavailable")
	ErrReportStorageNotConfigured = errors.New("report storage not configured")
)

// Validation constants
const (
	MaxDescriptionLength = 1000
	MaxAccountLength     = 100
)
