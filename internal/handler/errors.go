package handler

import (
	"errors"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// fieldErrors maps validation sentinels to the request field they concern
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrDescriptionRequired, "description", "Description is required"},
	{domain.ErrDescriptionTooLong, "description", "Description must be 1000 characters or less"},
	{domain.ErrInvalidCategory, "category", "Category must be one of: EARN, OPEX, VAR, CAPEX, FIN"},
	{domain.ErrInvalidAmount, "amount", "Amount must be positive, at most 9999999999999.99, with at most 2 decimal places"},
	{domain.ErrAccountTooLong, "account", "Account must be 100 characters or less"},
	{domain.ErrInvalidMonth, "month", "Month must be between 01 and 12"},
}

// handleServiceError maps a service error onto a Problem Details response
func handleServiceError(c echo.Context, err error, detail string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: fe.field, Message: fe.message},
			})
		}
	}

	switch {
	case errors.Is(err, domain.ErrEmptyUpdate):
		return NewValidationError(c, "No fields to update", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, err.Error(), nil)
	case errors.Is(err, domain.ErrTransactionNotFound), errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Transaction not found")
	case errors.Is(err, domain.ErrConfirmationRequired):
		return NewConfirmationRequiredError(c, "Set confirm to true to delete transactions")
	case errors.Is(err, domain.ErrReportStorageNotConfigured):
		return NewServiceUnavailableError(c, "Report storage is not configured")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error().Err(err).Msg(detail)
		return NewServiceUnavailableError(c, detail)
	}

	log.Error().Err(err).Msg(detail)
	return NewInternalError(c, detail)
}
