package handler

import (
	"errors"
	apperrors "estate-service/pkg/errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// respondRepoError maps expected repository failures onto the response
// envelope. notFoundMsg and fallbackMsg are endpoint-specific so clients see
// the same texts the original API served. Anything unexpected is logged and
// reported as the fallback 500.
func respondRepoError(c echo.Context, err error, notFoundMsg, fallbackMsg string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, apperrors.ErrEmailExists), errors.Is(err, apperrors.ErrConflict):
		return respondError(c, http.StatusBadRequest, appErrorMessage(err, fallbackMsg))
	case errors.Is(err, apperrors.ErrValidation):
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return respondValidationError(c, appErr.Message, appErr.Fields)
		}
		return respondValidationError(c, err.Error(), nil)
	default:
		c.Logger().Errorf("%s: %v", fallbackMsg, err)
		return respondError(c, http.StatusInternalServerError, fallbackMsg)
	}
}

func appErrorMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
