package http

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "estate-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeySuccess = "success"
	jsonKeyError   = "error"

	msgEndpointNotFound   = "Endpoint not found"
	msgSomethingWentWrong = "Something went wrong on our server"
	msgResourceNotFound   = "Resource not found"
	msgUnauthorized       = "Unauthorized"
	msgInvalidCredentials = "Invalid credentials"
	msgForbidden          = "Forbidden"
	msgResourceExists     = "Resource already exists"
	msgEmailAlreadyExists = "Email already exists"
	msgValidationError    = "Validation error"
	unknownRequestID      = "unknown"
	logKeyInternalError   = "internal_server_error"
	logKeyClientError     = "client_error"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and middleware.
// It maps sentinel errors to appropriate HTTP status codes, sanitizes internal errors,
// and logs errors with request context.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msgSomethingWentWrong

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
		if code == http.StatusNotFound {
			message = msgEndpointNotFound
		}
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = msgResourceNotFound
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = msgUnauthorized
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = msgInvalidCredentials
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = msgForbidden
		case errors.Is(err, apperrors.ErrValidation):
			code = http.StatusBadRequest
			message = msgValidationError
		case errors.Is(err, apperrors.ErrEmailExists):
			code = http.StatusConflict
			message = msgEmailAlreadyExists
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = msgResourceExists
		}

		// Prefer the AppError message for client errors
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && code < 500 {
			message = appErr.Message
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = unknownRequestID
	}

	if code >= 500 {
		c.Logger().Errorf("%s request_id=%s status=%d error=%v", logKeyInternalError, requestID, code, err)
		// Don't expose internal errors to clients
		message = msgSomethingWentWrong
	} else {
		c.Logger().Warnf("%s request_id=%s status=%d error=%v", logKeyClientError, requestID, code, err)
	}

	if err := c.JSON(code, map[string]any{
		jsonKeySuccess: false,
		jsonKeyError:   message,
	}); err != nil {
		c.Logger().Error(err)
	}
}
