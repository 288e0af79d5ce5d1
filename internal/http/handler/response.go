package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		jsonKeySuccess: false,
		jsonKeyError:   message,
	})
}

func respondValidationError(c echo.Context, message string, fields []string) error {
	body := map[string]any{
		jsonKeySuccess: false,
		jsonKeyError:   message,
	}
	if len(fields) > 0 {
		body[jsonKeyFields] = fields
	}

	return c.JSON(http.StatusBadRequest, body)
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		jsonKeySuccess: true,
		jsonKeyMessage: message,
	})
}

// respondData wraps a payload in the success envelope. Keys in extra are
// merged beside "success".
func respondData(c echo.Context, status int, extra map[string]any) error {
	body := map[string]any{jsonKeySuccess: true}
	for k, v := range extra {
		body[k] = v
	}

	return c.JSON(status, body)
}

func handleHTTPError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return respondError(c, he.Code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
