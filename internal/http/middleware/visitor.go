package middleware

import (
	"github.com/labstack/echo/v4"
)

// VisitRecorder counts one visit per call.
type VisitRecorder interface {
	Record()
}

// TrackVisitors records public traffic before the handler runs. Counting is
// in-memory, so this adds no latency to the request path.
func TrackVisitors(recorder VisitRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			recorder.Record()
			return next(c)
		}
	}
}
