package middleware

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"urlshortener/internal/metrics"
)

//go:generate go tool mockery

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request. It must run inside RequestID
// so the generated id is already on the response.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			res := c.Response()
			m := metrics.HTTPMetric{
				Time:       start,
				RequestID:  res.Header().Get(echo.HeaderXRequestID),
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: res.Status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				BytesOut:   res.Size,
				ClientIP:   c.RealIP(),
			}

			if err != nil {
				m.Error = err.Error()
				// the error handler has not written the response yet
				var he *echo.HTTPError
				switch {
				case errors.As(err, &he):
					m.StatusCode = he.Code
				case !res.Committed:
					m.StatusCode = http.StatusInternalServerError
				}
			}

			recorder.RecordHTTP(m)
			return err
		}
	}
}
