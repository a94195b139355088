package middleware

import (
	"time"

	"github.com/deppfellow/biztime/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request count, latency and in-flight requests by route
// pattern. Scrapes of /metrics are not counted.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}

			start := time.Now()
			m.IncInFlight()
			defer m.DecInFlight()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = resolveError(err).Status
			}

			m.RecordHTTPRequest(c.Request().Method, c.Path(), status, time.Since(start))

			return err
		}
	}
}
