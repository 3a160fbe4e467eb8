package middleware

import (
	"strconv"
	"time"

	"myShopStack/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records per-request counters and latency, labelled by the
// registered route path so IDs don't blow up cardinality.
func Metrics(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.RequestsTotal.WithLabelValues(service, method, path, status).Inc()
			metrics.RequestDuration.WithLabelValues(service, method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
