package middleware

import (
	"net/http"

	"myShopStack/pkg/logger"
	"myShopStack/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler turns unhandled echo errors into the JSON error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	kind := "Internal Error"
	if status == http.StatusNotFound {
		kind = "Not Found"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "path", c.Path(), "error", err)
	}

	if err := c.JSON(status, response.Error(kind, message)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
