package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	Ping(context.Context) error
}

// GetHealth reports process status, the active storage backend and readiness.
func GetHealth(backend Pinger, mode string, readiness *Readiness) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ok"
		code := http.StatusOK

		if !readiness.Ready() {
			status = "starting"
			code = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				c.Logger().Errorf("health check ping failed: %+v", err)
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		return c.JSON(code, map[string]any{
			"status":  status,
			"backend": mode,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
