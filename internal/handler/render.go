package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func render(c echo.Context, name string, data any) error {
	return c.Render(http.StatusOK, name, data)
}
