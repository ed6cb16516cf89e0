package handler

import (
	"github.com/keepalleytrash/keepalleytrash/internal/session"

	"github.com/labstack/echo/v4"
)

func getCtxSession(c echo.Context) *session.Session {
	if s, ok := c.Get("session").(*session.Session); ok {
		return s
	}
	return nil
}
