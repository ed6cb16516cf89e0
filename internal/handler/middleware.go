package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/keepalleytrash/keepalleytrash/internal/session"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware decodes the request credential through the configured
// codec and puts the resulting session (possibly nil) on the echo context.
// Anonymous requests pass through; only backend failures become errors.
func SessionMiddleware(codec session.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := codec.Read(c)
			if err != nil {
				return newError(c, err, http.StatusInternalServerError, "Something went wrong on our end")
			}
			if s != nil {
				c.Set("session", s)
			}
			return next(c)
		}
	}
}

func RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := getCtxSession(c)
		if !s.Authenticated() {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := getCtxSession(c)
		if !s.Authenticated() {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		if !s.IsAdmin {
			return c.Redirect(http.StatusSeeOther, "/home")
		}
		return next(c)
	}
}

func AlreadyLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if getCtxSession(c).Authenticated() {
			return c.Redirect(http.StatusSeeOther, "/home")
		}
		return next(c)
	}
}

// Readiness gates traffic until the storage backend is initialized and
// migrated. Until Set, every request is answered 503 with Retry-After.
type Readiness struct {
	ready atomic.Bool
}

func (r *Readiness) Set() {
	r.ready.Store(true)
}

func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

func (r *Readiness) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !r.ready.Load() {
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "starting",
			})
		}
		return next(c)
	}
}
