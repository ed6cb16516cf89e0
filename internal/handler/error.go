package handler

import (
	"log"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders the shared error page. Internal details go to the log,
// never to the response.
func ErrorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := "Something went wrong on our end"

	if e, ok := err.(*echo.HTTPError); ok {
		status = e.Code
		if m, ok := e.Message.(string); ok {
			message = m
		}
		c.Logger().Errorf(
			"handler internal error %s [%d]: %+v",
			c.Request().URL.Path, e.Code, e.Internal,
		)
	} else {
		c.Logger().Errorf("handler error: %+v", err)
	}

	if c.Response().Committed {
		return
	}

	page := views.ErrorPage{
		Page:    views.NewPage(http.StatusText(status), getCtxSession(c)),
		Status:  status,
		Message: message,
	}
	if err := c.Render(status, "error", page); err != nil {
		log.Printf("err rendering error page: %+v", err)
	}
}

func newError(c echo.Context, err error, status int, message string) error {
	e := echo.NewHTTPError(status, message)
	if err != nil {
		e = e.WithInternal(err)
	}
	return e
}
