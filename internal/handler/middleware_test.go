package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keepalleytrash/keepalleytrash/internal/session"
	"github.com/keepalleytrash/keepalleytrash/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newGetContext(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("success - decoded session is set on the context", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockCodec := new(testutil.MockCodec)
		expected := &session.Session{UserID: 7, Username: "alleyfan"}
		mockCodec.On("Read", mock.Anything).Return(expected, nil)
		c, _ := newGetContext(e, "/")

		// act
		err := SessionMiddleware(mockCodec)(func(c echo.Context) error {
			assert.Equal(t, expected, getCtxSession(c))
			return okHandler(c)
		})(c)

		// assert
		assert.NoError(t, err)
	})
	t.Run("success - anonymous request passes through with no session", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockCodec := new(testutil.MockCodec)
		mockCodec.On("Read", mock.Anything).Return(nil, nil)
		c, _ := newGetContext(e, "/")

		// act
		err := SessionMiddleware(mockCodec)(func(c echo.Context) error {
			assert.Nil(t, getCtxSession(c))
			return okHandler(c)
		})(c)

		// assert
		assert.NoError(t, err)
	})
	t.Run("failure - backend error becomes a 500", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockCodec := new(testutil.MockCodec)
		mockCodec.On("Read", mock.Anything).Return(nil, assert.AnError)
		c, _ := newGetContext(e, "/")

		// act
		err := SessionMiddleware(mockCodec)(okHandler)(c)

		// assert
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	t.Run("success - authenticated request passes", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/home")
		c.Set("session", &session.Session{UserID: 7})

		// act
		err := RequireAuthenticated(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("failure - anonymous request is redirected to login", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/home")

		// act
		err := RequireAuthenticated(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("success - admin session passes", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/admin")
		c.Set("session", &session.Session{UserID: 7, IsAdmin: true})

		// act
		err := RequireAdmin(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("failure - authenticated non-admin is redirected home", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/admin")
		c.Set("session", &session.Session{UserID: 7})

		// act
		err := RequireAdmin(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/home", rec.Header().Get(echo.HeaderLocation))
	})
	t.Run("failure - anonymous request is redirected to login", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/admin")

		// act
		err := RequireAdmin(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAlreadyLoggedIn(t *testing.T) {
	t.Run("success - logged in user is redirected home", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/login")
		c.Set("session", &session.Session{UserID: 7})

		// act
		err := AlreadyLoggedIn(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/home", rec.Header().Get(echo.HeaderLocation))
	})
	t.Run("success - anonymous user sees the page", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		c, rec := newGetContext(e, "/login")

		// act
		err := AlreadyLoggedIn(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReadiness(t *testing.T) {
	t.Run("failure - requests before readiness get 503 with retry-after", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		readiness := new(Readiness)
		c, rec := newGetContext(e, "/")

		// act
		err := readiness.Middleware(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
	t.Run("success - requests after readiness pass through", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		readiness := new(Readiness)
		readiness.Set()
		c, rec := newGetContext(e, "/")

		// act
		err := readiness.Middleware(okHandler)(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, readiness.Ready())
	})
}
