package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/internal/session"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type UserAuthServicer interface {
	Register(
		ctx context.Context,
		username, email, password string,
		neighborhood *string,
	) (*store.User, error)
	Authenticate(ctx context.Context, email, password string) (*store.User, error)
}

type AuthHandler struct {
	userService UserAuthServicer
	codec       session.Codec
}

func NewAuthHandler(userService UserAuthServicer, codec session.Codec) *AuthHandler {
	return &AuthHandler{userService, codec}
}

func (h *AuthHandler) GetRegisterPage(c echo.Context) error {
	return render(c, "register", views.RegisterPage{
		Page: views.NewPage("Register", getCtxSession(c)),
	})
}

func (h *AuthHandler) PostRegister(c echo.Context) error {
	rp := new(RegisterParams)
	if err := c.Bind(rp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid registration data")
	}

	page := views.RegisterPage{
		Page: views.NewPage("Register", getCtxSession(c)),
		Form: views.RegisterForm{
			Username:     rp.Username,
			Email:        rp.Email,
			Neighborhood: rp.Neighborhood,
		},
	}

	if errs := rp.Validate(); len(errs) > 0 {
		page.Errors = errs
		return render(c, "register", page)
	}

	var neighborhood *string
	if rp.Neighborhood != "" {
		neighborhood = &rp.Neighborhood
	}

	u, err := h.userService.Register(
		c.Request().Context(),
		rp.Username, rp.Email, rp.Password,
		neighborhood,
	)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			page.Errors = []string{"Username or email already exists"}
			return render(c, "register", page)
		}
		return newError(c, err, http.StatusInternalServerError, "Unable to create account")
	}

	if err := h.codec.Save(c, session.NewSession(u)); err != nil {
		c.Logger().Errorf("err saving session after registration: %+v", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Redirect(http.StatusSeeOther, "/home")
}

func (h *AuthHandler) GetLoginPage(c echo.Context) error {
	return render(c, "login", views.LoginPage{
		Page: views.NewPage("Log in", getCtxSession(c)),
	})
}

func (h *AuthHandler) PostLogin(c echo.Context) error {
	lp := new(LoginParams)
	if err := c.Bind(lp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid login data")
	}

	page := views.LoginPage{
		Page:  views.NewPage("Log in", getCtxSession(c)),
		Email: lp.Email,
	}

	if errs := lp.Validate(); len(errs) > 0 {
		page.Errors = errs
		return render(c, "login", page)
	}

	u, err := h.userService.Authenticate(c.Request().Context(), lp.Email, lp.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			page.Errors = []string{"Invalid email or password"}
			return render(c, "login", page)
		}
		return newError(c, err, http.StatusInternalServerError, "Unable to log in")
	}

	if err := h.codec.Save(c, session.NewSession(u)); err != nil {
		c.Logger().Errorf("err saving session after login: %+v", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Redirect(http.StatusSeeOther, "/home")
}

func (h *AuthHandler) GetLogout(c echo.Context) error {
	if err := h.codec.Destroy(c); err != nil {
		c.Logger().Errorf("err destroying session: %+v", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
