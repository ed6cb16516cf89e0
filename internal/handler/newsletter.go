package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type SubscribeServicer interface {
	Subscribe(ctx context.Context, email string) (*service.SubscribeResult, error)
}

type NewsletterHandler struct {
	newsletterService SubscribeServicer
}

func NewNewsletterHandler(newsletterService SubscribeServicer) *NewsletterHandler {
	return &NewsletterHandler{newsletterService}
}

func (h *NewsletterHandler) GetSubscribePage(c echo.Context) error {
	return render(c, "subscribe", views.SubscribePage{
		Page: views.NewPage("Newsletter", getCtxSession(c)),
	})
}

func (h *NewsletterHandler) PostSubscribe(c echo.Context) error {
	sp := new(SubscribeParams)
	if err := c.Bind(sp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid subscription data")
	}

	page := views.SubscribePage{
		Page:  views.NewPage("Newsletter", getCtxSession(c)),
		Email: sp.Email,
	}

	if errs := sp.Validate(); len(errs) > 0 {
		page.Errors = errs
		return render(c, "subscribe", page)
	}

	result, err := h.newsletterService.Subscribe(c.Request().Context(), sp.Email)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to subscribe")
	}

	page.Subscribed = true
	page.AlreadySubscribed = result.AlreadySubscribed
	return render(c, "subscribe", page)
}
