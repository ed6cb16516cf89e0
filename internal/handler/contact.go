package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type ContactServicer interface {
	SubmitContact(ctx context.Context, name, email, subject, message string) (*store.Contact, error)
}

type ContactHandler struct {
	contactService ContactServicer
}

func NewContactHandler(contactService ContactServicer) *ContactHandler {
	return &ContactHandler{contactService}
}

func (h *ContactHandler) GetContactPage(c echo.Context) error {
	return render(c, "contact", views.ContactPage{
		Page: views.NewPage("Contact", getCtxSession(c)),
	})
}

func (h *ContactHandler) PostContact(c echo.Context) error {
	cp := new(ContactParams)
	if err := c.Bind(cp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid contact data")
	}

	page := views.ContactPage{
		Page: views.NewPage("Contact", getCtxSession(c)),
		Form: views.ContactForm{
			Name:    cp.Name,
			Email:   cp.Email,
			Subject: cp.Subject,
			Message: cp.Message,
		},
	}

	if errs := cp.Validate(); len(errs) > 0 {
		page.Errors = errs
		return render(c, "contact", page)
	}

	if _, err := h.contactService.SubmitContact(
		c.Request().Context(),
		cp.Name, cp.Email, cp.Subject, cp.Message,
	); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to send message")
	}

	page.Form = views.ContactForm{}
	page.Sent = true
	return render(c, "contact", page)
}
