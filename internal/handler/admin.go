package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type AdminCounter interface {
	CountUsers(context.Context) (int64, error)
	CountPosts(context.Context) (int64, error)
	CountSuggestions(context.Context) (int64, error)
	CountContacts(context.Context) (int64, error)
	CountSubscribers(context.Context) (int64, error)
}

type AdminNewsletterServicer interface {
	Subscribers(context.Context) ([]*store.Subscriber, error)
	Deactivate(ctx context.Context, email string) error
	GenerateHTML(context.Context) (string, error)
	Send(ctx context.Context, subject, html string) (*service.SendReport, error)
}

type AdminContactReader interface {
	ListContacts(context.Context) ([]*store.Contact, error)
}

type AdminHandler struct {
	counter    AdminCounter
	newsletter AdminNewsletterServicer
	contacts   AdminContactReader
	posts      PostReader
}

func NewAdminHandler(
	counter AdminCounter,
	newsletter AdminNewsletterServicer,
	contacts AdminContactReader,
	posts PostReader,
) *AdminHandler {
	return &AdminHandler{counter, newsletter, contacts, posts}
}

func (h *AdminHandler) GetDashboardPage(c echo.Context) error {
	ctx := c.Request().Context()
	page := views.AdminDashboardPage{
		Page: views.NewPage("Admin", getCtxSession(c)),
	}

	var err error
	if page.UserCount, err = h.counter.CountUsers(ctx); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load dashboard")
	}
	if page.PostCount, err = h.counter.CountPosts(ctx); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load dashboard")
	}
	if page.SuggestionCount, err = h.counter.CountSuggestions(ctx); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load dashboard")
	}
	if page.ContactCount, err = h.counter.CountContacts(ctx); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load dashboard")
	}
	if page.SubscriberCount, err = h.counter.CountSubscribers(ctx); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load dashboard")
	}

	return render(c, "admin_dashboard", page)
}

func (h *AdminHandler) GetSubscribersPage(c echo.Context) error {
	subscribers, err := h.newsletter.Subscribers(c.Request().Context())
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load subscribers")
	}
	return render(c, "admin_subscribers", views.AdminSubscribersPage{
		Page:        views.NewPage("Subscribers", getCtxSession(c)),
		Subscribers: subscribers,
	})
}

func (h *AdminHandler) PostDeactivateSubscriber(c echo.Context) error {
	sp := new(SubscribeParams)
	if err := c.Bind(sp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid subscriber data")
	}
	if err := h.newsletter.Deactivate(c.Request().Context(), sp.Email); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to deactivate subscriber")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/subscribers")
}

func (h *AdminHandler) GetPostsPage(c echo.Context) error {
	posts, err := h.posts.ListPosts(c.Request().Context(), 0)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load posts")
	}
	return render(c, "admin_posts", views.AdminPostsPage{
		Page:  views.NewPage("Posts", getCtxSession(c)),
		Posts: posts,
	})
}

func (h *AdminHandler) GetContactsPage(c echo.Context) error {
	contacts, err := h.contacts.ListContacts(c.Request().Context())
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load contact messages")
	}
	return render(c, "admin_contacts", views.AdminContactsPage{
		Page:     views.NewPage("Contact messages", getCtxSession(c)),
		Contacts: contacts,
	})
}

type NewsletterSendParams struct {
	Subject string `form:"subject"`
}

func (h *AdminHandler) PostSendNewsletter(c echo.Context) error {
	np := new(NewsletterSendParams)
	if err := c.Bind(np); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid newsletter data")
	}
	if np.Subject == "" {
		np.Subject = "Keep Alley Trash - Community Update"
	}

	ctx := c.Request().Context()
	html, err := h.newsletter.GenerateHTML(ctx)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to generate newsletter")
	}

	report, err := h.newsletter.Send(ctx, np.Subject, html)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to send newsletter")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"batch_id":  report.BatchID,
		"attempted": report.Attempted,
		"sent":      report.Sent,
		"failed":    len(report.Failed),
	})
}
