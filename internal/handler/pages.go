package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/council"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type PostReader interface {
	ListPosts(ctx context.Context, limit int64) ([]*store.Post, error)
}

type PageHandler struct {
	posts      PostReader
	reportCard *council.ReportCard
}

func NewPageHandler(posts PostReader, reportCard *council.ReportCard) *PageHandler {
	return &PageHandler{posts: posts, reportCard: reportCard}
}

func (h *PageHandler) GetIndexPage(c echo.Context) error {
	return render(c, "index", views.Page{
		Title:   "Welcome",
		Session: getCtxSession(c),
	})
}

const homePostLimit = 5

func (h *PageHandler) GetHomePage(c echo.Context) error {
	posts, err := h.posts.ListPosts(c.Request().Context(), homePostLimit)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load posts")
	}
	return render(c, "home", views.HomePage{
		Page:  views.NewPage("Home", getCtxSession(c)),
		Posts: posts,
	})
}

func (h *PageHandler) GetProfilePage(c echo.Context) error {
	return render(c, "profile", views.Page{
		Title:   "Profile",
		Session: getCtxSession(c),
	})
}

func (h *PageHandler) GetCouncilPage(c echo.Context) error {
	members := h.reportCard.All()
	entries := make([]views.CouncilEntry, 0, len(members))
	for _, m := range members {
		mailto, _ := h.reportCard.MailtoURL(m.District, "")
		entries = append(entries, views.CouncilEntry{Member: m, Mailto: mailto})
	}
	return render(c, "council", views.CouncilPage{
		Page:    views.NewPage("Council Report Card", getCtxSession(c)),
		Entries: entries,
	})
}

// StaticPage serves a template that takes no data beyond the base page.
func StaticPage(template, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, template, views.Page{
			Title:   title,
			Session: getCtxSession(c),
		})
	}
}
