package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type PostServicer interface {
	CreatePost(ctx context.Context, title, content, category string, userID int64) (*store.Post, error)
	ListPosts(ctx context.Context, limit int64) ([]*store.Post, error)
}

type PostHandler struct {
	postService PostServicer
}

func NewPostHandler(postService PostServicer) *PostHandler {
	return &PostHandler{postService}
}

func (h *PostHandler) GetCommunityPage(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context(), 0)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load posts")
	}
	return render(c, "community", views.CommunityPage{
		Page:  views.NewPage("Community Board", getCtxSession(c)),
		Posts: posts,
	})
}

func (h *PostHandler) GetSubmitPostPage(c echo.Context) error {
	return render(c, "submit_post", views.SubmitPostPage{
		Page: views.NewPage("Write a post", getCtxSession(c)),
	})
}

func (h *PostHandler) PostSubmitPost(c echo.Context) error {
	pp := new(PostParams)
	if err := c.Bind(pp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid post data")
	}

	if errs := pp.Validate(); len(errs) > 0 {
		page := views.SubmitPostPage{
			Page: views.NewPage("Write a post", getCtxSession(c)),
			Form: views.PostForm{Title: pp.Title, Content: pp.Content, Category: pp.Category},
		}
		page.Errors = errs
		return render(c, "submit_post", page)
	}

	s := getCtxSession(c)
	if _, err := h.postService.CreatePost(
		c.Request().Context(),
		pp.Title, pp.Content, pp.Category,
		s.UserID,
	); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to create post")
	}
	return c.Redirect(http.StatusSeeOther, "/community")
}
