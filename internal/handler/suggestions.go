package handler

import (
	"context"
	"net/http"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
)

type SuggestionServicer interface {
	CreateSuggestion(ctx context.Context, title, description, category string, userID int64) (*store.Suggestion, error)
	ListSuggestions(ctx context.Context) ([]*store.Suggestion, error)
}

type SuggestionHandler struct {
	suggestionService SuggestionServicer
}

func NewSuggestionHandler(suggestionService SuggestionServicer) *SuggestionHandler {
	return &SuggestionHandler{suggestionService}
}

func (h *SuggestionHandler) GetSuggestionsPage(c echo.Context) error {
	suggestions, err := h.suggestionService.ListSuggestions(c.Request().Context())
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to load suggestions")
	}
	return render(c, "suggestions", views.SuggestionsPage{
		Page:        views.NewPage("Suggestions", getCtxSession(c)),
		Suggestions: suggestions,
	})
}

func (h *SuggestionHandler) GetSubmitSuggestionPage(c echo.Context) error {
	return render(c, "submit_suggestion", views.SubmitSuggestionPage{
		Page: views.NewPage("Submit a suggestion", getCtxSession(c)),
	})
}

func (h *SuggestionHandler) PostSubmitSuggestion(c echo.Context) error {
	sp := new(SuggestionParams)
	if err := c.Bind(sp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid suggestion data")
	}

	if errs := sp.Validate(); len(errs) > 0 {
		page := views.SubmitSuggestionPage{
			Page: views.NewPage("Submit a suggestion", getCtxSession(c)),
			Form: views.SuggestionForm{
				Title:       sp.Title,
				Description: sp.Description,
				Category:    sp.Category,
			},
		}
		page.Errors = errs
		return render(c, "submit_suggestion", page)
	}

	s := getCtxSession(c)
	if _, err := h.suggestionService.CreateSuggestion(
		c.Request().Context(),
		sp.Title, sp.Description, sp.Category,
		s.UserID,
	); err != nil {
		return newError(c, err, http.StatusInternalServerError, "Unable to create suggestion")
	}
	return c.Redirect(http.StatusSeeOther, "/suggestions")
}
