package service

import (
	"context"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
)

type SuggestionService struct {
	suggestions store.SuggestionStore
}

func NewSuggestionService(suggestions store.SuggestionStore) *SuggestionService {
	return &SuggestionService{suggestions: suggestions}
}

func (s *SuggestionService) CreateSuggestion(
	ctx context.Context,
	title, description, category string,
	userID int64,
) (*store.Suggestion, error) {
	return s.suggestions.CreateSuggestion(ctx, title, description, category, userID)
}

func (s *SuggestionService) ListSuggestions(ctx context.Context) ([]*store.Suggestion, error) {
	return s.suggestions.ListSuggestions(ctx)
}

func (s *SuggestionService) CountSuggestions(ctx context.Context) (int64, error) {
	return s.suggestions.CountSuggestions(ctx)
}
