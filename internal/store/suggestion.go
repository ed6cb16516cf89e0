package store

import (
	"context"
	"time"
)

type Suggestion struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UserID      int64     `db:"user_id"`

	Username string `db:"username"`
}

type SuggestionStore interface {
	CreateSuggestion(ctx context.Context, title, description, category string, userID int64) (*Suggestion, error)
	ListSuggestions(context.Context) ([]*Suggestion, error)
	CountSuggestions(context.Context) (int64, error)
}
