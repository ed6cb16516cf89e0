package store

import (
	"context"
	"time"
)

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UserID    int64     `db:"user_id"`

	// author, joined from users
	Username string `db:"username"`
}

type PostStore interface {
	CreatePost(ctx context.Context, title, content, category string, userID int64) (*Post, error)
	// ListPosts returns newest first, joined with the author username.
	// limit <= 0 means no limit.
	ListPosts(ctx context.Context, limit int64) ([]*Post, error)
	CountPosts(context.Context) (int64, error)
}
