package service

import (
	"context"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
)

type PostService struct {
	posts store.PostStore
}

func NewPostService(posts store.PostStore) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) CreatePost(
	ctx context.Context,
	title, content, category string,
	userID int64,
) (*store.Post, error) {
	return s.posts.CreatePost(ctx, title, content, category, userID)
}

func (s *PostService) ListPosts(ctx context.Context, limit int64) ([]*store.Post, error) {
	return s.posts.ListPosts(ctx, limit)
}

func (s *PostService) CountPosts(ctx context.Context) (int64, error) {
	return s.posts.CountPosts(ctx)
}
