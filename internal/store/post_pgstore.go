package store

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostPgStore struct {
	pool *pgxpool.Pool
}

func NewPostPgStore(pool *pgxpool.Pool) *PostPgStore {
	return &PostPgStore{pool}
}

func (store *PostPgStore) CreatePost(
	ctx context.Context,
	title, content, category string,
	userID int64,
) (*Post, error) {
	post := new(Post)
	err := pgxscan.Get(
		ctx, store.pool, post,
		`
		insert into posts (
			title,
			content,
			category,
			user_id
		)
		values ($1, $2, $3, $4)
		returning id, title, content, category, created_at, user_id, '' as username
		`,
		title,
		content,
		category,
		userID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return post, nil
}

func (store *PostPgStore) ListPosts(ctx context.Context, limit int64) ([]*Post, error) {
	var posts []*Post
	query := `
	select
		p.id,
		p.title,
		p.content,
		p.category,
		p.created_at,
		p.user_id,
		u.username
	from posts p
	join users u
	on p.user_id = u.id
	order by p.created_at desc
	`
	var err error
	if limit > 0 {
		err = pgxscan.Select(ctx, store.pool, &posts, query+" limit $1", limit)
	} else {
		err = pgxscan.Select(ctx, store.pool, &posts, query)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

func (store *PostPgStore) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(ctx, store.pool, &count, `select count(*) from posts`)
	return count, translateError(err)
}
