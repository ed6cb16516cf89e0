package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type PostSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewPostSQLiteStore(rdb, rwdb *sql.DB) *PostSQLiteStore {
	return &PostSQLiteStore{rdb, rwdb}
}

func (store *PostSQLiteStore) CreatePost(
	ctx context.Context,
	title, content, category string,
	userID int64,
) (*Post, error) {
	post := new(Post)
	err := sqlscan.Get(
		ctx, store.rwdb, post,
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

func (store *PostSQLiteStore) ListPosts(ctx context.Context, limit int64) ([]*Post, error) {
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
		err = sqlscan.Select(ctx, store.rdb, &posts, query+" limit $1", limit)
	} else {
		err = sqlscan.Select(ctx, store.rdb, &posts, query)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

func (store *PostSQLiteStore) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := sqlscan.Get(ctx, store.rdb, &count, `select count(*) from posts`)
	return count, translateError(err)
}
