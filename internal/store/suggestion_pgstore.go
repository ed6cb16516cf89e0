package store

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SuggestionPgStore struct {
	pool *pgxpool.Pool
}

func NewSuggestionPgStore(pool *pgxpool.Pool) *SuggestionPgStore {
	return &SuggestionPgStore{pool}
}

func (store *SuggestionPgStore) CreateSuggestion(
	ctx context.Context,
	title, description, category string,
	userID int64,
) (*Suggestion, error) {
	suggestion := new(Suggestion)
	err := pgxscan.Get(
		ctx, store.pool, suggestion,
		`
		insert into suggestions (
			title,
			description,
			category,
			user_id
		)
		values ($1, $2, $3, $4)
		returning id, title, description, category, status, created_at, user_id, '' as username
		`,
		title,
		description,
		category,
		userID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return suggestion, nil
}

func (store *SuggestionPgStore) ListSuggestions(ctx context.Context) ([]*Suggestion, error) {
	var suggestions []*Suggestion
	err := pgxscan.Select(
		ctx, store.pool, &suggestions,
		`
		select
			s.id,
			s.title,
			s.description,
			s.category,
			s.status,
			s.created_at,
			s.user_id,
			u.username
		from suggestions s
		join users u
		on s.user_id = u.id
		order by s.created_at desc
		`,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return suggestions, nil
}

func (store *SuggestionPgStore) CountSuggestions(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(ctx, store.pool, &count, `select count(*) from suggestions`)
	return count, translateError(err)
}
