package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type SuggestionSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewSuggestionSQLiteStore(rdb, rwdb *sql.DB) *SuggestionSQLiteStore {
	return &SuggestionSQLiteStore{rdb, rwdb}
}

func (store *SuggestionSQLiteStore) CreateSuggestion(
	ctx context.Context,
	title, description, category string,
	userID int64,
) (*Suggestion, error) {
	suggestion := new(Suggestion)
	err := sqlscan.Get(
		ctx, store.rwdb, suggestion,
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

func (store *SuggestionSQLiteStore) ListSuggestions(ctx context.Context) ([]*Suggestion, error) {
	var suggestions []*Suggestion
	err := sqlscan.Select(
		ctx, store.rdb, &suggestions,
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

func (store *SuggestionSQLiteStore) CountSuggestions(ctx context.Context) (int64, error) {
	var count int64
	err := sqlscan.Get(ctx, store.rdb, &count, `select count(*) from suggestions`)
	return count, translateError(err)
}
