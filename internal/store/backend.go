package store

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend bundles the per-entity stores for whichever storage backend the
// deployment mode selected. It is assembled once at startup and injected into
// the services; nothing downstream branches on the backend type.
type Backend struct {
	Users       UserStore
	Posts       PostStore
	Suggestions SuggestionStore
	Contacts    ContactStore
	Newsletter  NewsletterStore

	ping func(context.Context) error
}

func NewSQLiteBackend(rdb, rwdb *sql.DB) *Backend {
	return &Backend{
		Users:       NewUserSQLiteStore(rdb, rwdb),
		Posts:       NewPostSQLiteStore(rdb, rwdb),
		Suggestions: NewSuggestionSQLiteStore(rdb, rwdb),
		Contacts:    NewContactSQLiteStore(rdb, rwdb),
		Newsletter:  NewNewsletterSQLiteStore(rdb, rwdb),
		ping:        rdb.PingContext,
	}
}

func NewPostgresBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{
		Users:       NewUserPgStore(pool),
		Posts:       NewPostPgStore(pool),
		Suggestions: NewSuggestionPgStore(pool),
		Contacts:    NewContactPgStore(pool),
		Newsletter:  NewNewsletterPgStore(pool),
		ping:        pool.Ping,
	}
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}
