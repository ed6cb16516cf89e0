package store

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsletterPgStore struct {
	pool *pgxpool.Pool
}

func NewNewsletterPgStore(pool *pgxpool.Pool) *NewsletterPgStore {
	return &NewsletterPgStore{pool}
}

func (store *NewsletterPgStore) SubscribeEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	res, err := store.pool.Exec(
		ctx,
		`
		insert into newsletter_subscribers (email)
		values ($1)
		on conflict (email) do nothing
		`,
		email,
	)
	if err != nil {
		return false, translateError(err)
	}
	if res.RowsAffected() > 0 {
		return true, nil
	}

	_, err = store.pool.Exec(
		ctx,
		`update newsletter_subscribers set is_active = true where email = $1`,
		email,
	)
	return false, translateError(err)
}

func (store *NewsletterPgStore) ListSubscribers(ctx context.Context) ([]*Subscriber, error) {
	var subscribers []*Subscriber
	err := pgxscan.Select(
		ctx, store.pool, &subscribers,
		`
		select * from newsletter_subscribers
		where is_active = true
		order by subscribed_at desc
		`,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return subscribers, nil
}

func (store *NewsletterPgStore) DeactivateSubscriber(ctx context.Context, email string) error {
	_, err := store.pool.Exec(
		ctx,
		`update newsletter_subscribers set is_active = false where email = $1`,
		email,
	)
	return translateError(err)
}

func (store *NewsletterPgStore) CountSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(
		ctx, store.pool, &count,
		`select count(*) from newsletter_subscribers where is_active = true`,
	)
	return count, translateError(err)
}
