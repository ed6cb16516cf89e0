package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type NewsletterSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewNewsletterSQLiteStore(rdb, rwdb *sql.DB) *NewsletterSQLiteStore {
	return &NewsletterSQLiteStore{rdb, rwdb}
}

func (store *NewsletterSQLiteStore) SubscribeEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	res, err := store.rwdb.ExecContext(
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
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	// already on the list, make sure a previously deactivated address is
	// active again
	_, err = store.rwdb.ExecContext(
		ctx,
		`update newsletter_subscribers set is_active = true where email = $1`,
		email,
	)
	return false, translateError(err)
}

func (store *NewsletterSQLiteStore) ListSubscribers(ctx context.Context) ([]*Subscriber, error) {
	var subscribers []*Subscriber
	err := sqlscan.Select(
		ctx, store.rdb, &subscribers,
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

func (store *NewsletterSQLiteStore) DeactivateSubscriber(ctx context.Context, email string) error {
	_, err := store.rwdb.ExecContext(
		ctx,
		`update newsletter_subscribers set is_active = false where email = $1`,
		email,
	)
	return translateError(err)
}

func (store *NewsletterSQLiteStore) CountSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := sqlscan.Get(
		ctx, store.rdb, &count,
		`select count(*) from newsletter_subscribers where is_active = true`,
	)
	return count, translateError(err)
}
