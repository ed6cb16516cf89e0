package store

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactPgStore struct {
	pool *pgxpool.Pool
}

func NewContactPgStore(pool *pgxpool.Pool) *ContactPgStore {
	return &ContactPgStore{pool}
}

func (store *ContactPgStore) CreateContact(
	ctx context.Context,
	name, email, subject, message string,
) (*Contact, error) {
	contact := new(Contact)
	err := pgxscan.Get(
		ctx, store.pool, contact,
		`
		insert into contacts (
			name,
			email,
			subject,
			message
		)
		values ($1, $2, $3, $4)
		returning id, name, email, subject, message, created_at
		`,
		name,
		email,
		subject,
		message,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return contact, nil
}

func (store *ContactPgStore) ListContacts(ctx context.Context) ([]*Contact, error) {
	var contacts []*Contact
	err := pgxscan.Select(
		ctx, store.pool, &contacts,
		`select * from contacts order by created_at desc`,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return contacts, nil
}

func (store *ContactPgStore) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(ctx, store.pool, &count, `select count(*) from contacts`)
	return count, translateError(err)
}
