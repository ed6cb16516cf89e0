package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type ContactSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewContactSQLiteStore(rdb, rwdb *sql.DB) *ContactSQLiteStore {
	return &ContactSQLiteStore{rdb, rwdb}
}

func (store *ContactSQLiteStore) CreateContact(
	ctx context.Context,
	name, email, subject, message string,
) (*Contact, error) {
	contact := new(Contact)
	err := sqlscan.Get(
		ctx, store.rwdb, contact,
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

func (store *ContactSQLiteStore) ListContacts(ctx context.Context) ([]*Contact, error) {
	var contacts []*Contact
	err := sqlscan.Select(
		ctx, store.rdb, &contacts,
		`select * from contacts order by created_at desc`,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return contacts, nil
}

func (store *ContactSQLiteStore) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := sqlscan.Get(ctx, store.rdb, &count, `select count(*) from contacts`)
	return count, translateError(err)
}
