package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type UserSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewUserSQLiteStore(rdb, rwdb *sql.DB) *UserSQLiteStore {
	return &UserSQLiteStore{rdb, rwdb}
}

func (store *UserSQLiteStore) CreateUser(
	ctx context.Context,
	username, email, passwordHash string,
	neighborhood *string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rwdb, user,
		`
		insert into users (
			username,
			email,
			password_hash,
			neighborhood
		)
		values ($1, $2, $3, $4)
		returning id, username, email, password_hash, neighborhood, created_at, is_admin
		`,
		username,
		email,
		passwordHash,
		neighborhood,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserSQLiteStore) CreateAdmin(
	ctx context.Context,
	username, email, passwordHash string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rwdb, user,
		`
		insert into users (
			username,
			email,
			password_hash,
			is_admin
		)
		values ($1, $2, $3, true)
		returning id, username, email, password_hash, neighborhood, created_at, is_admin
		`,
		username,
		email,
		passwordHash,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByID(ctx context.Context, userID int64) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where id = $1`,
		userID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where email = $1`,
		email,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserBySessionID(
	ctx context.Context,
	sessionID string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`
		select
			u.id,
			u.username,
			u.email,
			u.password_hash,
			u.neighborhood,
			u.created_at,
			u.is_admin
		from users u
		join auth_sessions s
		on u.id = s.auth_session_user_id
		where s.auth_session_id = $1
		and s.auth_session_expires > $2
		`,
		sessionID,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserSQLiteStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := sqlscan.Get(ctx, store.rdb, &count, `select count(*) from users`)
	return count, translateError(err)
}

func (store *UserSQLiteStore) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := sqlscan.Get(
		ctx, store.rdb, &count,
		`select count(*) from users where is_admin = true`,
	)
	return count > 0, translateError(err)
}

func (store *UserSQLiteStore) CreateAuthSession(
	ctx context.Context,
	sessionID string,
	userID int64,
	expires time.Time,
) (*AuthSession, error) {
	as := &AuthSession{
		AuthSessionID:      sessionID,
		AuthSessionUserID:  userID,
		AuthSessionExpires: expires,
	}
	_, err := store.rwdb.ExecContext(
		ctx,
		`
		insert into auth_sessions (
			auth_session_id,
			auth_session_user_id,
			auth_session_expires
		)
		values ($1, $2, $3)
		`,
		as.AuthSessionID,
		as.AuthSessionUserID,
		as.AuthSessionExpires,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return as, nil
}

func (store *UserSQLiteStore) DeleteAuthSession(ctx context.Context, sessionID string) error {
	_, err := store.rwdb.ExecContext(
		ctx,
		`delete from auth_sessions where auth_session_id = $1`,
		sessionID,
	)
	return translateError(err)
}

func (store *UserSQLiteStore) DeleteExpiredAuthSessions(ctx context.Context) error {
	_, err := store.rwdb.ExecContext(
		ctx,
		`delete from auth_sessions where auth_session_expires < $1`,
		time.Now().UTC(),
	)
	return translateError(err)
}
