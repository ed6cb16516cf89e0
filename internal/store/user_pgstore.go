package store

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserPgStore is the production adapter, pointed at the managed postgres
// instance. Same contract as UserSQLiteStore.
type UserPgStore struct {
	pool *pgxpool.Pool
}

func NewUserPgStore(pool *pgxpool.Pool) *UserPgStore {
	return &UserPgStore{pool}
}

func (store *UserPgStore) CreateUser(
	ctx context.Context,
	username, email, passwordHash string,
	neighborhood *string,
) (*User, error) {
	user := new(User)
	err := pgxscan.Get(
		ctx, store.pool, user,
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

func (store *UserPgStore) CreateAdmin(
	ctx context.Context,
	username, email, passwordHash string,
) (*User, error) {
	user := new(User)
	err := pgxscan.Get(
		ctx, store.pool, user,
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

func (store *UserPgStore) ReadUserByID(ctx context.Context, userID int64) (*User, error) {
	user := new(User)
	err := pgxscan.Get(
		ctx, store.pool, user,
		`select * from users where id = $1`,
		userID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserPgStore) ReadUserByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)
	err := pgxscan.Get(
		ctx, store.pool, user,
		`select * from users where email = $1`,
		email,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (store *UserPgStore) ReadUserBySessionID(
	ctx context.Context,
	sessionID string,
) (*User, error) {
	user := new(User)
	err := pgxscan.Get(
		ctx, store.pool, user,
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

func (store *UserPgStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(ctx, store.pool, &count, `select count(*) from users`)
	return count, translateError(err)
}

func (store *UserPgStore) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := pgxscan.Get(
		ctx, store.pool, &count,
		`select count(*) from users where is_admin = true`,
	)
	return count > 0, translateError(err)
}

func (store *UserPgStore) CreateAuthSession(
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
	_, err := store.pool.Exec(
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

func (store *UserPgStore) DeleteAuthSession(ctx context.Context, sessionID string) error {
	_, err := store.pool.Exec(
		ctx,
		`delete from auth_sessions where auth_session_id = $1`,
		sessionID,
	)
	return translateError(err)
}

func (store *UserPgStore) DeleteExpiredAuthSessions(ctx context.Context) error {
	_, err := store.pool.Exec(
		ctx,
		`delete from auth_sessions where auth_session_expires < $1`,
		time.Now().UTC(),
	)
	return translateError(err)
}
