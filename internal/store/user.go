package store

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Neighborhood *string   `db:"neighborhood"`
	CreatedAt    time.Time `db:"created_at"`
	IsAdmin      bool      `db:"is_admin"`
}

// AuthSession is a server-side session row, used when the store-backed
// session strategy is active.
type AuthSession struct {
	AuthSessionID      string    `db:"auth_session_id"`
	AuthSessionUserID  int64     `db:"auth_session_user_id"`
	AuthSessionExpires time.Time `db:"auth_session_expires"`
}

type UserStore interface {
	// CreateUser returns ErrDuplicate when the username or email is taken.
	// The admin flag always defaults false; it is toggled out of band.
	CreateUser(ctx context.Context, username, email, passwordHash string, neighborhood *string) (*User, error)
	ReadUserByID(context.Context, int64) (*User, error)
	ReadUserByEmail(context.Context, string) (*User, error)
	ReadUserBySessionID(context.Context, string) (*User, error)
	CountUsers(context.Context) (int64, error)
	AdminExists(context.Context) (bool, error)
	CreateAdmin(ctx context.Context, username, email, passwordHash string) (*User, error)

	CreateAuthSession(ctx context.Context, sessionID string, userID int64, expires time.Time) (*AuthSession, error)
	DeleteAuthSession(ctx context.Context, sessionID string) error
	DeleteExpiredAuthSessions(context.Context) error
}
