// Package session converts between the wire-level credential carried in a
// cookie and an in-memory session snapshot. Two codecs satisfy the same
// contract: a server-side store of session rows referenced by an opaque id
// cookie, and a self-contained signed token holding the whole snapshot.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"github.com/labstack/echo/v4"
)

// Session is the snapshot taken at login or registration time. IsAdmin is the
// single authoritative admin flag; it is written only when the session is
// minted and is not re-checked against the user store per request.
type Session struct {
	UserID       int64
	Username     string
	Email        string
	Neighborhood string
	IsAdmin      bool
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// NewSession builds the snapshot from a stored user record.
func NewSession(u *store.User) *Session {
	s := &Session{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
	if u.Neighborhood != nil {
		s.Neighborhood = *u.Neighborhood
	}
	return s
}

// Codec is satisfied by both session strategies. Handlers and guards depend
// only on this interface; the deployment mode picks the implementation once
// at startup.
type Codec interface {
	// Read decodes the credential on the request. A missing, malformed,
	// forged or expired credential is not an error: it yields a nil session
	// and clears the cookie. The error return is reserved for backend
	// failures in the store-backed strategy.
	Read(c echo.Context) (*Session, error)
	// Save mints or re-issues the credential with a fresh expiry window.
	Save(c echo.Context, s *Session) error
	// Destroy invalidates the credential and clears the cookie. Idempotent.
	Destroy(c echo.Context) error
}

func generateSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func expiresAt(window time.Duration) time.Time {
	return time.Now().UTC().Add(window)
}
