package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal"
	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

type SessionStore interface {
	CreateAuthSession(ctx context.Context, sessionID string, userID int64, expires time.Time) (*store.AuthSession, error)
	ReadUserBySessionID(ctx context.Context, sessionID string) (*store.User, error)
	DeleteAuthSession(ctx context.Context, sessionID string) error
}

// StoreCodec keeps session state server-side in the auth_sessions table; the
// client holds only an opaque session id, encoded with securecookie. Used in
// development where the embedded database is local and cheap to hit.
type StoreCodec struct {
	s       *securecookie.SecureCookie
	store   SessionStore
	domain  string
	secure  bool
	expires time.Duration
}

func NewStoreCodec(
	hashKey, blockKey []byte,
	sessionStore SessionStore,
	domain string,
	secure bool,
	expires time.Duration,
) *StoreCodec {
	return &StoreCodec{
		s:       securecookie.New(hashKey, blockKey),
		store:   sessionStore,
		domain:  domain,
		secure:  secure,
		expires: expires,
	}
}

func (sc *StoreCodec) Read(c echo.Context) (*Session, error) {
	sessionID := sc.readSessionID(c)
	if sessionID == "" {
		return nil, nil
	}

	u, err := sc.store.ReadUserBySessionID(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// expired or revoked server-side, drop the stale cookie
			sc.clearCookie(c)
			return nil, nil
		}
		return nil, err
	}

	return NewSession(u), nil
}

func (sc *StoreCodec) Save(c echo.Context, s *Session) error {
	// a re-issue replaces any session row the request arrived with
	if old := sc.readSessionID(c); old != "" {
		if err := sc.store.DeleteAuthSession(c.Request().Context(), old); err != nil {
			return err
		}
	}

	sessionID := generateSessionID()
	expires := expiresAt(sc.expires)
	if _, err := sc.store.CreateAuthSession(
		c.Request().Context(), sessionID, s.UserID, expires,
	); err != nil {
		return err
	}

	encoded, err := sc.s.Encode(
		internal.SessionCookie,
		map[string]string{"session_id": sessionID},
	)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     internal.SessionCookie,
		Value:    encoded,
		Path:     "/",
		Domain:   sc.domain,
		Expires:  expires,
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (sc *StoreCodec) Destroy(c echo.Context) error {
	if sessionID := sc.readSessionID(c); sessionID != "" {
		if err := sc.store.DeleteAuthSession(c.Request().Context(), sessionID); err != nil {
			return err
		}
	}
	sc.clearCookie(c)
	return nil
}

func (sc *StoreCodec) readSessionID(c echo.Context) string {
	cookie, err := c.Cookie(internal.SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	values := make(map[string]string)
	if err := sc.s.Decode(internal.SessionCookie, cookie.Value, &values); err != nil {
		c.Logger().Debugf("rejected session cookie: %v", err)
		sc.clearCookie(c)
		return ""
	}
	return values["session_id"]
}

func (sc *StoreCodec) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     internal.SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   sc.domain,
		Expires:  time.Now().UTC(),
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
