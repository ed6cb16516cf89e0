package session

import (
	"net/http"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// legacyUser matches the nested user object older tokens carried the admin
// flag in. Accepted during verification, never written.
type legacyUser struct {
	IsAdmin bool `json:"isAdmin,omitempty"`
}

type tokenClaims struct {
	UserID       int64       `json:"user_id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	Neighborhood string      `json:"neighborhood,omitempty"`
	IsAdmin      bool        `json:"is_admin"`
	LegacyAdmin  bool        `json:"isAdmin,omitempty"`
	LegacyUser   *legacyUser `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec carries the whole session in a signed HS256 token, so no server
// state survives between requests. Used in production where the process is
// not guaranteed to handle two consecutive requests.
type TokenCodec struct {
	secret  []byte
	domain  string
	secure  bool
	expires time.Duration
}

func NewTokenCodec(secret []byte, domain string, secure bool, expires time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:  secret,
		domain:  domain,
		secure:  secure,
		expires: expires,
	}
}

func (tc *TokenCodec) Read(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(internal.SessionTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(
		cookie.Value,
		claims,
		func(t *jwt.Token) (any, error) { return tc.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		// bad signature, expired or malformed: downgrade to anonymous
		c.Logger().Debugf("rejected session token: %v", err)
		tc.clearCookie(c)
		return nil, nil
	}

	admin := claims.IsAdmin || claims.LegacyAdmin ||
		(claims.LegacyUser != nil && claims.LegacyUser.IsAdmin)

	return &Session{
		UserID:       claims.UserID,
		Username:     claims.Username,
		Email:        claims.Email,
		Neighborhood: claims.Neighborhood,
		IsAdmin:      admin,
	}, nil
}

func (tc *TokenCodec) Save(c echo.Context, s *Session) error {
	expires := expiresAt(tc.expires)
	claims := &tokenClaims{
		UserID:       s.UserID,
		Username:     s.Username,
		Email:        s.Email,
		Neighborhood: s.Neighborhood,
		IsAdmin:      s.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     internal.SessionTokenCookie,
		Value:    signed,
		Path:     "/",
		Domain:   tc.domain,
		Expires:  expires,
		Secure:   tc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (tc *TokenCodec) Destroy(c echo.Context) error {
	tc.clearCookie(c)
	return nil
}

func (tc *TokenCodec) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     internal.SessionTokenCookie,
		Value:    "",
		Path:     "/",
		Domain:   tc.domain,
		Expires:  time.Now().UTC(),
		Secure:   tc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
