// Package security derives the cookie signing and encryption keys from the
// single configured application secret, so one KAT_SECRET_KEY drives both
// session strategies.
package security

import "crypto/sha256"

// DeriveKeys returns a 32-byte hash key and a 32-byte block key for
// securecookie. The derivation is deterministic: the same secret always
// yields the same keys, so sessions survive restarts.
func DeriveKeys(secret string) (hashKey, blockKey []byte) {
	h := sha256.Sum256([]byte(secret + ":cookie-hash"))
	b := sha256.Sum256([]byte(secret + ":cookie-block"))
	return h[:], b[:]
}

// TokenSecret is the HS256 signing key for the token session strategy.
func TokenSecret(secret string) []byte {
	return []byte(secret)
}
