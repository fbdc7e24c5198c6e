package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// SessionTokenBytes is the entropy of a session token (256 bits).
const SessionTokenBytes = 32

// SessionToken is an opaque bearer token. Raw goes to the client exactly once;
// only Hash is ever persisted.
type SessionToken struct {
	Raw  string
	Hash string
}

// NewSessionToken draws SessionTokenBytes from crypto/rand and returns the
// base64url token with its storage hash.
func NewSessionToken() (*SessionToken, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)
	return &SessionToken{Raw: raw, Hash: HashToken(raw)}, nil
}

// HashToken returns the hex sha256 of token, the form used as a lookup key.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
