package core

import "time"

// DefaultSessionMaxAge is the validity window of a new session.
const DefaultSessionMaxAge = 7 * 24 * time.Hour

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session_token"

type SessionConfig struct {
	MaxAge time.Duration
}
