package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/pkg/crypto"
)

// IssuedSession pairs a stored session with the raw token that names it.
// The token exists only here; storage sees its hash.
type IssuedSession struct {
	Session *core.Session
	Token   string
}

// SessionManager issues, resolves and deletes sessions. A session is valid
// while now < ExpiresAt and is never mutated after creation.
type SessionManager struct {
	config  core.SessionConfig
	storage core.SessionStorage
	now     func() time.Time
}

func NewSessionManager(config core.SessionConfig, storage core.SessionStorage) *SessionManager {
	if config.MaxAge <= 0 {
		config.MaxAge = core.DefaultSessionMaxAge
	}
	return &SessionManager{config: config, storage: storage, now: time.Now}
}

func (sm *SessionManager) Create(ctx context.Context, userID string, meta core.ClientMeta) (*IssuedSession, error) {
	tok, err := crypto.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := sm.now()
	session := &core.Session{
		ID:        crypto.NewID(),
		UserID:    userID,
		TokenHash: tok.Hash,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(sm.config.MaxAge),
	}

	if err := sm.storage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &IssuedSession{Session: session, Token: tok.Raw}, nil
}

// Verify resolves token to its session. It returns ErrSessionNotFound for an
// empty or unknown token and ErrSessionExpired once the window has passed.
// Expired rows are left in place.
func (sm *SessionManager) Verify(ctx context.Context, token string) (*core.Session, error) {
	if token == "" {
		return nil, core.ErrSessionNotFound
	}

	session, err := sm.storage.GetSessionByHash(ctx, crypto.HashToken(token))
	if err != nil {
		return nil, err
	}

	if !session.ValidAt(sm.now()) {
		return nil, core.ErrSessionExpired
	}

	return session, nil
}

// Destroy deletes the session named by token. Unknown tokens are ignored.
func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := sm.storage.DeleteSessionByHash(ctx, crypto.HashToken(token))
	if err != nil && !errors.Is(err, core.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// isAbsent reports whether err means "no live session" rather than a fault.
func isAbsent(err error) bool {
	return errors.Is(err, core.ErrSessionNotFound) ||
		errors.Is(err, core.ErrSessionExpired) ||
		errors.Is(err, core.ErrUserNotFound)
}
