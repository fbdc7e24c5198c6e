package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies. Every method is a single
// atomic write or a pure read; no operation needs an application-level
// transaction.

// UserStorage defines user-related database operations
type UserStorage interface {
	// CreateUser persists u and fills its timestamps. Returns ErrUserExists
	// or ErrGoogleIDTaken on uniqueness violations.
	CreateUser(ctx context.Context, u *User) error

	// Lookups return ErrUserNotFound when no row matches.
	GetUserByID(ctx context.Context, id string) (*User, error)
	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)

	UpdateUser(ctx context.Context, u *User) error
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

// SessionStorage defines session-related database operations
type SessionStorage interface {
	CreateSession(ctx context.Context, session *Session) error

	// GetSessionByHash returns ErrSessionNotFound when no row matches.
	GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error)

	// DeleteSessionByHash is a no-op when no row matches.
	DeleteSessionByHash(ctx context.Context, tokenHash string) error
}

// AnalysisStorage defines ROE analysis database operations. Records are
// immutable once written.
type AnalysisStorage interface {
	CreateAnalysis(ctx context.Context, a *ROEAnalysis) error
	ListAnalysesByUser(ctx context.Context, userID string) ([]*ROEAnalysis, error)
}

// StorageAdapter is the full persistence surface needed by the services.
type StorageAdapter interface {
	UserStorage
	SessionStorage
	AnalysisStorage
}
