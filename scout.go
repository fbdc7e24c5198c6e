// Package scout wires the account, session and ROE services to a storage
// adapter and an HTTP adapter.
package scout

import (
	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/crypto"
	"github.com/jp903/scout/pkg/identity"
	"github.com/jp903/scout/services"
)

// interfaces
type (
	StorageAdapter   = core.StorageAdapter
	HTTPAdapter      = core.HTTPAdapter
	IdentityVerifier = core.IdentityVerifier
	Narrator         = core.Narrator

	PasswordHandler = crypto.PasswordHandler
	Logger          = logging.Logger
)

type (
	SessionConfig = core.SessionConfig
	User          = core.User
	Session       = core.Session
	ROEAnalysis   = core.ROEAnalysis
)

const defaultBasePath = "/api"

// Convenience re-exports
var (
	NewArgon2          = crypto.NewArgon2
	NewBcrypt          = crypto.NewBcrypt
	NewPasswordHandler = crypto.NewPasswordHandler
)

var (
	ErrUserExists         = core.ErrUserExists
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrUnauthorized       = core.ErrUnauthorized
	ErrSessionNotFound    = core.ErrSessionNotFound
	ErrSessionExpired     = core.ErrSessionExpired
)

var (
	ErrMissingFields    = core.ErrMissingFields
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrPasswordTooShort = core.ErrPasswordTooShort
	ErrPasswordTooLong  = core.ErrPasswordTooLong
	ErrInvalidEmail     = core.ErrInvalidEmail
)

var (
	ErrDBAdapterRequired   = core.ErrDBAdapterRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
)

type Config struct {
	Database StorageAdapter
	HTTP     HTTPAdapter

	// Optional. Zero values fall back to a seven day session, argon2id
	// hashing, the unverified Google token decoder, the template narrator
	// and a discarding logger.
	SessionConfig    *SessionConfig
	PasswordHasher   PasswordHandler
	IdentityVerifier IdentityVerifier
	Narrator         Narrator
	Logger           Logger
	BasePath         string
}

// Scout holds the wired services. Routes are registered by New.
type Scout struct {
	Auth     *services.AuthService
	Analyses *services.AnalysisService
	Sessions *services.SessionManager
	BasePath string
}

func New(config Config) (*Scout, error) {
	if config.Database == nil {
		return nil, ErrDBAdapterRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	sessionConfig := core.SessionConfig{MaxAge: core.DefaultSessionMaxAge}
	if config.SessionConfig != nil && config.SessionConfig.MaxAge > 0 {
		sessionConfig = *config.SessionConfig
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewMulti(crypto.NewArgon2())
	}

	verifier := config.IdentityVerifier
	if verifier == nil {
		verifier = identity.NewDecoder()
	}

	log := config.Logger
	if log == nil {
		log = logging.Nop()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	sessions := services.NewSessionManager(sessionConfig, config.Database)
	s := &Scout{
		Auth:     services.NewAuthService(config.Database, passwordHasher, sessions, verifier, log),
		Analyses: services.NewAnalysisService(config.Database, config.Narrator, log),
		Sessions: sessions,
		BasePath: basePath,
	}

	opts := core.RouteOptions{BasePath: basePath, SessionMaxAge: sessionConfig.MaxAge}
	if err := config.HTTP.RegisterRoutes(s.Auth, s.Analyses, opts); err != nil {
		return nil, err
	}

	return s, nil
}
