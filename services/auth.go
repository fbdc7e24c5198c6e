package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/crypto"
)

// AuthService is the sole authority over identity and session validity.
type AuthService struct {
	db        core.StorageAdapter
	passwords crypto.PasswordHandler
	sessions  *SessionManager
	identity  core.IdentityVerifier
	log       logging.Logger
	now       func() time.Time
}

// Ensure AuthService implements AuthHandler
var _ core.AuthHandler = (*AuthService)(nil)

func NewAuthService(db core.StorageAdapter, passwords crypto.PasswordHandler, sessions *SessionManager, identity core.IdentityVerifier, log logging.Logger) *AuthService {
	return &AuthService{
		db:        db,
		passwords: passwords,
		sessions:  sessions,
		identity:  identity,
		log:       log.With("component", "auth"),
		now:       time.Now,
	}
}

// CreateUser validates input and stores a password-based user. Nothing is
// written when validation fails.
func (s *AuthService) CreateUser(ctx context.Context, input core.SignUpInput) (*core.User, error) {
	email := core.NormalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if firstName == "" || lastName == "" {
		return nil, core.ErrMissingFields
	}
	if err := core.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := core.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, core.ErrUserExists
	}

	hash, err := s.passwords.Hash(input.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return nil, core.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &core.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: &hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        strings.TrimSpace(input.Phone),
		Company:      trimmedOrNil(input.Company),
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, core.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// SignUp registers a new user and opens their first session.
func (s *AuthService) SignUp(ctx context.Context, input core.SignUpInput, meta core.ClientMeta) (*core.AuthResult, error) {
	user, err := s.CreateUser(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user, meta)
}

// SignIn authenticates by email and password. Unknown email, a Google-only
// account and a wrong password all fail with the same ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, input core.SignInInput, meta core.ClientMeta) (*core.AuthResult, error) {
	email := core.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, core.ErrMissingFields
	}

	user, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasPassword() {
		s.log.Debug(ctx, "sign-in rejected", "reason", "no password account")
		return nil, core.ErrInvalidCredentials
	}

	ok, err := s.passwords.Verify(input.Password, *user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.log.Debug(ctx, "sign-in rejected", "reason", "password mismatch", "user_id", user.ID)
		return nil, core.ErrInvalidCredentials
	}

	if err := s.touchLastLogin(ctx, user); err != nil {
		return nil, err
	}
	return s.startSession(ctx, user, meta)
}

// FindUserByEmail returns nil without error when no user has that address.
func (s *AuthService) FindUserByEmail(ctx context.Context, email string) (*core.User, error) {
	user, err := s.db.GetUserByEmail(ctx, core.NormalizeEmail(email))
	if errors.Is(err, core.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// CreateGoogleUser stores a user who signs in only through Google.
func (s *AuthService) CreateGoogleUser(ctx context.Context, id *core.GoogleIdentity) (*core.User, error) {
	email := core.NormalizeEmail(id.Email)
	if err := core.ValidateEmail(email); err != nil {
		return nil, err
	}

	googleID := id.Subject
	user := &core.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: id.GivenName,
		LastName:  id.FamilyName,
		AvatarURL: trimmedOrNil(&id.Picture),
		GoogleID:  &googleID,
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		if core.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create google user: %w", err)
	}

	s.log.Info(ctx, "google user registered", "user_id", user.ID)
	return user, nil
}

// UpdateGoogleUser links googleID to an existing account. Linking the id the
// account already carries is a no-op; linking a different one fails with
// ErrGoogleIDMismatch. An existing avatar is kept.
func (s *AuthService) UpdateGoogleUser(ctx context.Context, userID, googleID, avatarURL string) (*core.User, error) {
	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if user.HasGoogleIdentity() {
		if *user.GoogleID == googleID {
			return user, nil
		}
		return nil, core.ErrGoogleIDMismatch
	}

	user.GoogleID = &googleID
	if user.AvatarURL == nil {
		user.AvatarURL = trimmedOrNil(&avatarURL)
	}

	if err := s.db.UpdateUser(ctx, user); err != nil {
		if core.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("link google identity: %w", err)
	}

	s.log.Info(ctx, "google identity linked", "user_id", user.ID)
	return user, nil
}

// GoogleAuth signs in with a Google ID token: by Google id, else by email
// (linking the account), else by creating a new user. An existing account is
// linked only when Google vouches for the email address.
func (s *AuthService) GoogleAuth(ctx context.Context, credential string, meta core.ClientMeta) (*core.AuthResult, error) {
	id, err := s.identity.Identify(ctx, credential)
	if err != nil {
		return nil, err
	}

	user, err := s.db.GetUserByGoogleID(ctx, id.Subject)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrUserNotFound):
		user, err = s.FindUserByEmail(ctx, id.Email)
		if err != nil {
			return nil, err
		}
		switch {
		case user != nil && !user.HasGoogleIdentity() && !id.EmailVerified:
			s.log.Debug(ctx, "refusing to link unverified google email", "user_id", user.ID)
			return nil, core.ErrEmailNotVerified
		case user != nil:
			user, err = s.UpdateGoogleUser(ctx, user.ID, id.Subject, id.Picture)
		default:
			user, err = s.CreateGoogleUser(ctx, id)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("find user by google id: %w", err)
	}

	if err := s.touchLastLogin(ctx, user); err != nil {
		return nil, err
	}
	return s.startSession(ctx, user, meta)
}

// SignOut deletes the session named by token. A missing or unknown token is
// not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Refresh replaces a live session with a fresh one and deletes the old row.
func (s *AuthService) Refresh(ctx context.Context, token string, meta core.ClientMeta) (*core.AuthResult, error) {
	session, user, err := s.resolve(ctx, token)
	if isAbsent(err) {
		return nil, core.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	result, err := s.startSession(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Destroy(ctx, token); err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "session rotated", "user_id", user.ID, "old_session", session.ID, "new_session", result.Session.ID)
	return result, nil
}

// VerifySession returns the owner of a live session, or nil when the token is
// empty, unknown, expired or its user is gone.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*core.User, error) {
	_, user, err := s.resolve(ctx, token)
	if isAbsent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) resolve(ctx context.Context, token string) (*core.Session, *core.User, error) {
	session, err := s.sessions.Verify(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.db.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *core.User, meta core.ClientMeta) (*core.AuthResult, error) {
	issued, err := s.sessions.Create(ctx, user.ID, meta)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &core.AuthResult{User: user, Session: issued.Session, Token: issued.Token}, nil
}

func (s *AuthService) touchLastLogin(ctx context.Context, user *core.User) error {
	now := s.now()
	if err := s.db.TouchLastLogin(ctx, user.ID, now); err != nil {
		return fmt.Errorf("record last login: %w", err)
	}
	user.LastLoginAt = &now
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
