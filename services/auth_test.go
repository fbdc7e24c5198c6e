package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/crypto"
)

type authFixture struct {
	service  *AuthService
	storage  *FakeStorage
	sessions *SessionManager
	identity *fakeIdentity
	now      time.Time
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		storage:  NewFakeStorage(),
		identity: &fakeIdentity{id: &core.GoogleIdentity{Subject: "g-1", Email: "ada@example.com", EmailVerified: true, GivenName: "Ada", FamilyName: "Lovelace", Picture: "https://img/ada.png"}},
		now:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	fast := &crypto.Argon2{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	f.sessions = NewSessionManager(core.SessionConfig{}, f.storage)
	f.sessions.now = func() time.Time { return f.now }
	f.service = NewAuthService(f.storage, crypto.NewMulti(fast), f.sessions, f.identity, logging.Nop())
	f.service.now = func() time.Time { return f.now }
	return f
}

func signUpInput(email, password string) core.SignUpInput {
	return core.SignUpInput{FirstName: "Ada", LastName: "Lovelace", Email: email, Password: password, Phone: "555-0100"}
}

// Requirement: a valid (email, password) pair registers exactly once; the
// second attempt is a conflict.
func TestAuthService_CreateUser_Once(t *testing.T) {
	pairs := []struct{ email, password string }{
		{"alice@example.com", "SecurePass123!"},
		{"bob.smith+tag@mail.co.uk", "12345678"},
		{"x@y.io", "a very long passphrase with spaces"},
		{"eve@example.com", "éééééééé"},
	}

	for _, p := range pairs {
		t.Run(p.email, func(t *testing.T) {
			// Arrange
			f := newAuthFixture()
			ctx := context.Background()

			// Act
			user, err := f.service.CreateUser(ctx, signUpInput(p.email, p.password))
			_, dupErr := f.service.CreateUser(ctx, signUpInput(p.email, p.password))

			// Assert
			if err != nil {
				t.Fatalf("first CreateUser() error = %v", err)
			}
			if user.ID == "" || user.Email != p.email {
				t.Errorf("user = %+v", user)
			}
			if !errors.Is(dupErr, core.ErrConflict) || !errors.Is(dupErr, core.ErrUserExists) {
				t.Errorf("second CreateUser() error = %v, want ErrUserExists", dupErr)
			}
		})
	}
}

// Requirement: email uniqueness ignores case.
func TestAuthService_CreateUser_CaseInsensitiveConflict(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.service.CreateUser(ctx, signUpInput("Alice@Example.com", "SecurePass123!")); err != nil {
		t.Fatal(err)
	}
	_, err := f.service.CreateUser(ctx, signUpInput("alice@EXAMPLE.COM", "SecurePass123!"))

	if !errors.Is(err, core.ErrUserExists) {
		t.Errorf("CreateUser() error = %v, want ErrUserExists", err)
	}
}

// Requirement: invalid input fails with a validation error and writes nothing.
func TestAuthService_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   core.SignUpInput
		wantErr error
	}{
		{name: "missing @", input: signUpInput("alice.example.com", "SecurePass123!"), wantErr: core.ErrInvalidEmail},
		{name: "missing domain dot", input: signUpInput("alice@example", "SecurePass123!"), wantErr: core.ErrInvalidEmail},
		{name: "missing local part", input: signUpInput("@example.com", "SecurePass123!"), wantErr: core.ErrInvalidEmail},
		{name: "whitespace inside", input: signUpInput("ali ce@example.com", "SecurePass123!"), wantErr: core.ErrInvalidEmail},
		{name: "empty email", input: signUpInput("", "SecurePass123!"), wantErr: core.ErrEmailRequired},
		{name: "short password", input: signUpInput("alice@example.com", "1234567"), wantErr: core.ErrPasswordTooShort},
		{name: "empty password", input: signUpInput("alice@example.com", ""), wantErr: core.ErrPasswordRequired},
		{name: "four multi-byte characters", input: signUpInput("alice@example.com", "ééé€"), wantErr: core.ErrPasswordTooShort},
		{name: "password over 128 bytes", input: signUpInput("alice@example.com", strings.Repeat("p", 129)), wantErr: core.ErrPasswordTooLong},
		{name: "missing first name", input: core.SignUpInput{LastName: "L", Email: "alice@example.com", Password: "SecurePass123!"}, wantErr: core.ErrMissingFields},
		{name: "blank last name", input: core.SignUpInput{FirstName: "A", LastName: "  ", Email: "alice@example.com", Password: "SecurePass123!"}, wantErr: core.ErrMissingFields},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			f := newAuthFixture()

			// Act
			user, err := f.service.CreateUser(context.Background(), test.input)

			// Assert
			if !errors.Is(err, test.wantErr) || !errors.Is(err, core.ErrValidation) {
				t.Fatalf("CreateUser() error = %v, want %v", err, test.wantErr)
			}
			if user != nil {
				t.Error("CreateUser() returned a user on failure")
			}
			if f.storage.Writes() != 0 {
				t.Errorf("storage writes = %d, want 0", f.storage.Writes())
			}
		})
	}
}

// Requirement: a password the bcrypt hasher cannot take is a validation
// error, not a server failure.
func TestAuthService_CreateUser_BcryptLengthLimit(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "72 bytes", password: strings.Repeat("b", 72)},
		{name: "73 bytes", password: strings.Repeat("b", 73), wantErr: core.ErrPasswordTooLong},
		{name: "100 bytes", password: strings.Repeat("b", 100), wantErr: core.ErrPasswordTooLong},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			f := newAuthFixture()
			f.service.passwords = crypto.NewMulti(&crypto.Bcrypt{Cost: 4})

			// Act
			user, err := f.service.CreateUser(context.Background(), signUpInput("alice@example.com", test.password))

			// Assert
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("CreateUser() error = %v", err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) || !core.IsClientError(err) {
				t.Fatalf("CreateUser() error = %v, want client error %v", err, test.wantErr)
			}
			if user != nil || f.storage.Writes() != 0 {
				t.Errorf("CreateUser() stored a user on failure")
			}
		})
	}
}

// Requirement: only the hash of the password is stored.
func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	f := newAuthFixture()
	company := "  Acme Realty "

	in := signUpInput(" Alice@Example.com ", "SecurePass123!")
	in.Company = &company
	user, err := f.service.CreateUser(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}

	stored, _ := f.storage.GetUserByID(context.Background(), user.ID)
	if stored.PasswordHash == nil || *stored.PasswordHash == "SecurePass123!" {
		t.Fatalf("password not hashed: %v", stored.PasswordHash)
	}
	if stored.Email != "alice@example.com" {
		t.Errorf("Email = %q, want normalized", stored.Email)
	}
	if stored.Company == nil || *stored.Company != "Acme Realty" {
		t.Errorf("Company = %v, want trimmed", stored.Company)
	}
}

func TestAuthService_SignUp_OpensSession(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	result, err := f.service.SignUp(ctx, signUpInput("alice@example.com", "SecurePass123!"), core.ClientMeta{IPAddress: "1.2.3.4"})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	got, err := f.service.VerifySession(ctx, result.Token)
	if err != nil || got == nil || got.ID != result.User.ID {
		t.Errorf("VerifySession() = %v, %v; want user %s", got, err, result.User.ID)
	}
	if result.Session.IPAddress != "1.2.3.4" {
		t.Errorf("IPAddress = %q", result.Session.IPAddress)
	}
}

// Requirement: a correct password yields a token that verifies to the same
// user; a wrong password and an unknown email fail identically.
func TestAuthService_SignIn(t *testing.T) {
	// Arrange
	f := newAuthFixture()
	ctx := context.Background()
	user, err := f.service.CreateUser(ctx, signUpInput("alice@example.com", "SecurePass123!"))
	if err != nil {
		t.Fatal(err)
	}

	// Act
	result, err := f.service.SignIn(ctx, core.SignInInput{Email: "ALICE@example.com", Password: "SecurePass123!"}, core.ClientMeta{})

	// Assert
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	verified, err := f.service.VerifySession(ctx, result.Token)
	if err != nil || verified == nil || verified.ID != user.ID {
		t.Fatalf("VerifySession() = %v, %v; want user %s", verified, err, user.ID)
	}
	if result.User.LastLoginAt == nil || !result.User.LastLoginAt.Equal(f.now) {
		t.Errorf("LastLoginAt = %v, want %v", result.User.LastLoginAt, f.now)
	}
	stored, _ := f.storage.GetUserByID(ctx, user.ID)
	if stored.LastLoginAt == nil {
		t.Error("LastLoginAt not persisted")
	}

	_, wrongPassword := f.service.SignIn(ctx, core.SignInInput{Email: "alice@example.com", Password: "WrongPass123!"}, core.ClientMeta{})
	_, unknownEmail := f.service.SignIn(ctx, core.SignInInput{Email: "nobody@example.com", Password: "SecurePass123!"}, core.ClientMeta{})

	if !errors.Is(wrongPassword, core.ErrInvalidCredentials) || !errors.Is(unknownEmail, core.ErrInvalidCredentials) {
		t.Fatalf("errors = %v / %v, want ErrInvalidCredentials", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_SignIn_GoogleOnlyAccount(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	if _, err := f.service.CreateGoogleUser(ctx, f.identity.id); err != nil {
		t.Fatal(err)
	}

	_, err := f.service.SignIn(ctx, core.SignInInput{Email: "ada@example.com", Password: "anything123"}, core.ClientMeta{})

	if !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("SignIn() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_SignIn_MissingFields(t *testing.T) {
	f := newAuthFixture()

	for _, in := range []core.SignInInput{{Email: "a@b.co"}, {Password: "x"}, {}} {
		if _, err := f.service.SignIn(context.Background(), in, core.ClientMeta{}); !errors.Is(err, core.ErrMissingFields) {
			t.Errorf("SignIn(%+v) error = %v, want ErrMissingFields", in, err)
		}
	}
}

func TestAuthService_SignIn_StorageError(t *testing.T) {
	f := newAuthFixture()
	f.storage.getUserErr = errors.New("connection refused")

	_, err := f.service.SignIn(context.Background(), core.SignInInput{Email: "a@b.co", Password: "password1"}, core.ClientMeta{})

	if err == nil || core.IsClientError(err) {
		t.Errorf("SignIn() error = %v, want infrastructure error", err)
	}
}

// Requirement: absent, unknown, malformed and expired tokens verify to nil
// without an error.
func TestAuthService_VerifySession_Absent(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	result, err := f.service.SignUp(ctx, signUpInput("alice@example.com", "SecurePass123!"), core.ClientMeta{})
	if err != nil {
		t.Fatal(err)
	}

	for _, token := range []string{"", "garbage", "a.b.c", "%%%"} {
		user, err := f.service.VerifySession(ctx, token)
		if user != nil || err != nil {
			t.Errorf("VerifySession(%q) = %v, %v; want nil, nil", token, user, err)
		}
	}

	f.now = f.now.Add(7*24*time.Hour + time.Minute)
	user, err := f.service.VerifySession(ctx, result.Token)
	if user != nil || err != nil {
		t.Errorf("VerifySession(expired) = %v, %v; want nil, nil", user, err)
	}
}

func TestAuthService_VerifySession_StorageError(t *testing.T) {
	f := newAuthFixture()
	f.storage.getSessionErr = errors.New("timeout")

	user, err := f.service.VerifySession(context.Background(), "token")

	if user != nil || err == nil {
		t.Errorf("VerifySession() = %v, %v; want nil, error", user, err)
	}
}

func TestAuthService_SignOut(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	result, _ := f.service.SignUp(ctx, signUpInput("alice@example.com", "SecurePass123!"), core.ClientMeta{})

	if err := f.service.SignOut(ctx, result.Token); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if user, _ := f.service.VerifySession(ctx, result.Token); user != nil {
		t.Error("session still valid after SignOut")
	}
	if err := f.service.SignOut(ctx, ""); err != nil {
		t.Errorf("SignOut(\"\") error = %v", err)
	}
}

// Requirement: refresh issues a new session with a fresh window and deletes
// the old one.
func TestAuthService_Refresh(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	first, _ := f.service.SignUp(ctx, signUpInput("alice@example.com", "SecurePass123!"), core.ClientMeta{})

	f.now = f.now.Add(6 * 24 * time.Hour)
	second, err := f.service.Refresh(ctx, first.Token, core.ClientMeta{UserAgent: "ua"})
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if second.Token == first.Token {
		t.Error("Refresh() reused the token")
	}
	if want := f.now.Add(7 * 24 * time.Hour); !second.Session.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", second.Session.ExpiresAt, want)
	}
	if user, _ := f.service.VerifySession(ctx, first.Token); user != nil {
		t.Error("old token still valid")
	}
	if user, _ := f.service.VerifySession(ctx, second.Token); user == nil || user.ID != first.User.ID {
		t.Error("new token does not verify to the same user")
	}
	if f.storage.SessionCount() != 1 {
		t.Errorf("sessions = %d, want 1", f.storage.SessionCount())
	}
}

func TestAuthService_Refresh_Invalid(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	result, _ := f.service.SignUp(ctx, signUpInput("alice@example.com", "SecurePass123!"), core.ClientMeta{})
	f.now = f.now.Add(8 * 24 * time.Hour)

	for _, token := range []string{"", "unknown", result.Token} {
		if _, err := f.service.Refresh(ctx, token, core.ClientMeta{}); !errors.Is(err, core.ErrUnauthorized) {
			t.Errorf("Refresh(%q) error = %v, want ErrUnauthorized", token, err)
		}
	}
}

func TestAuthService_FindUserByEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	created, _ := f.service.CreateUser(ctx, signUpInput("alice@example.com", "SecurePass123!"))

	found, err := f.service.FindUserByEmail(ctx, "ALICE@Example.COM")
	if err != nil || found == nil || found.ID != created.ID {
		t.Errorf("FindUserByEmail() = %v, %v; want %s", found, err, created.ID)
	}

	missing, err := f.service.FindUserByEmail(ctx, "bob@example.com")
	if missing != nil || err != nil {
		t.Errorf("FindUserByEmail(missing) = %v, %v; want nil, nil", missing, err)
	}
}

// Requirement: linking the same Google id twice changes nothing the second
// time.
func TestAuthService_UpdateGoogleUser_Idempotent(t *testing.T) {
	// Arrange
	f := newAuthFixture()
	ctx := context.Background()
	user, _ := f.service.CreateUser(ctx, signUpInput("ada@example.com", "SecurePass123!"))

	// Act
	first, err := f.service.UpdateGoogleUser(ctx, user.ID, "g-1", "https://img/ada.png")
	if err != nil {
		t.Fatalf("first UpdateGoogleUser() error = %v", err)
	}
	writes := f.storage.Writes()
	snapshot, _ := f.storage.GetUserByID(ctx, user.ID)

	second, err := f.service.UpdateGoogleUser(ctx, user.ID, "g-1", "https://img/other.png")

	// Assert
	if err != nil {
		t.Fatalf("second UpdateGoogleUser() error = %v", err)
	}
	if f.storage.Writes() != writes {
		t.Errorf("second link wrote to storage (%d -> %d)", writes, f.storage.Writes())
	}
	after, _ := f.storage.GetUserByID(ctx, user.ID)
	if diff := cmp.Diff(snapshot, after); diff != "" {
		t.Errorf("user changed on second link (-before +after):\n%s", diff)
	}
	if *first.GoogleID != "g-1" || *second.GoogleID != "g-1" || *after.AvatarURL != "https://img/ada.png" {
		t.Errorf("unexpected link state: %+v", after)
	}
	if !after.HasPassword() {
		t.Error("linking dropped the password")
	}
}

func TestAuthService_UpdateGoogleUser_Mismatch(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user, _ := f.service.CreateUser(ctx, signUpInput("ada@example.com", "SecurePass123!"))
	_, _ = f.service.UpdateGoogleUser(ctx, user.ID, "g-1", "")

	_, err := f.service.UpdateGoogleUser(ctx, user.ID, "g-2", "")

	if !errors.Is(err, core.ErrGoogleIDMismatch) || !errors.Is(err, core.ErrConflict) {
		t.Errorf("UpdateGoogleUser() error = %v, want ErrGoogleIDMismatch", err)
	}
}

func TestAuthService_UpdateGoogleUser_KeepsAvatar(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user, _ := f.service.CreateUser(ctx, signUpInput("ada@example.com", "SecurePass123!"))
	avatar := "https://img/mine.png"
	user.AvatarURL = &avatar
	_ = f.storage.UpdateUser(ctx, user)

	linked, err := f.service.UpdateGoogleUser(ctx, user.ID, "g-1", "https://img/google.png")

	if err != nil || *linked.AvatarURL != avatar {
		t.Errorf("AvatarURL = %v, err %v; want %s kept", linked.AvatarURL, err, avatar)
	}
}

// Requirement: Google sign-in finds by Google id, else links by email, else
// creates a password-less user.
func TestAuthService_GoogleAuth(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, f *authFixture) string // returns expected user id or ""
		wantPassword bool
	}{
		{
			name:  "creates new user",
			setup: func(*testing.T, *authFixture) string { return "" },
		},
		{
			name: "links existing password account",
			setup: func(t *testing.T, f *authFixture) string {
				u, err := f.service.CreateUser(context.Background(), signUpInput("ADA@example.com", "SecurePass123!"))
				if err != nil {
					t.Fatal(err)
				}
				return u.ID
			},
			wantPassword: true,
		},
		{
			name: "finds linked user by google id",
			setup: func(t *testing.T, f *authFixture) string {
				u, err := f.service.CreateGoogleUser(context.Background(), &core.GoogleIdentity{Subject: "g-1", Email: "old-address@example.com"})
				if err != nil {
					t.Fatal(err)
				}
				return u.ID
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			f := newAuthFixture()
			wantID := test.setup(t, f)

			// Act
			result, err := f.service.GoogleAuth(context.Background(), "credential", core.ClientMeta{})

			// Assert
			if err != nil {
				t.Fatalf("GoogleAuth() error = %v", err)
			}
			if wantID != "" && result.User.ID != wantID {
				t.Errorf("user id = %s, want %s", result.User.ID, wantID)
			}
			if result.User.GoogleID == nil || *result.User.GoogleID != "g-1" {
				t.Errorf("GoogleID = %v, want g-1", result.User.GoogleID)
			}
			if result.User.HasPassword() != test.wantPassword {
				t.Errorf("HasPassword() = %v, want %v", result.User.HasPassword(), test.wantPassword)
			}
			if result.User.LastLoginAt == nil {
				t.Error("LastLoginAt not set")
			}
			if user, _ := f.service.VerifySession(context.Background(), result.Token); user == nil {
				t.Error("session does not verify")
			}
		})
	}
}

func TestAuthService_GoogleAuth_NewUserFields(t *testing.T) {
	f := newAuthFixture()

	result, err := f.service.GoogleAuth(context.Background(), "credential", core.ClientMeta{})
	if err != nil {
		t.Fatal(err)
	}

	want := &core.User{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		AvatarURL: strPtr("https://img/ada.png"),
		GoogleID:  strPtr("g-1"),
	}
	opts := cmpopts.IgnoreFields(core.User{}, "ID", "CreatedAt", "UpdatedAt", "LastLoginAt")
	if diff := cmp.Diff(want, result.User, opts); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthService_GoogleAuth_Errors(t *testing.T) {
	decodeErr := fmt.Errorf("%w: bad segment", core.ErrMalformedIdentityToken)

	tests := []struct {
		name       string
		credential string
		setup      func(f *authFixture)
		wantErr    error
	}{
		{name: "empty credential", credential: "", wantErr: core.ErrCredentialRequired},
		{name: "decode failure", credential: "x", setup: func(f *authFixture) { f.identity.err = decodeErr }, wantErr: core.ErrTokenDecode},
		{
			name:       "email linked to another google id",
			credential: "x",
			setup: func(f *authFixture) {
				u, _ := f.service.CreateUser(context.Background(), signUpInput("ada@example.com", "SecurePass123!"))
				_, _ = f.service.UpdateGoogleUser(context.Background(), u.ID, "g-other", "")
			},
			wantErr: core.ErrGoogleIDMismatch,
		},
		{
			name:       "unverified email does not link password account",
			credential: "x",
			setup: func(f *authFixture) {
				_, _ = f.service.CreateUser(context.Background(), signUpInput("ada@example.com", "SecurePass123!"))
				f.identity.id.EmailVerified = false
			},
			wantErr: core.ErrEmailNotVerified,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newAuthFixture()
			if test.setup != nil {
				test.setup(f)
			}

			result, err := f.service.GoogleAuth(context.Background(), test.credential, core.ClientMeta{})

			if !errors.Is(err, test.wantErr) {
				t.Errorf("GoogleAuth() error = %v, want %v", err, test.wantErr)
			}
			if result != nil {
				t.Error("GoogleAuth() returned a result on failure")
			}
		})
	}
}

// Requirement: an unverified Google email never takes over an existing
// account, and the account stays unlinked.
func TestAuthService_GoogleAuth_UnverifiedEmailKeepsAccount(t *testing.T) {
	f := newAuthFixture()
	u, err := f.service.CreateUser(context.Background(), signUpInput("ada@example.com", "SecurePass123!"))
	if err != nil {
		t.Fatal(err)
	}
	f.identity.id.EmailVerified = false

	_, err = f.service.GoogleAuth(context.Background(), "credential", core.ClientMeta{})

	if !errors.Is(err, core.ErrEmailNotVerified) || !core.IsClientError(err) {
		t.Fatalf("GoogleAuth() error = %v, want ErrEmailNotVerified", err)
	}
	stored, _ := f.storage.GetUserByID(context.Background(), u.ID)
	if stored.HasGoogleIdentity() {
		t.Errorf("GoogleID = %v, want unlinked", *stored.GoogleID)
	}
	if f.storage.SessionCount() != 0 {
		t.Errorf("sessions = %d, want 0", f.storage.SessionCount())
	}
}

func strPtr(s string) *string { return &s }
