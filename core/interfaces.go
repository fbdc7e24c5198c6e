package core

import (
	"context"
	"time"
)

// ============================================
// AUTH HANDLER (for HTTP adapters)
// ============================================

// SignUpInput contains the data needed to register a new user
type SignUpInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone"`
	Company   *string `json:"company"`
}

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler provides authentication operations for HTTP adapters
type AuthHandler interface {
	SignUp(ctx context.Context, input SignUpInput, meta ClientMeta) (*AuthResult, error)
	SignIn(ctx context.Context, input SignInInput, meta ClientMeta) (*AuthResult, error)
	GoogleAuth(ctx context.Context, credential string, meta ClientMeta) (*AuthResult, error)
	SignOut(ctx context.Context, token string) error
	Refresh(ctx context.Context, token string, meta ClientMeta) (*AuthResult, error)

	// VerifySession returns the session owner, or nil when the token does not
	// name a live session. Only infrastructure failures produce an error.
	VerifySession(ctx context.Context, token string) (*User, error)
}

// ============================================
// ANALYSIS HANDLER
// ============================================

// AnalysisInput carries the raw calculator figures as received from the
// client: numbers, numeric strings, or nothing at all.
type AnalysisInput struct {
	AnnualRentalIncome any `json:"annualRentalIncome"`
	AnnualExpenses     any `json:"annualExpenses"`
	CurrentMarketValue any `json:"currentMarketValue"`
	CurrentLoanBalance any `json:"currentLoanBalance"`
	AnnualDebtService  any `json:"annualDebtService"`
}

type AnalysisHandler interface {
	Analyze(ctx context.Context, userID string, input AnalysisInput) (*ROEAnalysis, error)
	ListAnalyses(ctx context.Context, userID string) ([]*ROEAnalysis, error)
}

// Narrator writes the free-text commentary stored with an analysis.
type Narrator interface {
	Narrate(ctx context.Context, a *ROEAnalysis) (string, error)
}

// ============================================
// IDENTITY PORT
// ============================================

// GoogleIdentity is the subset of a Google ID token payload the service uses.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}

// IdentityVerifier turns a client-supplied Google credential into an identity.
// Failures unwrap to ErrTokenDecode.
type IdentityVerifier interface {
	Identify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

// ============================================
// HTTP PORT
// ============================================

type RouteOptions struct {
	BasePath      string
	SessionMaxAge time.Duration
}

type HTTPAdapter interface {
	RegisterRoutes(auth AuthHandler, analyses AnalysisHandler, opts RouteOptions) error
}
