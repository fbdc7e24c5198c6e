package core

import "time"

// User represents a user account in the system
//
// A user proves who they are with a password, a linked Google identity, or both.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash *string    `json:"-"` // Never expose in JSON
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Phone        string     `json:"phone"`
	Company      *string    `json:"company,omitempty"`
	AvatarURL    *string    `json:"avatarUrl,omitempty"`
	GoogleID     *string    `json:"googleId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// HasPassword reports whether the user can sign in with email and password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// HasGoogleIdentity reports whether a Google account is linked to the user.
func (u *User) HasGoogleIdentity() bool {
	return u.GoogleID != nil && *u.GoogleID != ""
}

// Session represents an active login session
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON (security!)
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidAt reports whether the session is still usable at t.
func (s *Session) ValidAt(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}

// ClientMeta is optional request metadata recorded with a new session.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// ROEAnalysis is a snapshot of one return-on-equity calculator run.
//
// Derived fields are always recomputed from the inputs at write time.
type ROEAnalysis struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	AnnualRentalIncome float64   `json:"annualRentalIncome"`
	AnnualExpenses     float64   `json:"annualExpenses"`
	CurrentMarketValue float64   `json:"currentMarketValue"`
	CurrentLoanBalance float64   `json:"currentLoanBalance"`
	AnnualDebtService  float64   `json:"annualDebtService"`
	NOI                float64   `json:"noi"`
	Equity             float64   `json:"equity"`
	UnleveredROE       float64   `json:"unleveredRoe"`
	LeveredROE         float64   `json:"leveredRoe"`
	Narrative          string    `json:"narrative"`
	CreatedAt          time.Time `json:"createdAt"`
}

// AuthResult contains the authenticated user and their new session
type AuthResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"-"` // The raw token (not the hash), delivered by cookie
}
