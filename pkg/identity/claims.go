// Package identity turns Google Sign-In ID tokens into core.GoogleIdentity
// values.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jp903/scout/core"
)

// Claims is the Google ID token payload.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

func (c *Claims) identity() (*core.GoogleIdentity, error) {
	if c.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub", core.ErrIdentityTokenRejected)
	}
	if c.Email == "" {
		return nil, fmt.Errorf("%w: missing email", core.ErrIdentityTokenRejected)
	}

	return &core.GoogleIdentity{
		Subject:       c.Subject,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		GivenName:     c.GivenName,
		FamilyName:    c.FamilyName,
		Picture:       c.Picture,
	}, nil
}
