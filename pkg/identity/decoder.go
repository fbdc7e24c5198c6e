package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jp903/scout/core"
)

// Decoder reads the payload of a Google ID token without checking its
// signature. Anyone can forge a token it accepts; use JWKSVerifier whenever a
// client id is known.
type Decoder struct {
	parser *jwt.Parser
}

func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

func (d *Decoder) Identify(_ context.Context, credential string) (*core.GoogleIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, core.ErrCredentialRequired
	}

	var claims Claims
	if _, _, err := d.parser.ParseUnverified(credential, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedIdentityToken, err)
	}

	return claims.identity()
}
