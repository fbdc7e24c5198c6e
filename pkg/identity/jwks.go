package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/jp903/scout/core"
)

const GoogleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

const (
	keySetRefreshInterval = time.Hour
	keySetFetchTimeout    = 10 * time.Second
	unknownKIDRefreshRate = 5 * time.Minute
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// ErrKeySetUnavailable means the signing keys could not be fetched. It is a
// server-side failure, not a problem with the presented token.
var ErrKeySetUnavailable = errors.New("identity key set unavailable")

// JWKSVerifier checks RS256 signatures against Google's published keys, then
// the issuer, audience and expiry.
//
// The key set is fetched on first use and refreshed hourly in the background,
// or sooner when a token names an unknown key id. A failed first fetch is
// retried on the next call.
type JWKSVerifier struct {
	clientID string
	certsURL string
	client   *http.Client

	mu   sync.Mutex
	keys keyfunc.Keyfunc
	stop context.CancelFunc
}

func NewJWKSVerifier(clientID string) *JWKSVerifier {
	return newJWKSVerifier(clientID, GoogleCertsURL, http.DefaultClient)
}

func newJWKSVerifier(clientID, certsURL string, client *http.Client) *JWKSVerifier {
	return &JWKSVerifier{clientID: clientID, certsURL: certsURL, client: client}
}

// Close stops the background key refresh.
func (v *JWKSVerifier) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stop != nil {
		v.stop()
	}
}

func (v *JWKSVerifier) Identify(ctx context.Context, credential string) (*core.GoogleIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, core.ErrCredentialRequired
	}

	keys, err := v.keySet()
	if err != nil {
		return nil, err
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(credential, &claims, keys.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedIdentityToken, err)
	default:
		return nil, fmt.Errorf("%w: %v", core.ErrIdentityTokenRejected, err)
	}

	if !slices.Contains(googleIssuers, claims.Issuer) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", core.ErrIdentityTokenRejected, claims.Issuer)
	}

	return claims.identity()
}

func (v *JWKSVerifier) keySet() (keyfunc.Keyfunc, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.keys != nil {
		return v.keys, nil
	}

	// The refresh goroutine starts before the first fetch, so a failed
	// attempt must cancel its own context.
	ctx, cancel := context.WithCancel(context.Background())
	remote, err := jwkset.NewStorageFromHTTP(v.certsURL, jwkset.HTTPClientStorageOptions{
		Client:          v.client,
		Ctx:             ctx,
		HTTPTimeout:     keySetFetchTimeout,
		RefreshInterval: keySetRefreshInterval,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}

	storage, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{v.certsURL: remote},
		RateLimitWaitMax:  time.Second,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(unknownKIDRefreshRate), 1),
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}

	keys, err := keyfunc.New(keyfunc.Options{Ctx: ctx, Storage: storage})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}

	v.keys, v.stop = keys, cancel
	return keys, nil
}
