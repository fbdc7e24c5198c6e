// Package fiber serves the auth and ROE endpoints over Fiber v3.
package fiber

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/services"
)

type Adapter struct {
	app           *fiber.App
	log           logging.Logger
	secureCookies bool
}

var _ core.HTTPAdapter = (*Adapter)(nil)

// New wraps app. secureCookies sets the Secure flag on the session cookie
// and should be on in production.
func New(app *fiber.App, log logging.Logger, secureCookies bool) *Adapter {
	return &Adapter{app: app, log: log.With("component", "http"), secureCookies: secureCookies}
}

// RegisterRoutes mounts every endpoint of the registry under opts.BasePath.
// Protected endpoints reject requests without a live session.
func (a *Adapter) RegisterRoutes(auth core.AuthHandler, analyses core.AnalysisHandler, opts core.RouteOptions) error {
	maxAge := opts.SessionMaxAge
	if maxAge <= 0 {
		maxAge = core.DefaultSessionMaxAge
	}

	h := &handlers{
		auth:     auth,
		analyses: analyses,
		log:      a.log,
		cookie:   cookieSettings{maxAge: int(maxAge / time.Second), secure: a.secureCookies},
	}

	byOperation := map[string]fiber.Handler{
		services.OpSignUp:        h.signUp,
		services.OpSignIn:        h.signIn,
		services.OpSignOut:       h.signOut,
		services.OpGoogleAuth:    h.googleAuth,
		services.OpVerifySession: h.verify,
		services.OpRefresh:       h.refresh,
		services.OpAnalyze:       h.analyze,
		services.OpListAnalyses:  h.listAnalyses,
	}

	api := a.app.Group(opts.BasePath)
	for _, ep := range services.NewEndpointRegistry().Endpoints() {
		handler, ok := byOperation[ep.Metadata.OperationID]
		if !ok {
			return fmt.Errorf("no handler for operation %q", ep.Metadata.OperationID)
		}
		if ep.Protected {
			handler = h.requireAuth(handler)
		}
		api.Add([]string{ep.Method}, ep.Path, handler)
	}

	return nil
}
