package services

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/jp903/scout/core"
)

// Operation ids bind endpoints to adapter handlers.
const (
	OpSignUp        = "signUp"
	OpSignIn        = "signIn"
	OpSignOut       = "signOut"
	OpGoogleAuth    = "googleAuth"
	OpVerifySession = "verifySession"
	OpRefresh       = "refreshSession"
	OpAnalyze       = "createROEAnalysis"
	OpListAnalyses  = "listROEAnalyses"
)

// BaseEndpoints returns the framework-agnostic route table. Adapters supply
// a handler per OperationID and wrap Protected endpoints with session checks.
func BaseEndpoints() []core.Endpoint {
	return []core.Endpoint{
		{
			Path:   "/signup",
			Method: http.MethodPost,
			Metadata: core.EndpointMetadata{
				OperationID: OpSignUp,
				Description: "Register with email and password and open a session",
			},
		},
		{
			Path:   "/signin",
			Method: http.MethodPost,
			Metadata: core.EndpointMetadata{
				OperationID: OpSignIn,
				Description: "Sign in with email and password",
			},
		},
		{
			Path:   "/signout",
			Method: http.MethodPost,
			Metadata: core.EndpointMetadata{
				OperationID: OpSignOut,
				Description: "Delete the current session and clear the cookie",
			},
		},
		{
			Path:   "/auth/google",
			Method: http.MethodPost,
			Metadata: core.EndpointMetadata{
				OperationID: OpGoogleAuth,
				Description: "Sign in or register with a Google ID token",
			},
		},
		{
			Path:   "/auth/verify",
			Method: http.MethodGet,
			Metadata: core.EndpointMetadata{
				OperationID: OpVerifySession,
				Description: "Report whether the presented session is valid",
			},
		},
		{
			Path:   "/auth/refresh",
			Method: http.MethodPost,
			Metadata: core.EndpointMetadata{
				OperationID: OpRefresh,
				Description: "Replace the current session with a new one",
			},
		},
		{
			Path:      "/property-roe-analysis",
			Method:    http.MethodPost,
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: OpAnalyze,
				Description: "Compute and store a return-on-equity analysis",
			},
		},
		{
			Path:      "/property-roe-analysis",
			Method:    http.MethodGet,
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: OpListAnalyses,
				Description: "List the caller's analyses, newest first",
			},
		},
	}
}

// EndpointRegistry holds endpoints keyed by METHOD:PATH and rejects
// duplicates.
type EndpointRegistry struct {
	endpoints map[string]*core.Endpoint
}

// NewEndpointRegistry creates a registry holding BaseEndpoints.
func NewEndpointRegistry() *EndpointRegistry {
	reg := &EndpointRegistry{endpoints: make(map[string]*core.Endpoint)}
	if err := reg.Register(BaseEndpoints()...); err != nil {
		panic(err)
	}
	return reg
}

// Register adds endpoints. If any conflicts with a registered endpoint or
// with another in the same call, none are added.
func (r *EndpointRegistry) Register(endpoints ...core.Endpoint) error {
	seen := make(map[string]bool, len(endpoints))
	for i := range endpoints {
		key := endpointKey(&endpoints[i])
		if _, exists := r.endpoints[key]; exists || seen[key] {
			return fmt.Errorf("endpoint conflict: %s %s already registered", endpoints[i].Method, endpoints[i].Path)
		}
		seen[key] = true
	}

	for i := range endpoints {
		ep := endpoints[i]
		r.endpoints[endpointKey(&ep)] = &ep
	}
	return nil
}

// Endpoints returns all endpoints sorted by path, then method.
func (r *EndpointRegistry) Endpoints() []*core.Endpoint {
	result := make([]*core.Endpoint, 0, len(r.endpoints))
	for _, ep := range r.endpoints {
		result = append(result, ep)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Path != result[j].Path {
			return result[i].Path < result[j].Path
		}
		return result[i].Method < result[j].Method
	})
	return result
}

func endpointKey(ep *core.Endpoint) string {
	return ep.Method + ":" + ep.Path
}
