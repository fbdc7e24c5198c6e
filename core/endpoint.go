package core

// Endpoint is a framework-agnostic route template. HTTP adapters bind a
// handler to each endpoint by its OperationID.
type Endpoint struct {
	Path      string
	Method    string
	Protected bool // requires a valid session
	Metadata  EndpointMetadata
}

type EndpointMetadata struct {
	OperationID string
	Description string
}

// ErrorResponse represents an error response structure
type ErrorResponse struct {
	Error string `json:"error"`
}
