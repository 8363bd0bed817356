package weaviate

import (
	"errors"
	"fmt"
)

// ErrOIDCNotConfigured is returned by Client.OIDC when the instance has
// no OpenID Connect provider configured. Use errors.Is() to check.
var ErrOIDCNotConfigured = errors.New("weaviate: OIDC is not configured")

// APIError is a non-2xx response from the server. Both the REST and
// GraphQL endpoints surface failures this way; check with errors.As and
// inspect StatusCode. The client never retries these.
type APIError struct {
	StatusCode int
	Message    string // server error message, when the body was decodable
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weaviate: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("weaviate: unexpected status %d: %s", e.StatusCode, e.Message)
}

// statusOf returns the HTTP status carried by err, or 0 if err is not
// an *APIError.
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
