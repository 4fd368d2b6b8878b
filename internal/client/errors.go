package client

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError is a transport or service level failure from the stats API.
// StatusCode is zero when the request never produced a response.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("stats API request to %s failed: %s", e.Endpoint, e.Body)
	}
	return fmt.Sprintf("stats API returned status %d for %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsRateLimited returns true if the error was caused by throttling
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError returns true for 5xx responses
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ResultSetError means the response decoded cleanly but did not contain the
// result set the caller asked for. The stats API contract names each tabular
// result; relying on position is not safe.
type ResultSetError struct {
	Endpoint string
	Name     string
	Found    []string
}

func (e *ResultSetError) Error() string {
	return fmt.Sprintf("stats API response for %s has no result set %q (found: %s)",
		e.Endpoint, e.Name, strings.Join(e.Found, ", "))
}
