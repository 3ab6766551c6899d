package algonest

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the AlgoNest API responds with a non-success status.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter string // set on 429
}

func (e *APIError) Error() string {
	return fmt.Sprintf("algonest: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether err is a 429 from the run endpoint.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
