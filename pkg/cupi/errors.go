package cupi

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents a non-2xx CUPI response
type HTTPError struct {
	StatusCode int
	Status     string
	Operation  string // e.g., "list schedules", "add user"
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s failed: HTTP %d: %s", e.Operation, e.StatusCode, e.Status)
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(statusCode int, status, operation string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Operation:  operation,
	}
}

// IsNotFound reports whether an error is an HTTPError with status 404
func IsNotFound(err error) bool {
	var e *HTTPError
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether an error is an HTTPError with status
// 401 or 403
func IsUnauthorized(err error) bool {
	var e *HTTPError
	if !errors.As(err, &e) {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
